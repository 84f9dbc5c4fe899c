package cmd

import (
	"os"
	"path/filepath"
)

// defaultLabel picks a session label when the user doesn't pass --label.
// Resolution priority:
//  1. $USER env var combined with the current directory's base name
//  2. $USER alone, when the directory's base name is unavailable
//  3. the current directory's base name alone
//  4. "session"
func defaultLabel() string {
	base := ""
	if wd, err := os.Getwd(); err == nil {
		base = filepath.Base(wd)
	}

	user := os.Getenv("USER")
	switch {
	case user != "" && base != "" && base != ".":
		return user + "-" + base
	case user != "":
		return user
	case base != "" && base != ".":
		return base
	default:
		return "session"
	}
}
