// Package registry tracks concurrently running sessions, one marker
// file per session under ~/.termic/sessions/, guarded by an advisory
// flock while being written. It generalizes the teacher's socketdir
// (which tracked Unix-socket files for agent/bridge processes) to PTY
// sessions; there is no socket here, just bookkeeping for `termic ls`.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

// Entry is one session's registry record.
type Entry struct {
	ID        string    `json:"id"`
	Pid       int       `json:"pid"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
	Cols      int       `json:"cols"`
	Rows      int       `json:"rows"`
}

// Dir returns the registry directory: ~/.termic/sessions/
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return filepath.Join(home, ".termic", "sessions")
}

// Path returns the marker file path for a session id.
func Path(id string) string {
	return filepath.Join(Dir(), id+".json")
}

func lockPath(id string) string {
	return Path(id) + ".lock"
}

// Write persists e, creating the registry directory if needed and
// holding an advisory flock for the duration of the write so two termic
// processes never interleave writes to the same file.
func Write(e Entry) error {
	if err := os.MkdirAll(Dir(), 0o700); err != nil {
		return fmt.Errorf("registry: mkdir: %w", err)
	}
	lock := flock.New(lockPath(e.ID))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("registry: lock: %w", err)
	}
	defer lock.Unlock()

	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("registry: marshal: %w", err)
	}
	return os.WriteFile(Path(e.ID), data, 0o600)
}

// Remove deletes a session's marker file and lock file. Missing files
// are not an error.
func Remove(id string) error {
	lock := flock.New(lockPath(id))
	if err := lock.Lock(); err == nil {
		defer lock.Unlock()
	}
	if err := os.Remove(Path(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("registry: remove: %w", err)
	}
	os.Remove(lockPath(id))
	return nil
}

// List returns every session currently registered. Malformed entries
// are skipped rather than failing the whole listing.
func List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(Dir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []Entry
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(Dir(), de.Name()))
		if err != nil {
			continue
		}
		var e Entry
		if err := json.Unmarshal(data, &e); err != nil {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
