// Package logx is a thin leveled wrapper over the standard logger. It
// mirrors the log_debug/log_info/log_warning/log_error split the decoder
// and session loop rely on ("log as unknown control code" at debug level
// specifically) without pulling in a structured logging dependency the
// rest of the stack doesn't need.
package logx

import (
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

var (
	mu      sync.Mutex
	current = levelFromEnv()
	std     = log.New(os.Stderr, "", log.LstdFlags)
)

func levelFromEnv() Level {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TERMIC_LOG"))) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "info", "":
		return LevelInfo
	default:
		return LevelInfo
	}
}

// SetLevel overrides the level derived from TERMIC_LOG. Mainly for tests.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	current = l
}

// SetOutput redirects the underlying logger, e.g. to silence it in tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	std.SetOutput(w)
}

func enabled(l Level) bool {
	mu.Lock()
	defer mu.Unlock()
	return l >= current
}

func logAt(l Level, format string, args ...any) {
	if !enabled(l) {
		return
	}
	std.Printf("["+l.String()+"] "+format, args...)
}

func Debugf(format string, args ...any) { logAt(LevelDebug, format, args...) }
func Infof(format string, args ...any)  { logAt(LevelInfo, format, args...) }
func Warnf(format string, args ...any)  { logAt(LevelWarn, format, args...) }
func Errorf(format string, args ...any) { logAt(LevelError, format, args...) }
