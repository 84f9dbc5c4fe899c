// Package ptysession owns the POSIX pseudo-terminal lifecycle: master
// allocation, fork+exec of the child shell, blocking read/write,
// winsize control, and reap. It wraps github.com/creack/pty rather than
// hand-rolling the posix_openpt/grantpt/unlockpt/fork/setsid/TIOCSCTTY
// dance in cgo — creack/pty performs exactly that sequence internally.
package ptysession

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"syscall"

	"github.com/creack/pty"

	"termic/internal/logx"
)

// Session owns the master side of a pseudo-terminal pair. It is created
// closed; Fork allocates the pair and starts the child in one step
// (creack/pty does not expose open/fork as separate calls the way the
// original posix API does).
type Session struct {
	mu     sync.Mutex
	master *os.File
	cmd    *exec.Cmd
	closed bool
}

// New returns a Session with no child attached yet.
func New() *Session {
	return &Session{}
}

// Fork allocates the PTY pair and starts cmd with the slave wired to its
// stdio, a new session, and TIOCSCTTY as its controlling terminal.
// creack/pty.StartWithSize performs all of that; it is the Go rendition
// of open()+fork()'s child-side setup combined into one call.
func (s *Session) Fork(cmd *exec.Cmd, cols, rows uint16) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.master != nil {
		return errors.New("ptysession: already open")
	}
	master, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: rows, Cols: cols})
	if err != nil {
		return fmt.Errorf("ptysession: fork: %w", err)
	}
	s.master = master
	s.cmd = cmd
	return nil
}

// Read blocks until data is available, retrying the transient EINTR and
// EAGAIN errors internally, matching the contract that only hard errors
// and EOF (n==0, err==io.EOF) are surfaced to the caller.
func (s *Session) Read(p []byte) (int, error) {
	for {
		n, err := s.master.Read(p)
		if err != nil && (errors.Is(err, syscall.EINTR) || errors.Is(err, syscall.EAGAIN)) {
			continue
		}
		return n, err
	}
}

// Write loops until all of p is written; a short write from the kernel
// is not itself an error here, only a terminal write error is.
func (s *Session) Write(p []byte) (int, error) {
	total := 0
	for total < len(p) {
		n, err := s.master.Write(p[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// SetWinsize issues TIOCSWINSZ on the master.
func (s *Session) SetWinsize(cols, rows uint16) error {
	s.mu.Lock()
	master := s.master
	s.mu.Unlock()
	if master == nil {
		return errors.New("ptysession: not open")
	}
	return pty.Setsize(master, &pty.Winsize{Rows: rows, Cols: cols})
}

// Fd exposes the master file descriptor for external event loops. Our
// own session loop uses a goroutine instead, but this keeps the
// contract spec.md's fileno() names.
func (s *Session) Fd() uintptr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.master == nil {
		return ^uintptr(0)
	}
	return s.master.Fd()
}

// Close releases the master. Idempotent.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.master == nil {
		return nil
	}
	return s.master.Close()
}

// IsClosed reports whether Close has already run.
func (s *Session) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Pid returns the child's process id, or 0 if none is attached.
func (s *Session) Pid() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd == nil || s.cmd.Process == nil {
		return 0
	}
	return s.cmd.Process.Pid
}

func logSignal(sig syscall.Signal, err error) {
	if err != nil {
		logx.Warnf("ptysession: signal %v failed: %v", sig, err)
	}
}
