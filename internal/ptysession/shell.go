package ptysession

import (
	"errors"
	"os"
	"os/exec"
	"os/user"
	"syscall"

	"termic/internal/logx"
)

// Shell wraps a Session with the login-shell startup convention: set
// TERM=xterm, exec the user's shell with no arguments, SIGHUP on stop,
// wait+reap on join.
type Shell struct {
	Session *Session
	cmd     *exec.Cmd
	label   string
}

// NewShell returns an unstarted Shell.
func NewShell(label string) *Shell {
	return &Shell{Session: New(), label: label}
}

// Start execs command (or the user's login shell, when command is
// empty) with args, under a PTY of the given size. TERM=xterm is set;
// the rest of the environment is inherited.
func (sh *Shell) Start(command string, args []string, cols, rows uint16) error {
	if command == "" {
		command = loginShell()
	}
	cmd := exec.Command(command, args...)
	cmd.Env = append(os.Environ(), "TERM=xterm")
	if err := sh.Session.Fork(cmd, cols, rows); err != nil {
		return err
	}
	sh.cmd = cmd
	logx.Infof("shell %s: started pid=%d command=%s", sh.label, sh.Session.Pid(), command)
	return nil
}

// loginShell resolves getpwuid(getuid())->pw_shell's Go equivalent.
// os/user does not expose the passwd pw_shell field on any platform, so
// the practical translation is $SHELL with a POSIX fallback.
func loginShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	if _, err := user.Current(); err != nil {
		logx.Warnf("shell: could not resolve current user: %v", err)
	}
	return "/bin/sh"
}

// Stop sends SIGHUP to the child, mirroring Shell::stop.
func (sh *Shell) Stop() {
	if sh.cmd == nil || sh.cmd.Process == nil {
		return
	}
	logSignal(syscall.SIGHUP, sh.cmd.Process.Signal(syscall.SIGHUP))
}

// Join closes the master and waits for the child, logging its exit
// status or termination signal. It is safe to call once.
func (sh *Shell) Join() error {
	closeErr := sh.Session.Close()
	if closeErr != nil {
		logx.Warnf("shell %s: close master: %v", sh.label, closeErr)
	}
	if sh.cmd == nil {
		return nil
	}
	err := sh.cmd.Wait()
	logExit(sh.label, err)
	return err
}

func logExit(label string, waitErr error) {
	if waitErr == nil {
		logx.Infof("shell %s: exited status=0", label)
		return
	}
	var ee *exec.ExitError
	if errors.As(waitErr, &ee) {
		if ws, ok := ee.Sys().(syscall.WaitStatus); ok {
			if ws.Signaled() {
				logx.Infof("shell %s: terminated by signal %v", label, ws.Signal())
				return
			}
			logx.Infof("shell %s: exited status=%d", label, ws.ExitStatus())
			return
		}
	}
	logx.Errorf("shell %s: wait failed: %v", label, waitErr)
}

// ExitCode maps a Shell.Join error into a host process exit code: the
// exit status if the child exited normally, 128+signal if it was
// signaled, matching common shell-wrapper convention.
func ExitCode(waitErr error) int {
	if waitErr == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(waitErr, &ee) {
		if ws, ok := ee.Sys().(syscall.WaitStatus); ok {
			if ws.Signaled() {
				return 128 + int(ws.Signal())
			}
			return ws.ExitStatus()
		}
	}
	return 1
}
