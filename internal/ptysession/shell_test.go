package ptysession

import (
	"strings"
	"testing"
	"time"
)

func TestShell_StartWriteRead(t *testing.T) {
	if testing.Short() {
		t.Skip("forks a real PTY child; skipped in -short")
	}

	sh := NewShell("test-shell")
	if err := sh.Start("printf", []string{"ready\\n"}, 80, 24); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer sh.Join()

	buf := make([]byte, 256)
	deadline := time.Now().Add(3 * time.Second)
	var got string
	for time.Now().Before(deadline) {
		n, err := sh.Session.Read(buf)
		if n > 0 {
			got += string(buf[:n])
			if strings.Contains(got, "ready") {
				return
			}
		}
		if err != nil {
			break
		}
	}
	t.Fatalf("did not observe expected output, got %q", got)
}

func TestShell_StopThenJoinReportsSignal(t *testing.T) {
	if testing.Short() {
		t.Skip("forks a real PTY child; skipped in -short")
	}

	sh := NewShell("test-stop")
	if err := sh.Start("sleep", []string{"30"}, 80, 24); err != nil {
		t.Fatalf("Start: %v", err)
	}
	sh.Stop()

	done := make(chan error, 1)
	go func() { done <- sh.Join() }()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Join did not return after Stop")
	}
}

func TestExitCode_NilErrorIsZero(t *testing.T) {
	if got := ExitCode(nil); got != 0 {
		t.Errorf("ExitCode(nil) = %d, want 0", got)
	}
}
