package session

import (
	"strings"
	"testing"
	"time"
)

func TestSession_RunDrainProducesScreenOutput(t *testing.T) {
	if testing.Short() {
		t.Skip("forks a real PTY child; skipped in -short")
	}

	s, err := New(Options{
		Label:   "test",
		Cols:    20,
		Rows:    3,
		Command: "printf",
		Args:    []string{"hello-session"},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Run()

	deadline := time.After(3 * time.Second)
	for {
		select {
		case <-s.WakeChan():
			s.Drain()
			if strings.Contains(s.Screen().LineAt(0).Content(), "hello-session") {
				return
			}
		case <-s.Done():
			s.Drain()
			if strings.Contains(s.Screen().LineAt(0).Content(), "hello-session") {
				return
			}
			t.Fatalf("child exited without expected output, screen = %q", s.Screen().LineAt(0).Content())
		case <-deadline:
			t.Fatal("timed out waiting for child output")
		}
	}
}

func TestSession_StopTerminatesChild(t *testing.T) {
	if testing.Short() {
		t.Skip("forks a real PTY child; skipped in -short")
	}

	s, err := New(Options{
		Label:   "test-stop",
		Cols:    20,
		Rows:    3,
		Command: "sleep",
		Args:    []string{"30"},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Run()

	done := make(chan error, 1)
	go func() { done <- s.Stop() }()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return after SIGHUP")
	}
}

func TestSession_WriteEchoesThroughDecoder(t *testing.T) {
	if testing.Short() {
		t.Skip("forks a real PTY child; skipped in -short")
	}

	s, err := New(Options{
		Label:   "test-write",
		Cols:    20,
		Rows:    3,
		Command: "cat",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Run()
	defer s.Stop()

	if _, err := s.Write([]byte("echo-me\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case <-s.WakeChan():
			s.Drain()
			if strings.Contains(s.Screen().LineAt(0).Content(), "echo-me") {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for echoed output")
		}
	}
}
