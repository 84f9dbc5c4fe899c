package cmd

import (
	"os"
	"testing"
)

func TestProcessAlive_CurrentProcess(t *testing.T) {
	if !processAlive(os.Getpid()) {
		t.Error("expected the current process to be reported alive")
	}
}

func TestProcessAlive_InvalidPid(t *testing.T) {
	if processAlive(0) || processAlive(-1) {
		t.Error("expected pid <= 0 to be reported not alive")
	}
}
