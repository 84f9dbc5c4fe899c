package cmd

import (
	"testing"

	"termic/internal/input"
)

type fakeScroller struct {
	delta     int
	canceled  bool
	callCount int
}

func (f *fakeScroller) Scrollback(delta int) { f.delta += delta; f.callCount++ }
func (f *fakeScroller) CancelScrollback()    { f.canceled = true }

func TestHandleScroll_ShiftPageUpScrollsBack(t *testing.T) {
	f := &fakeScroller{}
	if !handleScroll(f, input.Event{Key: input.KeyPageUp, Mod: input.ModShift}) {
		t.Fatal("expected Shift+PageUp to be recognized as a scroll binding")
	}
	if f.delta != scrollPageLines {
		t.Errorf("delta = %d, want %d", f.delta, scrollPageLines)
	}
}

func TestHandleScroll_ShiftPageDownScrollsForward(t *testing.T) {
	f := &fakeScroller{}
	if !handleScroll(f, input.Event{Key: input.KeyPageDown, Mod: input.ModShift}) {
		t.Fatal("expected Shift+PageDown to be recognized as a scroll binding")
	}
	if f.delta != -scrollPageLines {
		t.Errorf("delta = %d, want %d", f.delta, -scrollPageLines)
	}
}

func TestHandleScroll_UnmodifiedPageUpIsNotAScrollBinding(t *testing.T) {
	f := &fakeScroller{}
	if handleScroll(f, input.Event{Key: input.KeyPageUp}) {
		t.Fatal("unmodified PageUp must fall through to input.Encode, not scroll")
	}
	if f.callCount != 0 {
		t.Errorf("Scrollback called %d times, want 0", f.callCount)
	}
}

func TestHandleScroll_UnrelatedKeyIsNotAScrollBinding(t *testing.T) {
	f := &fakeScroller{}
	if handleScroll(f, input.Event{Key: input.KeyUp, Mod: input.ModShift}) {
		t.Fatal("Shift+Up must not be treated as a scroll binding")
	}
}

func TestResolveCommand_CommandLineSplitsWithShlex(t *testing.T) {
	cmd, args, err := resolveCommand(`sh -c "echo hi"`, nil)
	if err != nil {
		t.Fatalf("resolveCommand: %v", err)
	}
	if cmd != "sh" {
		t.Errorf("command = %q, want %q", cmd, "sh")
	}
	if len(args) != 2 || args[0] != "-c" || args[1] != "echo hi" {
		t.Errorf("args = %q, want [-c, echo hi]", args)
	}
}

func TestResolveCommand_PositionalArgsWin(t *testing.T) {
	cmd, args, err := resolveCommand("", []string{"ls", "-la"})
	if err != nil {
		t.Fatalf("resolveCommand: %v", err)
	}
	if cmd != "ls" || len(args) != 1 || args[0] != "-la" {
		t.Errorf("got (%q, %q)", cmd, args)
	}
}

func TestResolveCommand_NeitherGivenFallsBackToLoginShell(t *testing.T) {
	cmd, args, err := resolveCommand("", nil)
	if err != nil {
		t.Fatalf("resolveCommand: %v", err)
	}
	if cmd != "" || len(args) != 0 {
		t.Errorf("got (%q, %q), want empty command signaling the login shell", cmd, args)
	}
}

func TestResolveCommand_EmptyCommandLineErrors(t *testing.T) {
	_, _, err := resolveCommand(`   `, nil)
	if err == nil {
		t.Fatal("expected an error for a command line with no tokens")
	}
}
