package cmd

import (
	"testing"

	"termic/internal/input"
)

func TestScanEvents_PlainRune(t *testing.T) {
	events := scanEvents([]byte("a"))
	if len(events) != 1 || events[0].Rune != 'a' {
		t.Fatalf("events = %+v, want a single rune event", events)
	}
}

func TestScanEvents_ArrowKeys(t *testing.T) {
	events := scanEvents([]byte("\x1b[A\x1b[B"))
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Key != input.KeyUp || events[1].Key != input.KeyDown {
		t.Errorf("events = %+v", events)
	}
}

func TestScanEvents_CtrlLetter(t *testing.T) {
	events := scanEvents([]byte{0x01}) // Ctrl+A
	if len(events) != 1 || events[0].Key != input.KeyA || events[0].Mod != input.ModCtrl {
		t.Fatalf("events = %+v, want Ctrl+A", events)
	}
}

func TestScanEvents_LoneEscape(t *testing.T) {
	events := scanEvents([]byte{0x1b})
	if len(events) != 1 || events[0].Key != input.KeyEscape {
		t.Fatalf("events = %+v, want a lone escape", events)
	}
}

func TestScanEvents_Utf8Rune(t *testing.T) {
	events := scanEvents([]byte("é"))
	if len(events) != 1 || events[0].Rune != 'é' {
		t.Fatalf("events = %+v, want a single multibyte rune", events)
	}
}

func TestScanEvents_PlainPageUpNoModifier(t *testing.T) {
	events := scanEvents([]byte("\x1b[5~"))
	if len(events) != 1 || events[0].Key != input.KeyPageUp || events[0].Mod != input.ModNone {
		t.Fatalf("events = %+v, want unmodified PageUp", events)
	}
}

func TestScanEvents_ShiftPageUpAndPageDown(t *testing.T) {
	events := scanEvents([]byte("\x1b[5;2~\x1b[6;2~"))
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Key != input.KeyPageUp || events[0].Mod != input.ModShift {
		t.Errorf("event[0] = %+v, want Shift+PageUp", events[0])
	}
	if events[1].Key != input.KeyPageDown || events[1].Mod != input.ModShift {
		t.Errorf("event[1] = %+v, want Shift+PageDown", events[1])
	}
}
