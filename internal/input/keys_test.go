package input

import "testing"

type fakeClipboard struct {
	text string
	set  string
}

func (f *fakeClipboard) SetText(s string) { f.set = s }
func (f *fakeClipboard) Text() string     { return f.text }

func TestEncode_Release_NotHandled(t *testing.T) {
	_, handled := Encode(Event{Action: ActionRelease, Key: KeyA}, false, nil)
	if handled {
		t.Error("expected key releases to be unhandled")
	}
}

func TestEncode_ArrowKeys_SS3WhenAppCursorKeys(t *testing.T) {
	out, handled := Encode(Event{Key: KeyUp}, true, nil)
	if !handled || string(out) != "\x1BOA" {
		t.Errorf("got (%q,%v), want SS3 up", out, handled)
	}
}

func TestEncode_ArrowKeys_CSIWhenNotAppCursorKeys(t *testing.T) {
	out, handled := Encode(Event{Key: KeyUp}, false, nil)
	if !handled || string(out) != "\x1B[A" {
		t.Errorf("got (%q,%v), want CSI up", out, handled)
	}
}

func TestEncode_CtrlLetter(t *testing.T) {
	out, handled := Encode(Event{Key: KeyA, Mod: ModCtrl}, false, nil)
	if !handled || len(out) != 1 || out[0] != 1 {
		t.Errorf("got (%v,%v), want Ctrl+A = 0x01", out, handled)
	}
}

func TestEncode_PlainRune(t *testing.T) {
	out, handled := Encode(Event{Rune: 'x'}, false, nil)
	if !handled || string(out) != "x" {
		t.Errorf("got (%q,%v), want x", out, handled)
	}
}

func TestEncode_ShiftCtrlV_PastesClipboard(t *testing.T) {
	clip := &fakeClipboard{text: "pasted"}
	out, handled := Encode(Event{Key: KeyV, Mod: ModCtrl | ModShift}, false, clip)
	if !handled || string(out) != "pasted" {
		t.Errorf("got (%q,%v), want clipboard text", out, handled)
	}
}

func TestEncode_ShiftCtrlC_ConsumesWithoutClearingClipboard(t *testing.T) {
	clip := &fakeClipboard{text: "keep-me"}
	out, handled := Encode(Event{Key: KeyC, Mod: ModCtrl | ModShift}, false, clip)
	if !handled || out != nil {
		t.Errorf("got (%v,%v), want (nil,true)", out, handled)
	}
	if clip.set != "" {
		t.Errorf("clipboard was cleared to %q, want untouched", clip.set)
	}
}

func TestEncode_NilClipboard_ShiftCtrlCUnhandled(t *testing.T) {
	_, handled := Encode(Event{Key: KeyC, Mod: ModCtrl | ModShift}, false, nil)
	if handled {
		t.Error("expected Shift+Ctrl+C with no clipboard to be unhandled")
	}
}

func TestEncode_FunctionKeys(t *testing.T) {
	out, handled := Encode(Event{Key: KeyF5}, false, nil)
	if !handled || string(out) != "\x1B[15~" {
		t.Errorf("got (%q,%v), want F5 sequence", out, handled)
	}
}
