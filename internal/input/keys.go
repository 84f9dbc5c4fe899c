// Package input maps key + modifier events to the outbound byte
// sequences written to the PTY: component F of the session pipeline.
package input

// Action distinguishes a key press/repeat from a release.
type Action int

const (
	ActionPress Action = iota
	ActionRepeat
	ActionRelease
)

// Modifier is a bitmask of held modifier keys.
type Modifier int

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

func (m Modifier) has(bit Modifier) bool { return m&bit != 0 }

// Key names the non-character keys the encoder recognizes. Character
// input arrives through Rune instead.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	// KeyA..KeyRightBracket cover Ctrl+letter and Ctrl+punctuation chording;
	// values are assigned to match ASCII 'A'..']' so Ctrl mapping is p-64.
)

const (
	KeyA Key = iota + 0x41
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyLeftBracket
	KeyBackslash
	KeyRightBracket
)

// Event is a single key action delivered by the GUI collaborator (or,
// for the CLI demo renderer, by the raw-mode stdin reader).
type Event struct {
	Action Action
	Key    Key
	Mod    Modifier
	Rune   rune // valid when this is character input rather than a named Key
}

// Scroller receives scroll-wheel deltas; *session.Session implements it
// by delegating to screen.State.Scrollback/CancelScrollback.
type Scroller interface {
	Scrollback(delta int)
	CancelScrollback()
}

// Clipboard is the narrow slice of the View/Window collaborator contract
// (set_clipboard_string/get_clipboard_string) the encoder needs for
// Shift+Ctrl+C/V. Selection tracking itself stays with the renderer.
type Clipboard interface {
	SetText(s string)
	Text() string
}

// Encode maps a key event to outbound PTY bytes, given whether
// application cursor-key mode (DECCKM) is active. It returns handled =
// false for key releases and anything it doesn't recognize, in which
// case the caller should not write the (empty) result anywhere.
//
// Any handled keystroke is expected to cancel the current scrollback
// offset; callers should call Scroller.CancelScrollback when handled is
// true, which Encode itself does not do since it has no Scroller
// dependency.
//
// clip may be nil; Shift+Ctrl+C/V are then reported unhandled.
func Encode(ev Event, appCursorKeys bool, clip Clipboard) (out []byte, handled bool) {
	if ev.Action == ActionRelease {
		return nil, false
	}
	if ev.Mod&ModCtrl != 0 && ev.Mod&ModShift != 0 && ev.Mod&ModAlt == 0 {
		switch ev.Key {
		case KeyC:
			if clip == nil {
				return nil, false
			}
			// Copy needs the renderer's current selection text, which this
			// package has no access to; the renderer performs the actual
			// clip.SetText call and only relies on Encode to recognize and
			// consume the chord.
			return nil, true
		case KeyV:
			if clip == nil {
				return nil, false
			}
			return []byte(clip.Text()), true
		}
	}
	if ev.Mod == ModNone || ev.Mod == ModShift {
		if b, ok := encodePlain(ev.Key, appCursorKeys); ok {
			return b, true
		}
	}
	if ev.Mod&ModCtrl != 0 && ev.Mod&ModAlt == 0 {
		if b, ok := encodeCtrl(ev.Key, ev.Mod); ok {
			return b, true
		}
	}
	if ev.Rune != 0 {
		return []byte(string(ev.Rune)), true
	}
	return nil, false
}

func encodePlain(k Key, appCursorKeys bool) ([]byte, bool) {
	switch k {
	case KeyEscape:
		return []byte{0x1B}, true
	case KeyEnter:
		return []byte{0x0D}, true
	case KeyBackspace:
		return []byte{0x7F}, true
	case KeyTab:
		return []byte{0x09}, true
	case KeyUp:
		return cursorSeq('A', appCursorKeys), true
	case KeyDown:
		return cursorSeq('B', appCursorKeys), true
	case KeyRight:
		return cursorSeq('C', appCursorKeys), true
	case KeyLeft:
		return cursorSeq('D', appCursorKeys), true
	case KeyHome:
		return cursorSeq('H', appCursorKeys), true
	case KeyEnd:
		return cursorSeq('F', appCursorKeys), true
	case KeyPageUp:
		return []byte("\x1B[5~"), true
	case KeyPageDown:
		return []byte("\x1B[6~"), true
	case KeyInsert:
		return []byte("\x1B[2~"), true
	case KeyDelete:
		return []byte("\x1B[3~"), true
	case KeyF1:
		return []byte("\x1BOP"), true
	case KeyF2:
		return []byte("\x1BOQ"), true
	case KeyF3:
		return []byte("\x1BOR"), true
	case KeyF4:
		return []byte("\x1BOS"), true
	case KeyF5:
		return []byte("\x1B[15~"), true
	case KeyF6:
		return []byte("\x1B[17~"), true
	case KeyF7:
		return []byte("\x1B[18~"), true
	case KeyF8:
		return []byte("\x1B[19~"), true
	case KeyF9:
		return []byte("\x1B[20~"), true
	case KeyF10:
		return []byte("\x1B[21~"), true
	case KeyF11:
		return []byte("\x1B[23~"), true
	case KeyF12:
		return []byte("\x1B[24~"), true
	}
	return nil, false
}

// cursorSeq emits SS3 (ESC O) for arrows/Home/End when application
// cursor-key mode is set, CSI (ESC [) otherwise.
func cursorSeq(final byte, appCursorKeys bool) []byte {
	if appCursorKeys {
		return []byte{0x1B, 'O', final}
	}
	return []byte{0x1B, '[', final}
}

// encodeCtrl maps Ctrl+A..Ctrl+] to their C0 single-byte equivalents.
func encodeCtrl(k Key, mod Modifier) ([]byte, bool) {
	if k < KeyA || k > KeyRightBracket {
		return nil, false
	}
	b := byte(k) - 'A' + 1
	return []byte{b}, true
}
