package cmd

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"termic/internal/input"
)

// scanEvents turns a chunk of raw bytes read from the controlling
// terminal's stdin into the key events the input encoder expects. This
// is the CLI demo renderer's stand-in for the GUI collaborator that
// would normally deliver already-classified key events; it follows the
// teacher's escape-sequence byte classification style (matching on the
// CSI/SS3 final byte) rather than a full terminfo-driven keymap.
func scanEvents(buf []byte) []input.Event {
	var events []input.Event
	for len(buf) > 0 {
		b := buf[0]
		switch {
		case b == 0x1B:
			seq, rest := takeEscapeSequence(buf)
			events = append(events, decodeEscapeSequence(seq))
			buf = rest
		case b == 0x0D:
			events = append(events, input.Event{Key: input.KeyEnter})
			buf = buf[1:]
		case b == 0x7F:
			events = append(events, input.Event{Key: input.KeyBackspace})
			buf = buf[1:]
		case b == 0x09:
			events = append(events, input.Event{Key: input.KeyTab})
			buf = buf[1:]
		case b >= 0x01 && b <= 0x1A:
			events = append(events, input.Event{Key: input.Key(b - 1 + 'A'), Mod: input.ModCtrl})
			buf = buf[1:]
		default:
			r, size := utf8.DecodeRune(buf)
			if r == utf8.RuneError && size <= 1 {
				buf = buf[1:]
				continue
			}
			events = append(events, input.Event{Rune: r})
			buf = buf[size:]
		}
	}
	return events
}

// takeEscapeSequence consumes a lone ESC, an SS3 (ESC O <final>), or a
// CSI (ESC [ ... <final>) sequence from the front of buf, returning it
// and whatever remains.
func takeEscapeSequence(buf []byte) (seq, rest []byte) {
	if len(buf) < 2 {
		return buf, nil
	}
	switch buf[1] {
	case 'O':
		if len(buf) < 3 {
			return buf, nil
		}
		return buf[:3], buf[3:]
	case '[':
		for i := 2; i < len(buf); i++ {
			if buf[i] >= 0x40 && buf[i] <= 0x7E {
				return buf[:i+1], buf[i+1:]
			}
		}
		return buf, nil
	default:
		return buf[:1], buf[1:]
	}
}

func decodeEscapeSequence(seq []byte) input.Event {
	if len(seq) == 1 {
		return input.Event{Key: input.KeyEscape}
	}
	final := seq[len(seq)-1]
	if seq[1] == 'O' {
		switch final {
		case 'P':
			return input.Event{Key: input.KeyF1}
		case 'Q':
			return input.Event{Key: input.KeyF2}
		case 'R':
			return input.Event{Key: input.KeyF3}
		case 'S':
			return input.Event{Key: input.KeyF4}
		}
	}
	switch final {
	case 'A':
		return input.Event{Key: input.KeyUp}
	case 'B':
		return input.Event{Key: input.KeyDown}
	case 'C':
		return input.Event{Key: input.KeyRight}
	case 'D':
		return input.Event{Key: input.KeyLeft}
	case 'H':
		return input.Event{Key: input.KeyHome}
	case 'F':
		return input.Event{Key: input.KeyEnd}
	case '~':
		code, modStr := splitTildeParams(string(seq[2 : len(seq)-1]))
		if key, ok := tildeKey(code); ok {
			return input.Event{Key: key, Mod: xtermModifier(modStr)}
		}
	}
	return input.Event{Key: input.KeyUnknown}
}

// splitTildeParams splits a CSI "~"-terminated body like "5;2" (PageUp
// held with Shift) into its key code and optional xterm modifier code.
func splitTildeParams(body string) (code, mod string) {
	if i := strings.IndexByte(body, ';'); i >= 0 {
		return body[:i], body[i+1:]
	}
	return body, ""
}

func tildeKey(code string) (input.Key, bool) {
	switch code {
	case "2":
		return input.KeyInsert, true
	case "3":
		return input.KeyDelete, true
	case "5":
		return input.KeyPageUp, true
	case "6":
		return input.KeyPageDown, true
	}
	return input.KeyUnknown, false
}

// xtermModifier decodes xterm's "1 + bitmask" modifier encoding (shift=1,
// alt=2, ctrl=4, meta=8) as carried in the second "~" parameter or after
// ';' in CSI final-letter sequences.
func xtermModifier(mod string) input.Modifier {
	n, err := strconv.Atoi(mod)
	if err != nil || n < 1 {
		return input.ModNone
	}
	bits := n - 1
	var m input.Modifier
	if bits&1 != 0 {
		m |= input.ModShift
	}
	if bits&2 != 0 {
		m |= input.ModAlt
	}
	if bits&4 != 0 {
		m |= input.ModCtrl
	}
	if bits&8 != 0 {
		m |= input.ModSuper
	}
	return m
}
