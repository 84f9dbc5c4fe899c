// Package vtparse is the byte-at-a-time ANSI/VT stream decoder:
// component E of the session pipeline. It recognizes C0 control codes,
// 7-bit escape sequences, CSI/OSC sequences, and SGR attributes, and
// drives a screen.State (component D) as it goes.
package vtparse

import (
	"fmt"
	"io"

	"termic/internal/logx"
	"termic/internal/screen"
)

// State is the decoder's own state machine position, distinct from
// screen.State (the grid it drives).
type State int

const (
	StateNormal State = iota
	StateEscape
	StateEscape1
	StateCSI
	StateOSC
)

const esc = 0x1B

// ColorQuery holds the X11-format colors the decoder replies with for
// OSC 10 (foreground) / OSC 11 (background) "?" queries. Either field
// left empty disables that particular reply. This is the one OSC
// exception to "payload is only logged" — added because some shells and
// TUIs block briefly waiting for a reply that would otherwise never
// come.
type ColorQuery struct {
	Fg, Bg string
}

// Decoder is the stream state machine. Create one per session with
// New; Decode is called once per batch of bytes drained from the
// ring.
type Decoder struct {
	state  State
	seq    []byte // input_seq: the in-progress escape/CSI/OSC sequence, verbatim
	text   []byte // input_text: pending text accumulator, tail may be a partial UTF-8 code point

	screen *screen.State
	reply  io.Writer // where DA/OSC-color replies are written (the PTY master)
	colors ColorQuery
}

// New returns a Decoder driving screen and writing protocol replies
// (DA, OSC color queries) to reply.
func New(s *screen.State, reply io.Writer) *Decoder {
	return &Decoder{screen: s, reply: reply}
}

// SetColorQuery configures the OSC 10/11 auto-reply colors.
func (d *Decoder) SetColorQuery(q ColorQuery) { d.colors = q }

// Decode consumes every byte in data through the state machine, then
// flushes any complete pending text once, matching decode_input's
// single end-of-batch flush_text call.
func (d *Decoder) Decode(data []byte) {
	for _, c := range data {
		d.step(c)
	}
	d.flushText()
}

func (d *Decoder) step(c byte) {
	switch d.state {
	case StateNormal:
		d.stepNormal(c)
	case StateEscape:
		d.stepEscape(c)
	case StateEscape1:
		d.stepEscape1(c)
	case StateCSI:
		d.stepCSI(c)
	case StateOSC:
		d.stepOSC(c)
	}
}

func (d *Decoder) stepNormal(c byte) {
	switch c {
	case 0x07: // BEL
		d.screen.Bell()
	case 0x08: // BS
		d.flushText()
		d.screen.MoveCursor(-1, 0)
	case 0x09: // HT — simplified as three literal spaces, not real tab stops
		d.text = append(d.text, ' ', ' ', ' ')
	case 0x0A: // LF
		d.flushText()
		d.screen.LineFeed()
	case 0x0D: // CR
		d.flushText()
		d.screen.SetCursorX(0)
	case esc:
		d.seq = append(d.seq[:0], esc)
		d.state = StateEscape
	default:
		if c < 0x20 {
			logx.Debugf("vtparse: unknown control code 0x%02x", c)
			return
		}
		d.text = append(d.text, c)
	}
}

func isEscapeIntermediate(c byte) bool {
	switch c {
	case ' ', '#', '%', '(', ')', '*', '+', '-', '.', '/':
		return true
	}
	return false
}

func (d *Decoder) stepEscape(c byte) {
	d.seq = append(d.seq, c)
	switch {
	case c == esc:
		d.seq = d.seq[:0]
		d.seq = append(d.seq, esc)
		// stay in Escape
	case isEscapeIntermediate(c):
		d.state = StateEscape1
	case c == '7':
		d.flushText()
		d.screen.SaveCursor()
		d.state = StateNormal
	case c == '8':
		d.flushText()
		d.screen.RestoreCursor()
		d.state = StateNormal
	case c == 'D': // IND
		d.flushText()
		d.screen.MoveCursor(0, 1)
		d.state = StateNormal
	case c == 'E': // NEL
		d.flushText()
		cur := d.screen.CursorPos()
		d.screen.SetCursorPos(screen.Cursor{Col: 0, Row: cur.Row + 1})
		d.state = StateNormal
	case c == 'M': // RI
		d.flushText()
		d.screen.MoveCursor(0, -1)
		d.state = StateNormal
	case c == '[':
		d.seq = d.seq[:0]
		d.state = StateCSI
	case c == ']':
		d.seq = d.seq[:0]
		d.state = StateOSC
	default:
		logx.Debugf("vtparse: unhandled escape %q", c)
		d.state = StateNormal
	}
}

func (d *Decoder) stepEscape1(c byte) {
	seq := append(d.seq, c)
	switch {
	case len(seq) >= 2 && seq[len(seq)-2] == '(' && c == 'B':
		// select US-ASCII, no-op
	case len(seq) >= 2 && seq[len(seq)-2] == '#' && c == '8': // DECALN
		d.flushText()
		d.screen.SetCursorPos(screen.Cursor{Col: 0, Row: 0})
	default:
		logx.Debugf("vtparse: unhandled intermediate sequence %q", seq)
	}
	d.state = StateNormal
}

func isCSIParamByte(c byte) bool {
	return c >= 0x30 && c <= 0x3F
}

func isCSIFinalByte(c byte) bool {
	return c >= 0x40 && c <= 0x7E
}

func (d *Decoder) stepCSI(c byte) {
	if isCSIParamByte(c) {
		d.seq = append(d.seq, c)
		return
	}
	if isCSIFinalByte(c) {
		d.flushText()
		d.dispatchCSI(string(d.seq), c)
		d.seq = d.seq[:0]
		d.state = StateNormal
		return
	}
	// Bytes outside both ranges (e.g. stray intermediates) are ignored,
	// the sequence keeps accumulating toward its final byte.
	d.seq = append(d.seq, c)
}

// isOSCByte matches the printable range an OSC payload may contain:
// 0x08-0x0D and 0x20-0x7E. Anything else terminates the string.
func isOSCByte(c byte) bool {
	if c >= 0x08 && c <= 0x0D {
		return true
	}
	return c >= 0x20 && c <= 0x7E
}

func (d *Decoder) stepOSC(c byte) {
	if isOSCByte(c) {
		d.seq = append(d.seq, c)
		return
	}
	payload := string(d.seq)
	logx.Debugf("vtparse: OSC %q", payload)
	d.respondOSCColors(payload)
	d.seq = d.seq[:0]
	d.state = StateNormal
}

func (d *Decoder) respondOSCColors(payload string) {
	if d.reply == nil {
		return
	}
	switch payload {
	case "10;?":
		if d.colors.Fg != "" {
			fmt.Fprintf(d.reply, "\x1B]10;%s\x1B\\", d.colors.Fg)
		}
	case "11;?":
		if d.colors.Bg != "" {
			fmt.Fprintf(d.reply, "\x1B]11;%s\x1B\\", d.colors.Bg)
		}
	}
}

// flushText commits the complete prefix of the pending text accumulator
// to the screen, retaining any trailing partial UTF-8 code point for
// the next call.
func (d *Decoder) flushText() {
	if len(d.text) == 0 {
		return
	}
	tail := partialTailLen(d.text)
	if tail == len(d.text) {
		return
	}
	complete := d.text[:len(d.text)-tail]
	d.screen.AddText([]rune(string(complete)))
	remaining := append([]byte(nil), d.text[len(d.text)-tail:]...)
	d.text = remaining
}

// utf8LeadLen reports the byte length a UTF-8 lead byte declares: 1 for
// ASCII, 2-4 for a multi-byte lead byte, and 0 for a continuation byte
// or any other byte that cannot start a sequence.
func utf8LeadLen(b byte) int {
	switch {
	case b&0x80 == 0x00:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}

// partialTailLen scans back up to 3 bytes from the end of buf for a
// lead byte whose declared sequence length exceeds the bytes available
// after it, per the design note's "scan back up to 3 bytes" rule.
func partialTailLen(buf []byte) int {
	n := len(buf)
	limit := 3
	if n < limit {
		limit = n
	}
	for back := 1; back <= limit; back++ {
		b := buf[n-back]
		if b&0xC0 == 0x80 {
			continue // continuation byte, keep scanning backward
		}
		if seqLen := utf8LeadLen(b); seqLen > 1 {
			if back < seqLen {
				return back
			}
		}
		return 0
	}
	return 0
}
