package vtparse

import (
	"fmt"
	"strings"

	"termic/internal/logx"
	"termic/internal/params"
	"termic/internal/screen"
)

// isPrivateCSI reports whether the accumulated parameter bytes mark a
// DEC-private sequence: the leading byte is one of "<=>?" or the final
// command falls in the p-~ range the spec groups private modes under.
// 'r' (DECSTBM) is the one final in that range dispatched publicly.
func isPrivateCSI(seq string, final byte) bool {
	if len(seq) > 0 {
		switch seq[0] {
		case '<', '=', '>', '?':
			return true
		}
	}
	return final >= 'p' && final <= '~' && final != 'r'
}

func (d *Decoder) dispatchCSI(seq string, final byte) {
	if isPrivateCSI(seq, final) {
		d.dispatchPrivate(strings.TrimLeft(seq, "<=>?"), final)
		return
	}
	d.dispatchPublic(seq, final)
}

func (d *Decoder) dispatchPublic(seq string, final byte) {
	v := params.NewView(seq)
	switch final {
	case 'A': // CUU
		p := 1
		params.Parse("CUU", v, &p)
		d.screen.MoveCursor(0, -p)
	case 'B': // CUD
		p := 1
		params.Parse("CUD", v, &p)
		d.screen.MoveCursor(0, p)
	case 'C': // CUF
		p := 1
		params.Parse("CUF", v, &p)
		d.screen.MoveCursor(p, 0)
	case 'D': // CUB
		p := 1
		params.Parse("CUB", v, &p)
		d.screen.MoveCursor(-p, 0)
	case 'G': // CHA
		col := 1
		params.Parse("CHA", v, &col)
		d.screen.SetCursorX(col - 1)
	case 'H', 'f': // CUP / HVP
		row, col := 1, 1
		params.Parse("CUP", v, &row, &col)
		d.screen.SetCursorPos(screen.Cursor{Col: col - 1, Row: row - 1})
	case 'J': // ED
		p := 0
		params.Parse("ED", v, &p)
		switch p {
		case 0:
			d.screen.EraseToEndOfPage()
		case 1:
			d.screen.EraseToCursor()
		case 2:
			d.screen.ErasePage()
		case 3:
			d.screen.EraseBuffer()
		default:
			logx.Warnf("vtparse: ED unknown parameter %d", p)
		}
	case 'K': // EL
		p := 0
		params.Parse("EL", v, &p)
		switch p {
		case 0:
			d.screen.EraseInLine(screen.EraseToEnd)
		case 1:
			d.screen.EraseInLine(screen.EraseToCursor)
		case 2:
			d.screen.EraseInLine(screen.EraseAll)
		default:
			logx.Warnf("vtparse: EL unknown parameter %d", p)
		}
	case 'P': // DCH
		p := 1
		params.Parse("DCH", v, &p)
		d.screen.DeleteCells(p)
	case 'X': // ECH
		p := 1
		params.Parse("ECH", v, &p)
		d.screen.EraseCells(p)
	case 'c': // DA
		p := 0
		params.Parse("DA", v, &p)
		if d.reply != nil {
			fmt.Fprint(d.reply, "\x1B[?1;2c")
		}
	case 'd': // VPA
		p := 1
		params.Parse("VPA", v, &p)
		cur := d.screen.CursorPos()
		d.screen.SetCursorPos(screen.Cursor{Col: cur.Col, Row: p - 1})
	case 'e': // VPR
		p := 1
		params.Parse("VPR", v, &p)
		d.screen.MoveCursor(0, p)
	case 'h': // SM
		p := 0
		params.Parse("SM", v, &p)
		if p == 4 {
			d.screen.Modes.Insert = true
		}
		return
	case 'l': // RM
		p := 0
		params.Parse("RM", v, &p)
		if p == 4 {
			d.screen.Modes.Insert = false
		}
		return
	case 'm': // SGR
		d.dispatchSGR(v)
		return
	case 'r': // DECSTBM — parsed and discarded, cursor homes
		d.screen.SetCursorPos(screen.Cursor{Col: 0, Row: 0})
	default:
		logx.Debugf("vtparse: unhandled CSI final %q (params %q)", string(final), seq)
	}
}

func (d *Decoder) dispatchPrivate(seq string, final byte) {
	set := final == 'h'
	if final != 'h' && final != 'l' {
		logx.Debugf("vtparse: unhandled private CSI final %q", string(final))
		return
	}
	v := params.NewView(seq)
	mode := 0
	params.Parse("DECSET/DECRST", v, &mode)
	switch mode {
	case 1: // DECCKM
		d.screen.Modes.AppCursorKeys = set
	case 3: // DECCOLM
		logx.Debugf("vtparse: DECCOLM ignored")
	case 7: // DECAWM
		d.screen.Modes.Autowrap = set
	case 47:
		d.screen.Mode47(set)
	case 1048:
		if set {
			d.screen.SaveCursor()
		} else {
			d.screen.RestoreCursor()
		}
	case 1049:
		d.screen.Mode1049(set)
	case 2004:
		d.screen.Modes.BracketedPaste = set
	default:
		logx.Debugf("vtparse: unhandled private mode %d", mode)
	}
}
