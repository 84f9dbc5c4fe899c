package vtparse

import (
	"termic/internal/logx"
	"termic/internal/params"
	"termic/internal/screen"
)

// dispatchSGR walks every parameter in v, including the multi-slot
// 38/48 extended-color forms. Only the xterm semicolon form (38;5;idx
// or 38;2;r;g;b) is accepted; the colon-separated ITU T.416 form is not.
func (d *Decoder) dispatchSGR(v *params.View) {
	for {
		p := 0
		params.Next(v, &p)
		d.applySGR(p, v)
		if v.AtEnd() {
			return
		}
	}
}

func (d *Decoder) applySGR(p int, v *params.View) {
	switch {
	case p == 0:
		d.screen.ResetAttrs()
	case p == 1:
		d.screen.SetFontStyle(screen.StyleBold)
		d.screen.SetIntensity(screen.IntensityBright)
	case p >= 30 && p <= 37:
		d.screen.SetFg(screen.Palette4Color(p - 30))
	case p == 39:
		d.screen.SetFg(screen.DefaultColor)
	case p >= 40 && p <= 47:
		d.screen.SetBg(screen.Palette4Color(p - 40))
	case p == 49:
		d.screen.SetBg(screen.DefaultColor)
	case p >= 90 && p <= 97:
		d.screen.SetFg(screen.Palette4Color(p - 90 + 8))
	case p >= 100 && p <= 107:
		d.screen.SetBg(screen.Palette4Color(p - 100 + 8))
	case p == 38:
		if c, ok := decodeExtendedColor(v); ok {
			d.screen.SetFg(c)
		}
	case p == 48:
		if c, ok := decodeExtendedColor(v); ok {
			d.screen.SetBg(c)
		}
	default:
		logx.Debugf("vtparse: unrecognized SGR parameter %d", p)
	}
}

// decodeExtendedColor parses the tail of an already-opened 38/48
// sequence: "5;idx" for 8-bit palette, "2;r;g;b" for 24-bit truecolor.
func decodeExtendedColor(v *params.View) (screen.Color, bool) {
	mode := -1
	more := params.Next(v, &mode)
	switch mode {
	case 5:
		idx := 0
		params.Next(v, &idx)
		return screen.Palette8Color(idx), true
	case 2:
		r, g, b := 0, 0, 0
		params.Next(v, &r)
		params.Next(v, &g)
		params.Next(v, &b)
		return screen.TrueColorRGB(uint8(r), uint8(g), uint8(b)), true
	default:
		if !more {
			logx.Debugf("vtparse: truncated extended color sequence")
		} else {
			logx.Debugf("vtparse: unrecognized extended color mode %d", mode)
		}
		return screen.Color{}, false
	}
}
