// Package termcolor resolves the X11-format foreground/background
// colors termic replies with for OSC 10/11 "?" queries, and the
// capability probing the CLI demo renderer needs to decide a color
// profile.
package termcolor

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"termic/internal/screen"
)

// ColorToX11 converts a termenv.Color to the "rgb:rrrr/gggg/bbbb" format
// OSC 10/11 replies use.
func ColorToX11(c termenv.Color) string {
	if c == nil {
		return ""
	}
	if rgb, ok := c.(termenv.RGBColor); ok {
		hex := string(rgb)
		if len(hex) == 7 && hex[0] == '#' {
			r, _ := strconv.ParseUint(hex[1:3], 16, 8)
			g, _ := strconv.ParseUint(hex[3:5], 16, 8)
			b, _ := strconv.ParseUint(hex[5:7], 16, 8)
			return fmt.Sprintf("rgb:%04x/%04x/%04x", r*0x101, g*0x101, b*0x101)
		}
	}
	converted := termenv.ConvertToRGB(c)
	r := uint8(converted.R*255 + 0.5)
	g := uint8(converted.G*255 + 0.5)
	b := uint8(converted.B*255 + 0.5)
	return fmt.Sprintf("rgb:%04x/%04x/%04x", uint16(r)*0x101, uint16(g)*0x101, uint16(b)*0x101)
}

// FallbackPalette derives OSC 10/11-compatible colors from COLORFGBG
// when the outer terminal doesn't answer a direct query. Defaults to a
// dark background when parsing fails.
func FallbackPalette(colorfgbg string) (fg, bg string) {
	parts := strings.Split(strings.TrimSpace(colorfgbg), ";")
	bgDark := true
	bgField := ""
	if len(parts) >= 2 {
		bgField = strings.TrimSpace(parts[1])
	} else if len(parts) == 1 {
		bgField = strings.TrimSpace(parts[0])
	}
	if bgField != "" {
		if idx, err := strconv.Atoi(bgField); err == nil {
			bgDark = idx < 8
		}
	}
	if bgDark {
		return "rgb:ffff/ffff/ffff", "rgb:0000/0000/0000"
	}
	return "rgb:0000/0000/0000", "rgb:ffff/ffff/ffff"
}

// ToTermenv converts a screen.Color into a profile-appropriate
// termenv.Color for the CLI demo renderer, returning nil for
// screen.ColorDefault so the caller leaves that channel unstyled.
func ToTermenv(profile termenv.Profile, c screen.Color) termenv.Color {
	switch c.Kind {
	case screen.ColorPalette4, screen.ColorPalette8:
		return profile.Color(strconv.Itoa(int(c.Index)))
	case screen.ColorTrueColor:
		return profile.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
	default:
		return nil
	}
}

// Query resolves the foreground/background reply pair a new session
// should configure its decoder with, consulting TERMIC_OSC_FG/BG
// overrides, then termenv's detected palette, then COLORFGBG.
func Query() (fg, bg string) {
	if v := os.Getenv("TERMIC_OSC_FG"); v != "" {
		fg = v
	}
	if v := os.Getenv("TERMIC_OSC_BG"); v != "" {
		bg = v
	}
	if fg != "" && bg != "" {
		return fg, bg
	}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		out := termenv.NewOutput(os.Stdout)
		if fg == "" {
			fg = ColorToX11(out.ForegroundColor())
		}
		if bg == "" {
			bg = ColorToX11(out.BackgroundColor())
		}
	}
	if fg != "" && bg != "" {
		return fg, bg
	}
	fallbackFg, fallbackBg := FallbackPalette(os.Getenv("COLORFGBG"))
	if fg == "" {
		fg = fallbackFg
	}
	if bg == "" {
		bg = fallbackBg
	}
	return fg, bg
}
