package termcolor

import (
	"testing"

	"github.com/muesli/termenv"

	"termic/internal/screen"
)

func TestColorToX11_RGBColor(t *testing.T) {
	got := ColorToX11(termenv.RGBColor("#ff8000"))
	want := "rgb:ffff/8080/0000"
	if got != want {
		t.Errorf("ColorToX11 = %q, want %q", got, want)
	}
}

func TestColorToX11_NilColor(t *testing.T) {
	if got := ColorToX11(nil); got != "" {
		t.Errorf("ColorToX11(nil) = %q, want empty", got)
	}
}

func TestFallbackPalette_DarkBackground(t *testing.T) {
	fg, bg := FallbackPalette("15;0")
	if fg != "rgb:ffff/ffff/ffff" || bg != "rgb:0000/0000/0000" {
		t.Errorf("got fg=%q bg=%q, want light-on-dark", fg, bg)
	}
}

func TestFallbackPalette_LightBackground(t *testing.T) {
	fg, bg := FallbackPalette("0;15")
	if fg != "rgb:0000/0000/0000" || bg != "rgb:ffff/ffff/ffff" {
		t.Errorf("got fg=%q bg=%q, want dark-on-light", fg, bg)
	}
}

func TestFallbackPalette_UnparsableDefaultsDark(t *testing.T) {
	fg, bg := FallbackPalette("")
	if fg != "rgb:ffff/ffff/ffff" || bg != "rgb:0000/0000/0000" {
		t.Errorf("got fg=%q bg=%q, want dark default", fg, bg)
	}
}

func TestToTermenv_DefaultColorIsNil(t *testing.T) {
	profile := termenv.TrueColor
	if got := ToTermenv(profile, screen.DefaultColor); got != nil {
		t.Errorf("ToTermenv(default) = %v, want nil", got)
	}
}

func TestToTermenv_TrueColorRoundTrips(t *testing.T) {
	profile := termenv.TrueColor
	c := screen.TrueColorRGB(10, 20, 30)
	got := ToTermenv(profile, c)
	if got == nil {
		t.Fatal("ToTermenv(truecolor) = nil, want a color")
	}
	if got.Sequence(false) == "" {
		t.Error("expected a non-empty ANSI sequence for true color")
	}
}

func TestToTermenv_Palette8(t *testing.T) {
	profile := termenv.ANSI256
	c := screen.Palette8Color(196)
	if got := ToTermenv(profile, c); got == nil {
		t.Error("ToTermenv(palette8) = nil, want a color")
	}
}
