package screen

// FontStyle is one of the three styles the decoder's SGR handling can
// select.
type FontStyle int

const (
	StyleRegular FontStyle = iota
	StyleBold
	StyleItalic
)

// Decoration covers underline and friends; kept as an enum rather than
// a bitmask since the spec names a closed, small set.
type Decoration int

const (
	DecorationNone Decoration = iota
	DecorationUnderline
)

// Intensity is SGR's "mode": Normal or Bright (SGR 1 sets Bright; the
// bright palette parameters 90-97/100-107 select colors 8-15 and leave
// Intensity unchanged).
type Intensity int

const (
	IntensityNormal Intensity = iota
	IntensityBright
)

// Attrs is the graphic-rendition state SGR mutates and Cell captures a
// snapshot of on write.
type Attrs struct {
	Fg         Color
	Bg         Color
	Style      FontStyle
	Decoration Decoration
	Intensity  Intensity
}

// DefaultAttrs is the SGR-0 reset state.
func DefaultAttrs() Attrs {
	return Attrs{Fg: DefaultColor, Bg: DefaultColor}
}

// Cell is one grid position: a base code point plus any combining marks
// (stored together as a UTF-8 string, since Go has no separate
// "combining mark" rune type worth modeling) and a snapshot of the
// graphic attributes in effect when it was written.
type Cell struct {
	Text       string
	Foreground Color
	Background Color
	Style      FontStyle
	Decoration Decoration
	Intensity  Intensity
}

func blankCell() Cell {
	return Cell{Text: " ", Foreground: DefaultColor, Background: DefaultColor}
}

func newCell(r rune, a Attrs) Cell {
	return Cell{
		Text:       string(r),
		Foreground: a.Fg,
		Background: a.Bg,
		Style:      a.Style,
		Decoration: a.Decoration,
		Intensity:  a.Intensity,
	}
}

// AppendCombining folds a combining mark onto the cell's existing text,
// used when the decoder sees a combining code point following a base
// character already written to this position.
func (c *Cell) AppendCombining(r rune) {
	c.Text += string(r)
}
