package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"termic/internal/screen"
	"termic/internal/termcolor"
)

// drawGrid repaints the visible grid to out: home cursor, clear,
// rewrite every line styled with termenv, then place the cursor. It is
// the CLI demo renderer's full-repaint strategy — simple rather than
// diff-based, since spec.md's Non-goals already exclude a real GUI
// renderer and this one exists to prove the core end-to-end.
func drawGrid(out io.Writer, scr *screen.State, profile termenv.Profile) {
	cols, rows := scr.SizeInCells()
	var b strings.Builder
	b.WriteString("\033[?25l\033[H")
	for row := 0; row < rows; row++ {
		line := scr.LineAt(row)
		writeStyledLine(&b, line, cols, profile)
		if row < rows-1 {
			b.WriteString("\r\n")
		}
	}
	cur := scr.CursorPos()
	fmt.Fprintf(&b, "\033[%d;%dH\033[?25h", cur.Row+1, cur.Col+1)
	out.Write([]byte(b.String()))
}

func writeStyledLine(b *strings.Builder, line *screen.Line, cols int, profile termenv.Profile) {
	b.WriteString("\033[K")
	col := 0
	for col < cols {
		start := col
		cell := line.Cell(col)
		col++
		for col < cols && sameStyle(line.Cell(col), cell) {
			col++
		}
		writeStyledRun(b, line, start, col, cell, profile)
	}
}

func sameStyle(a, b screen.Cell) bool {
	return a.Foreground == b.Foreground && a.Background == b.Background &&
		a.Style == b.Style && a.Decoration == b.Decoration && a.Intensity == b.Intensity
}

func writeStyledRun(b *strings.Builder, line *screen.Line, start, end int, attrs screen.Cell, profile termenv.Profile) {
	var text strings.Builder
	for i := start; i < end; i++ {
		text.WriteString(line.Cell(i).Text)
	}
	style := termenv.String(text.String())
	if fg := termcolor.ToTermenv(profile, attrs.Foreground); fg != nil {
		style = style.Foreground(fg)
	}
	if bg := termcolor.ToTermenv(profile, attrs.Background); bg != nil {
		style = style.Background(bg)
	}
	if attrs.Style == screen.StyleBold || attrs.Intensity == screen.IntensityBright {
		style = style.Bold()
	}
	if attrs.Style == screen.StyleItalic {
		style = style.Italic()
	}
	if attrs.Decoration == screen.DecorationUnderline {
		style = style.Underline()
	}
	b.WriteString(style.String())
}
