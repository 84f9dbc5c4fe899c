package screen

import "strings"

// Line is a variable-width sequence of cells, width up to the current
// screen column count.
type Line struct {
	cells []Cell
}

// NewLine returns a Line of the given width, filled with blanks.
func NewLine(width int) *Line {
	l := &Line{cells: make([]Cell, width)}
	l.Reset()
	return l
}

// Reset fills every cell with the default blank.
func (l *Line) Reset() {
	for i := range l.cells {
		l.cells[i] = blankCell()
	}
}

// Width reports the line's current cell count.
func (l *Line) Width() int { return len(l.cells) }

// Cell returns the cell at col, or a blank if col is out of range.
func (l *Line) Cell(col int) Cell {
	if col < 0 || col >= len(l.cells) {
		return blankCell()
	}
	return l.cells[col]
}

// AppendCombiningAt folds a combining mark onto the cell at col, leaving
// the line's width and every other cell untouched. Out-of-range col is a
// no-op — there is no base cell for the mark to attach to.
func (l *Line) AppendCombiningAt(col int, r rune) {
	if col < 0 || col >= len(l.cells) {
		return
	}
	l.cells[col].AppendCombining(r)
}

func (l *Line) ensure(n int) {
	for len(l.cells) < n {
		l.cells = append(l.cells, blankCell())
	}
}

// AddText writes the runes in text starting at column, stamping each
// with attr. Writing at column > length pads the gap with spaces first.
// When insert is true, the existing cells at column and beyond are
// shifted right by len(text) before the write (bounded to the line's
// current width; insert never grows the line itself).
func (l *Line) AddText(column int, text []rune, attr Attrs, insert bool) {
	if column < 0 {
		column = 0
	}
	l.ensure(column)
	width := len(l.cells)
	if insert && column < width {
		n := len(text)
		if n > width-column {
			n = width - column
		}
		if n > 0 {
			copy(l.cells[column+n:width], l.cells[column:width-n])
		}
	}
	for i, r := range text {
		col := column + i
		l.ensure(col + 1)
		l.cells[col] = newCell(r, attr)
	}
}

// DeleteText removes count cells at column, shifting the remainder left
// and padding the freed tail with blanks. Used by DCH.
func (l *Line) DeleteText(column, count int) {
	if column < 0 || column >= len(l.cells) || count <= 0 {
		return
	}
	end := column + count
	if end > len(l.cells) {
		end = len(l.cells)
	}
	shifted := copy(l.cells[column:], l.cells[end:])
	for i := column + shifted; i < len(l.cells); i++ {
		l.cells[i] = blankCell()
	}
}

// EraseText overwrites count cells at column with blanks, without
// shifting. Used by ECH and the EL/ED family.
func (l *Line) EraseText(column, count int) {
	if count < 0 {
		return
	}
	end := column + count
	if end > len(l.cells) {
		end = len(l.cells)
	}
	for i := column; i < end; i++ {
		if i < 0 {
			continue
		}
		l.cells[i] = blankCell()
	}
}

// Content renders the line as a UTF-8 string, trailing blanks included.
func (l *Line) Content() string {
	var b strings.Builder
	for _, c := range l.cells {
		b.WriteString(c.Text)
	}
	return b.String()
}
