package screen

// Buffer is an ordered sequence of Lines. The primary buffer grows at
// the top (scrollback), capped by scrollbackLimit when that is non-zero
// and unbounded otherwise; the alternate buffer has length
// exactly equal to visible rows and is cleared whenever it's entered.
type Buffer struct {
	lines           []*Line // index 0 is the oldest line
	cols            int
	rows            int
	alternate       bool
	scrollbackLimit int // 0 = unbounded; only meaningful for the primary buffer
}

// NewPrimaryBuffer returns a Buffer seeded with rows blank lines and an
// optional scrollback cap (0 disables the cap).
func NewPrimaryBuffer(cols, rows, scrollbackLimit int) *Buffer {
	b := &Buffer{cols: cols, rows: rows, scrollbackLimit: scrollbackLimit}
	b.lines = make([]*Line, rows)
	for i := range b.lines {
		b.lines[i] = NewLine(cols)
	}
	return b
}

// NewAlternateBuffer returns a fixed-length Buffer with no scrollback.
func NewAlternateBuffer(cols, rows int) *Buffer {
	b := &Buffer{cols: cols, rows: rows, alternate: true}
	b.lines = make([]*Line, rows)
	for i := range b.lines {
		b.lines[i] = NewLine(cols)
	}
	return b
}

// Cols and Rows report the buffer's configured visible dimensions.
func (b *Buffer) Cols() int { return b.cols }
func (b *Buffer) Rows() int { return b.rows }

// Clear replaces every line with a fresh blank, required "cleared on
// entry" for the alternate buffer and usable for ED p=2/3 on either.
func (b *Buffer) Clear() {
	for i := range b.lines {
		b.lines[i] = NewLine(b.cols)
	}
}

// ClearScrollback drops every line except the currently visible rows,
// used by ED p=3 (erase scrollback) on the primary buffer.
func (b *Buffer) ClearScrollback() {
	if len(b.lines) > b.rows {
		b.lines = b.lines[len(b.lines)-b.rows:]
	}
}

// TotalLines reports how many lines the buffer currently holds,
// including scrollback.
func (b *Buffer) TotalLines() int { return len(b.lines) }

// ScrollbackLines reports how many lines are above the visible window.
func (b *Buffer) ScrollbackLines() int {
	if len(b.lines) <= b.rows {
		return 0
	}
	return len(b.lines) - b.rows
}

// VisibleLine returns the line at visible row i (0 = top of the current
// window), offset upward into scrollback by offset lines.
func (b *Buffer) VisibleLine(i, offset int) *Line {
	idx := len(b.lines) - b.rows - offset + i
	if idx < 0 || idx >= len(b.lines) {
		return NewLine(b.cols)
	}
	return b.lines[idx]
}

// Line returns the line at visible row i with no scrollback offset —
// the row a cursor-relative operation addresses.
func (b *Buffer) Line(i int) *Line {
	return b.VisibleLine(i, 0)
}

// ScrollUp appends a new blank line at the bottom, as LF past the last
// row or an explicit scroll does. The primary buffer keeps the pushed
// line as scrollback (capped by scrollbackLimit, if set); the alternate
// buffer has no scrollback and simply drops its oldest line.
func (b *Buffer) ScrollUp() {
	b.lines = append(b.lines, NewLine(b.cols))
	if b.alternate {
		if len(b.lines) > b.rows {
			b.lines = b.lines[len(b.lines)-b.rows:]
		}
		return
	}
	if b.scrollbackLimit > 0 {
		maxLines := b.rows + b.scrollbackLimit
		if len(b.lines) > maxLines {
			b.lines = b.lines[len(b.lines)-maxLines:]
		}
	}
}

// Resize adjusts the buffer's visible dimensions. Existing lines are
// padded or trimmed to the new column width; row growth adds blank
// lines at the bottom, row shrinkage trims from the top of the visible
// window (pushing the trimmed rows into scrollback on the primary
// buffer, dropping them on the alternate buffer).
func (b *Buffer) Resize(cols, rows int) {
	for _, l := range b.lines {
		if l.Width() < cols {
			l.ensure(cols)
		} else if l.Width() > cols {
			l.cells = l.cells[:cols]
		}
	}
	b.cols = cols
	if rows > b.rows {
		for i := 0; i < rows-b.rows; i++ {
			b.lines = append(b.lines, NewLine(cols))
		}
	} else if rows < b.rows && b.alternate {
		if len(b.lines) > rows {
			b.lines = b.lines[len(b.lines)-rows:]
		}
	}
	b.rows = rows
}
