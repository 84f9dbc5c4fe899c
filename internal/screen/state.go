// Package screen is the core-owned cell grid and screen model: the
// "component D" of the decoder pipeline. It exposes the TextTerminal
// collaborator contract (size_in_cells, cursor_pos, add_text, erase_*,
// set_fg/bg, scrollback, ...) as methods on State, since the full grid
// is implemented in-core rather than left to an external renderer —
// only glyph rasterization stays out of scope.
package screen

import "unicode"

// EraseMode selects which portion of a line or page an ED/EL command
// clears.
type EraseMode int

const (
	EraseToEnd EraseMode = iota
	EraseToCursor
	EraseAll
	EraseScrollback
)

// Modes holds the five independent mode booleans; grouping them as a
// bitfield in the original is an incidental optimization, not part of
// the contract.
type Modes struct {
	Insert          bool
	AppCursorKeys   bool
	Autowrap        bool
	BracketedPaste  bool
	AlternateScreen bool
}

// State is the ScreenState: current buffer, cursor, saved cursor,
// graphic attributes, mode flags, and the "other buffer" held ready to
// swap back in. Implemented as two owned buffer handles plus an active
// index rather than shared pointers, per the alternate-screen-swap
// design note.
type State struct {
	cols, rows int
	buffers    [2]*Buffer // 0 = primary, 1 = alternate
	active     int

	Cursor      Cursor
	savedCursor Cursor
	Attrs       Attrs
	Modes       Modes

	scrollOffset int // lines scrolled back from the bottom, 0 = live view

	bell func()
}

// New builds a ScreenState with the given grid size and scrollback cap
// (0 = unbounded) for the primary buffer.
func New(cols, rows, scrollbackCap int) *State {
	s := &State{cols: cols, rows: rows}
	s.buffers[0] = NewPrimaryBuffer(cols, rows, scrollbackCap)
	s.buffers[1] = NewAlternateBuffer(cols, rows)
	s.Attrs = DefaultAttrs()
	s.Modes.Autowrap = true
	return s
}

// OnBell registers the callback invoked by BEL (0x07).
func (s *State) OnBell(f func()) { s.bell = f }

// SizeInCells reports the grid dimensions.
func (s *State) SizeInCells() (cols, rows int) { return s.cols, s.rows }

// Active returns the currently active buffer.
func (s *State) Active() *Buffer { return s.buffers[s.active] }

// Other returns the buffer not currently active.
func (s *State) Other() *Buffer { return s.buffers[1-s.active] }

// CursorPos returns the current cursor position.
func (s *State) CursorPos() Cursor { return s.Cursor }

// SetCursorPos sets the cursor, clamping to the grid bounds.
func (s *State) SetCursorPos(c Cursor) {
	c.Clamp(s.cols, s.rows)
	s.Cursor = c
}

// SetCursorX sets only the column, clamping.
func (s *State) SetCursorX(col int) {
	s.Cursor.Col = col
	s.Cursor.Clamp(s.cols, s.rows)
}

// MoveCursor applies a relative delta, clamping the result.
func (s *State) MoveCursor(dCol, dRow int) {
	s.Cursor.Col += dCol
	s.Cursor.Row += dRow
	s.Cursor.Clamp(s.cols, s.rows)
}

// CurrentLine returns the Line at the cursor's row.
func (s *State) CurrentLine() *Line {
	return s.Active().Line(s.Cursor.Row)
}

// LineAt returns the Line at visible row i.
func (s *State) LineAt(i int) *Line {
	return s.Active().Line(i)
}

// LineFeed advances the cursor row, scrolling the active buffer when it
// runs past the last visible row.
func (s *State) LineFeed() {
	s.Cursor.Row++
	if s.Cursor.Row >= s.rows {
		s.Active().ScrollUp()
		s.Cursor.Row = s.rows - 1
	}
}

// AddText writes text at the cursor, honoring insert mode and autowrap;
// autowrap pushes the cursor (and, past the last column, the line) to
// keep later writes on-screen. A combining mark (unicode.Mn, e.g. an
// NFD-decomposed accent) folds onto the cell just written instead of
// consuming a column of its own, per the code-point-sequence cell model.
func (s *State) AddText(text []rune) {
	if len(text) == 0 {
		return
	}
	autowrap := s.Modes.Autowrap
	for _, r := range text {
		if unicode.Is(unicode.Mn, r) && s.Cursor.Col > 0 {
			s.CurrentLine().AppendCombiningAt(s.Cursor.Col-1, r)
			continue
		}
		if s.Cursor.Col >= s.cols {
			if !autowrap {
				s.Cursor.Col = s.cols - 1
			} else {
				s.LineFeed()
				s.Cursor.Col = 0
			}
		}
		s.CurrentLine().AddText(s.Cursor.Col, []rune{r}, s.Attrs, s.Modes.Insert)
		s.Cursor.Col++
	}
}

// EraseInLine implements EL: 0 cursor->EOL, 1 BOL->cursor+1, 2 entire line.
func (s *State) EraseInLine(mode EraseMode) {
	line := s.CurrentLine()
	switch mode {
	case EraseToEnd:
		line.EraseText(s.Cursor.Col, line.Width()-s.Cursor.Col)
	case EraseToCursor:
		line.EraseText(0, s.Cursor.Col+1)
	case EraseAll:
		line.EraseText(0, line.Width())
	}
}

// ErasePage implements ED p=2: clear every visible line.
func (s *State) ErasePage() {
	buf := s.Active()
	for i := 0; i < s.rows; i++ {
		buf.Line(i).EraseText(0, buf.Cols())
	}
}

// EraseToEndOfPage implements ED p=0: erase from cursor to end of page.
func (s *State) EraseToEndOfPage() {
	s.EraseInLine(EraseToEnd)
	buf := s.Active()
	for row := s.Cursor.Row + 1; row < s.rows; row++ {
		buf.Line(row).EraseText(0, buf.Cols())
	}
}

// EraseToCursor implements ED p=1: erase from start of page to cursor.
func (s *State) EraseToCursor() {
	buf := s.Active()
	for row := 0; row < s.Cursor.Row; row++ {
		buf.Line(row).EraseText(0, buf.Cols())
	}
	s.EraseInLine(EraseToCursor)
}

// EraseBuffer implements ED p=3: erase scrollback only.
func (s *State) EraseBuffer() {
	s.Active().ClearScrollback()
}

// DeleteCells implements DCH: delete count cells at the cursor, shifting
// the remainder of the line left.
func (s *State) DeleteCells(count int) {
	s.CurrentLine().DeleteText(s.Cursor.Col, count)
}

// EraseCells implements ECH: overwrite count cells at the cursor without
// shifting.
func (s *State) EraseCells(count int) {
	s.CurrentLine().EraseText(s.Cursor.Col, count)
}

// SetFg and SetBg update the graphic-rendition state SGR mutates.
func (s *State) SetFg(c Color) { s.Attrs.Fg = c }
func (s *State) SetBg(c Color) { s.Attrs.Bg = c }

// SetFontStyle updates the style slot.
func (s *State) SetFontStyle(fs FontStyle) { s.Attrs.Style = fs }

// SetDecoration updates the decoration slot.
func (s *State) SetDecoration(d Decoration) { s.Attrs.Decoration = d }

// SetIntensity updates Normal/Bright.
func (s *State) SetIntensity(i Intensity) { s.Attrs.Intensity = i }

// ResetAttrs restores SGR-0 defaults.
func (s *State) ResetAttrs() { s.Attrs = DefaultAttrs() }

// SaveCursor implements DECSC / DECSET 1048 set.
func (s *State) SaveCursor() { s.savedCursor = s.Cursor }

// RestoreCursor implements DECRC / DECSET 1048 reset.
func (s *State) RestoreCursor() { s.Cursor = s.savedCursor }

// Mode47 implements DECSET/DECRST 47: swap the active/other buffer and
// swap cursor with saved cursor, per the alternate-buffer swap
// invariant (the "other" handle is always the currently inactive one).
func (s *State) Mode47(set bool) {
	wantAlt := set
	if wantAlt == (s.active == 1) {
		return
	}
	s.Cursor, s.savedCursor = s.savedCursor, s.Cursor
	s.active = 1 - s.active
	s.Modes.AlternateScreen = s.active == 1
}

// Mode1049 implements DECSET/DECRST 1049: set saves the cursor, switches
// to the alternate buffer, and clears it; reset switches back to the
// primary buffer and restores the cursor.
func (s *State) Mode1049(set bool) {
	if set {
		s.savedCursor = s.Cursor
		if s.active != 1 {
			s.active = 1
			s.Modes.AlternateScreen = true
		}
		s.buffers[1].Clear()
		return
	}
	if s.active != 0 {
		s.active = 0
		s.Modes.AlternateScreen = false
	}
	s.Cursor = s.savedCursor
}

// Scrollback adjusts the view offset by delta lines (positive scrolls
// further into history), clamped to the available scrollback.
func (s *State) Scrollback(delta int) {
	s.scrollOffset += delta
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
	if max := s.Active().ScrollbackLines(); s.scrollOffset > max {
		s.scrollOffset = max
	}
}

// CancelScrollback resets the view to the live bottom, per "any handled
// keystroke cancels the current scrollback offset".
func (s *State) CancelScrollback() { s.scrollOffset = 0 }

// ScrollOffset reports the current scrollback view offset.
func (s *State) ScrollOffset() int { return s.scrollOffset }

// Bell invokes the registered bell callback, if any.
func (s *State) Bell() {
	if s.bell != nil {
		s.bell()
	}
}

// Resize adjusts both buffers and the cursor to a new grid size.
func (s *State) Resize(cols, rows int) {
	s.buffers[0].Resize(cols, rows)
	s.buffers[1].Resize(cols, rows)
	s.cols, s.rows = cols, rows
	s.Cursor.Clamp(cols, rows)
	s.savedCursor.Clamp(cols, rows)
}
