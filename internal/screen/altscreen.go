package screen

import "github.com/itsserbin/ferrum/internal/grid"

// setScrollRegion implements DECSTBM (spec §4.4 "r"): top/bottom are
// 1-based and inclusive. A bottom past the last row is clamped to the
// last row; a top of 0 or a top below the (clamped) bottom is ignored
// per spec §4.8 ("Invalid argument... ignored, previous state
// retained"). A valid request moves the cursor to (0,0) per spec.
func (s *Screen) setScrollRegion(top, bottom int) {
	t, b := top-1, bottom-1
	if b >= s.rows {
		b = s.rows - 1
	}
	if t < 0 || t > b {
		return
	}
	buf := s.active()
	buf.scrollTop = t
	buf.scrollBottom = b
	s.setCursor(0, 0)
}

// setAltScreen implements spec §4.5: modes 47/1047 swap only, mode
// 1049 additionally saves/restores cursor+SGR+scroll-region+tab-stops
// and clears on entry. Grounded on the teacher's
// enterAlternateScreen/exitAlternateScreen (parser/parser.go), which
// allocates a fresh grid lazily and swaps the active pointer; this
// version keeps the alt grid alive across 47/1047 toggles too (not
// just 1049) since §4.5 step 1 only says "if alt_grid is absent,
// allocate" for 1049 but xterm's 47/1047 share the same buffer.
func (s *Screen) setAltScreen(on, withSave bool) {
	if on {
		s.enterAlt(withSave)
	} else {
		s.exitAlt(withSave)
	}
}

func (s *Screen) enterAlt(withSave bool) {
	if s.onAlt {
		return
	}
	if s.alt == nil {
		s.alt = newBuffer(s.cols, s.rows)
	} else {
		// A reused alt buffer may carry a scroll region narrowed by a
		// DECSTBM issued during a previous 1049 session; spec §4.5 step 5
		// requires every entry to reset it to the full screen, not just
		// the first allocation.
		s.alt.scrollTop, s.alt.scrollBottom = 0, s.rows-1
		s.alt.tabStops = defaultTabStops(s.cols)
	}
	if withSave {
		main := s.primary
		main.altSaved = savedCursor{
			row: s.cursorRow, col: s.cursorCol, pendingWrap: s.pendingWrap,
			fg: s.fg, bg: s.bg, style: s.style, valid: true,
		}
	}
	s.onAlt = true
	if withSave {
		s.active().grid.ClearAll()
		s.setCursor(0, 0)
	}
}

func (s *Screen) exitAlt(withSave bool) {
	if !s.onAlt {
		return
	}
	s.onAlt = false
	if withSave {
		saved := s.primary.altSaved
		if saved.valid {
			s.fg, s.bg, s.style = saved.fg, saved.bg, saved.style
			s.cursorRow, s.cursorCol, s.pendingWrap = saved.row, saved.col, saved.pendingWrap
			s.clampCursor()
		}
	}
}

// eraseInDisplay implements ED (spec §4.4 "J"): 0 cursor→end, 1
// start→cursor, 2/3 entire screen (3 also clears scrollback, per the
// Open Question decision in DESIGN.md). Cursor position is preserved
// in every mode.
func (s *Screen) eraseInDisplay(mode int) {
	b := s.active()
	switch mode {
	case 0:
		s.eraseInLineRange(s.cursorCol, s.cols-1, s.cursorRow)
		for r := s.cursorRow + 1; r < s.rows; r++ {
			b.grid.ClearRow(r)
		}
	case 1:
		s.eraseInLineRange(0, s.cursorCol, s.cursorRow)
		for r := 0; r < s.cursorRow; r++ {
			b.grid.ClearRow(r)
		}
	case 2:
		b.grid.ClearAll()
	case 3:
		b.grid.ClearAll()
		if !s.onAlt {
			s.scrollback.Clear()
		}
	}
}

// eraseInLine implements EL (spec §4.4 "K"): same three modes as ED
// but scoped to the cursor's row.
func (s *Screen) eraseInLine(mode int) {
	switch mode {
	case 0:
		s.eraseInLineRange(s.cursorCol, s.cols-1, s.cursorRow)
	case 1:
		s.eraseInLineRange(0, s.cursorCol, s.cursorRow)
	case 2:
		s.eraseInLineRange(0, s.cols-1, s.cursorRow)
	}
}

func (s *Screen) eraseInLineRange(from, to, row int) {
	if from < 0 {
		from = 0
	}
	if to >= s.cols {
		to = s.cols - 1
	}
	b := s.active()
	r := b.grid.Row(row)
	if r.Cells == nil {
		return
	}
	for c := from; c <= to; c++ {
		r.Cells[c] = grid.Cell{Char: ' ', Fg: s.fg, Bg: s.bg}
	}
	b.grid.ReplaceRow(row, r)
}

// insertLines implements IL (spec §4.4 "L"): insert n blank lines at
// the cursor row, within the active scroll region, pushing the
// region's bottom rows off.
func (s *Screen) insertLines(n int) {
	b := s.active()
	top, bottom := b.scrollTop, b.scrollBottom
	if s.cursorRow < top || s.cursorRow > bottom {
		return
	}
	b.grid.ShiftDown(s.cursorRow, bottom, n)
}

// deleteLines implements DL (spec §4.4 "M"): delete n lines at the
// cursor row, pulling the region's bottom rows up. Never feeds
// scrollback (IL/DL are scroll-region-local, not scrollback-feeding
// operations, unlike a full-region scrollUp).
func (s *Screen) deleteLines(n int) {
	b := s.active()
	top, bottom := b.scrollTop, b.scrollBottom
	if s.cursorRow < top || s.cursorRow > bottom {
		return
	}
	b.grid.ShiftUp(s.cursorRow, bottom, n)
}

// deleteChars implements DCH (spec §4.4 "P"): delete n chars at the
// cursor, shifting the remainder of the row left and filling the
// vacated tail with blanks.
func (s *Screen) deleteChars(n int) {
	b := s.active()
	row := b.grid.Row(s.cursorRow)
	if row.Cells == nil {
		return
	}
	if n > s.cols-s.cursorCol {
		n = s.cols - s.cursorCol
	}
	copy(row.Cells[s.cursorCol:], row.Cells[s.cursorCol+n:])
	for c := s.cols - n; c < s.cols; c++ {
		row.Cells[c] = grid.Cell{Char: ' ', Fg: s.fg, Bg: s.bg}
	}
	b.grid.ReplaceRow(s.cursorRow, row)
}

// insertChars implements ICH (spec §4.4 "@"): insert n blanks at the
// cursor, shifting the remainder of the row right (truncating at the
// right margin).
func (s *Screen) insertChars(n int) {
	b := s.active()
	row := b.grid.Row(s.cursorRow)
	if row.Cells == nil {
		return
	}
	if n > s.cols-s.cursorCol {
		n = s.cols - s.cursorCol
	}
	copy(row.Cells[s.cursorCol+n:], row.Cells[s.cursorCol:s.cols-n])
	for c := s.cursorCol; c < s.cursorCol+n; c++ {
		row.Cells[c] = grid.Cell{Char: ' ', Fg: s.fg, Bg: s.bg}
	}
	b.grid.ReplaceRow(s.cursorRow, row)
}

// eraseChars implements ECH (spec §4.4 "X"): overwrite n cells from
// the cursor with blanks, without shifting anything.
func (s *Screen) eraseChars(n int) {
	s.eraseInLineRange(s.cursorCol, s.cursorCol+n-1, s.cursorRow)
}
