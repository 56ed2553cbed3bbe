package screen

// clampCursor enforces invariant I1: 0 <= row < rows, 0 <= col <= cols.
// clampCursor itself always leaves cursorCol < cols; col == cols is
// the pending-wrap sentinel, which only Print sets (together with
// s.pendingWrap) after writing into the last column with DECAWM on.
func (s *Screen) clampCursor() {
	if s.cursorRow < 0 {
		s.cursorRow = 0
	}
	if s.cursorRow >= s.rows {
		s.cursorRow = s.rows - 1
	}
	if s.cursorCol < 0 {
		s.cursorCol = 0
	}
	if s.cursorCol >= s.cols {
		s.cursorCol = s.cols - 1
	}
}

// moveCursor moves by (dCol, dRow), clamping to bounds (spec CUU/CUD/
// CUF/CUB) and clearing pending-wrap, matching xterm's convention that
// any explicit cursor motion cancels a pending autowrap.
func (s *Screen) moveCursor(dCol, dRow int) {
	s.pendingWrap = false
	s.cursorCol += dCol
	s.cursorRow += dRow
	s.clampCursor()
}

// setCursor sets an absolute 0-based position, clamping to bounds.
func (s *Screen) setCursor(row, col int) {
	s.pendingWrap = false
	s.cursorRow = row
	s.cursorCol = col
	s.clampCursor()
}

// scrollRegion returns the active buffer's current 0-based scroll
// region, inclusive.
func (s *Screen) scrollRegion() (top, bottom int) {
	b := s.active()
	return b.scrollTop, b.scrollBottom
}

// lineFeed advances the cursor one row, scrolling the active scroll
// region up if already at its bottom (spec §4.3 step 1, and IND/NEL/
// LF execute semantics). On the primary buffer, rows scrolled off a
// region whose top is row 0 are pushed to scrollback; a DECSTBM region
// with a lower top margin never feeds scrollback.
func (s *Screen) lineFeed() {
	b := s.active()
	if s.cursorRow < b.scrollBottom {
		s.cursorRow++
		s.clampCursor()
		return
	}
	s.scrollUp(1)
}

// scrollUp scrolls the active scroll region up by n, feeding evicted
// rows to scrollback only when on the primary buffer and the region's
// top is row 0 (spec I6, §3 Scrollback).
func (s *Screen) scrollUp(n int) {
	b := s.active()
	discarded := b.grid.ShiftUp(b.scrollTop, b.scrollBottom, n)
	if !s.onAlt && b.scrollTop == 0 && len(discarded) > 0 {
		s.scrollback.Push(discarded...)
		s.shiftSelectionForEviction(len(discarded))
	}
}

// scrollDown scrolls the active scroll region down by n (SD, RI at
// top margin).
func (s *Screen) scrollDown(n int) {
	b := s.active()
	b.grid.ShiftDown(b.scrollTop, b.scrollBottom, n)
}

// reverseIndex moves the cursor up one row, scrolling the region down
// if already at its top (ESC M).
func (s *Screen) reverseIndex() {
	b := s.active()
	if s.cursorRow > b.scrollTop {
		s.cursorRow--
		s.clampCursor()
		return
	}
	s.scrollDown(1)
}

func (s *Screen) carriageReturn() {
	s.pendingWrap = false
	s.cursorCol = 0
}

func (s *Screen) backspace() {
	s.pendingWrap = false
	if s.cursorCol > 0 {
		s.cursorCol--
	}
}

// tab advances to the next tab stop, or the last column if none
// remain.
func (s *Screen) tab() {
	b := s.active()
	for c := s.cursorCol + 1; c < s.cols; c++ {
		if b.tabStops[c] {
			s.cursorCol = c
			return
		}
	}
	s.cursorCol = s.cols - 1
}

func (s *Screen) setTabStop() {
	s.active().tabStops[s.cursorCol] = true
}

func (s *Screen) clearTabStop(all bool) {
	b := s.active()
	if all {
		b.tabStops = map[int]bool{}
		return
	}
	delete(b.tabStops, s.cursorCol)
}

// saveCursor implements DECSC/SCOSC: cursor position, pending-wrap,
// SGR, and (per Open Question b) the pending-wrap bit.
func (s *Screen) saveCursor() {
	b := s.active()
	b.saved = savedCursor{
		row:         s.cursorRow,
		col:         s.cursorCol,
		pendingWrap: s.pendingWrap,
		fg:          s.fg,
		bg:          s.bg,
		style:       s.style,
		valid:       true,
	}
	if s.pendingWrap {
		b.saved.col = s.cols
	}
}

// restoreCursor implements DECRC/SCORC.
func (s *Screen) restoreCursor() {
	b := s.active()
	if !b.saved.valid {
		s.setCursor(0, 0)
		return
	}
	s.fg = b.saved.fg
	s.bg = b.saved.bg
	s.style = b.saved.style
	if b.saved.col >= s.cols {
		s.cursorRow = b.saved.row
		s.cursorCol = s.cols - 1
		s.pendingWrap = true
		s.clampCursor()
		return
	}
	s.pendingWrap = false
	s.cursorRow = b.saved.row
	s.cursorCol = b.saved.col
	s.clampCursor()
}
