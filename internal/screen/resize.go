package screen

import "github.com/itsserbin/ferrum/internal/reflow"

// Resize implements spec §4.6 at the screen-model level: it delegates
// the grid mechanics to package reflow and then re-derives the
// screen's own view of the cursor, scroll region, and selection.
// Resizing to zero rows or cols is rejected per §4.8 ("previous
// dimensions retained"). Callers (session.Session) must hold the
// screen-model lock across this call (§5).
func (s *Screen) Resize(cols, rows int) {
	if cols < 1 || rows < 1 {
		return
	}
	if cols == s.cols && rows == s.rows {
		return
	}

	oldScrollbackLen := s.scrollback.Len()

	target := reflow.Target{
		Grid:       s.primary.grid,
		Scrollback: s.scrollback,
		CursorRow:  s.cursorRow,
		CursorCol:  s.cursorCol,
	}
	res := reflow.Resize(target, cols, rows)

	if s.alt != nil {
		reflow.AltResize(s.alt.grid, cols, rows)
	}

	if delta := s.scrollback.Len() - oldScrollbackLen; delta > 0 {
		// Rows moved from the visible grid into scrollback: every
		// absolute position on screen before the resize shifts up by
		// that many rows, exactly as a scroll-eviction would (spec §9
		// "Selection survives eviction by clamping").
		s.shiftSelectionForEviction(delta)
	} else if delta < 0 {
		// Rows were pulled back out of scrollback (grow regime): shift
		// the other way so selections anchored in now-visible rows
		// keep pointing at the same content. A selection cannot be
		// un-clamped once truncated, so this is a best-effort nudge.
		s.selection.anchor.Row -= delta
		s.selection.ext.Row -= delta
	} else if s.selection.active {
		// No net change in scrollback length (in either regime): a
		// reflow, or an eviction at the scrollback cap, can still move
		// absolute positions in a way this package cannot re-derive
		// without reflow's logical-offset machinery, so the selection
		// is cleared; per §4.6 "if conversion is ambiguous, the
		// selection is cleared."
		s.ClearSelection()
	}

	s.cols = cols
	s.rows = rows
	s.cursorRow = res.CursorRow
	s.cursorCol = res.CursorCol
	s.pendingWrap = false

	s.primary.scrollTop, s.primary.scrollBottom = 0, rows-1
	if s.alt != nil {
		s.alt.scrollTop, s.alt.scrollBottom = 0, rows-1
	}
}
