package screen

import "github.com/itsserbin/ferrum/internal/grid"

// Snapshot is the read-only renderer contract of spec §6: grid
// dimensions, visible rows, optional scrollback view, cursor, and
// active selection. Callers must take it under the screen-model lock
// (session.Session.Snapshot does) but the returned value itself shares
// no mutable state with the live Screen (every Row is a Row.Clone),
// so rendering afterward needs no further locking, per spec §5
// "Holding the mutex across rendering is forbidden."
type Snapshot struct {
	Cols, Rows int
	visible    []grid.Row

	CursorRow, CursorCol int
	CursorVisible        bool

	OnAltScreen bool

	Title      string
	WorkingDir string

	Selection *Selection

	scrollbackLen int
	scrollback    *grid.Scrollback
}

// VisibleRows returns the current grid's rows, top to bottom.
func (snap Snapshot) VisibleRows() []grid.Row { return snap.visible }

// ScrollbackLen reports how many rows are available for a scrollback
// view (spec §6: "given offset >= 0, rows come from the scrollback
// tail then the primary grid").
func (snap Snapshot) ScrollbackLen() int { return snap.scrollbackLen }

// ViewAt returns `rows` rows of content starting `offset` rows above
// the bottom of the combined scrollback+visible space (offset 0 is
// the ordinary visible grid). Used by a renderer scrolled back into
// history.
func (snap Snapshot) ViewAt(offset, rows int) []grid.Row {
	if offset <= 0 {
		return snap.visible
	}
	if snap.scrollback == nil {
		return snap.visible
	}
	sbLen := snap.scrollback.Len()
	if offset > sbLen {
		offset = sbLen
	}

	out := make([]grid.Row, 0, rows)
	out = append(out, snap.scrollback.Tail(offset)...)
	if len(out) > rows {
		out = out[:rows]
	}
	remaining := rows - len(out)
	if remaining > 0 {
		take := remaining
		if take > len(snap.visible) {
			take = len(snap.visible)
		}
		out = append(out, snap.visible[:take]...)
	}
	return out
}

// Snapshot copies the renderer-visible state. Cheap: cell storage is
// copied per-row (Row.Clone), never shared by reference, per grid's
// "no cell references escape" invariant (spec §3).
func (s *Screen) Snapshot() Snapshot {
	b := s.active()
	rows := make([]grid.Row, len(b.grid.Rows))
	for i, r := range b.grid.Rows {
		rows[i] = r.Clone()
	}
	row, col := s.CursorPosition()
	if col >= s.cols {
		col = s.cols - 1
	}

	sel := *s.selection
	sb := grid.NewScrollback(s.scrollback.Cap())
	sb.SetRows(append([]grid.Row(nil), s.scrollback.All()...))
	return Snapshot{
		Cols:          s.cols,
		Rows:          s.rows,
		visible:       rows,
		CursorRow:     row,
		CursorCol:     col,
		CursorVisible: s.CursorVisible(),
		OnAltScreen:   s.onAlt,
		Title:         s.title,
		WorkingDir:    s.lastWorkingDir,
		Selection:     &sel,
		scrollbackLen: s.scrollback.Len(),
		scrollback:    sb,
	}
}
