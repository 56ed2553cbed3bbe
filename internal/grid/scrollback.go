package grid

// DefaultScrollbackCap is the default bound on scrollback rows (spec
// §3 Scrollback).
const DefaultScrollbackCap = 10000

// Scrollback is a bounded FIFO of rows evicted from the top of the
// primary grid (spec §3). Modeled as a plain slice with a cap, like
// the teacher's grid.scrollback [][]Cell — a ring implemented as a
// growable slice that drops its head is simpler than a circular
// buffer here since pushes happen a handful of rows at a time, not
// per-byte.
type Scrollback struct {
	rows []Row
	cap  int
}

// NewScrollback creates a scrollback ring with the given row cap.
func NewScrollback(cap int) *Scrollback {
	if cap <= 0 {
		cap = DefaultScrollbackCap
	}
	return &Scrollback{cap: cap}
}

// Len returns the number of rows currently held.
func (s *Scrollback) Len() int { return len(s.rows) }

// Cap returns the configured row cap.
func (s *Scrollback) Cap() int { return s.cap }

// Push appends rows (oldest first) to the tail, evicting from the
// head if the cap is exceeded (spec §3: "On cap exceedance the oldest
// row is dropped").
func (s *Scrollback) Push(rows ...Row) {
	s.rows = append(s.rows, rows...)
	if over := len(s.rows) - s.cap; over > 0 {
		s.rows = s.rows[over:]
	}
}

// Row returns the row at index idx (0 = oldest). Returns the zero Row
// if out of range.
func (s *Scrollback) Row(idx int) Row {
	if idx < 0 || idx >= len(s.rows) {
		return Row{}
	}
	return s.rows[idx]
}

// Tail returns the n most recent rows, oldest first, for a renderer
// computing a scrollback-relative offset view (spec §6 Renderer
// contract: "given offset >= 0, rows come from the scrollback tail
// then the primary grid").
func (s *Scrollback) Tail(n int) []Row {
	if n <= 0 {
		return nil
	}
	if n > len(s.rows) {
		n = len(s.rows)
	}
	return s.rows[len(s.rows)-n:]
}

// All returns every row currently held, oldest first — used by the
// reflow engine to reconstruct logical lines across the scrollback +
// visible boundary (spec §4.6).
func (s *Scrollback) All() []Row {
	return s.rows
}

// Clear discards every row (used by ED mode 3, per the Open Question
// decision in DESIGN.md: mode 3 clears scrollback).
func (s *Scrollback) Clear() {
	s.rows = nil
}

// SetRows replaces the stored rows wholesale, trimming to cap. Used
// by the reflow engine after a full rewrap, where the new scrollback
// content is computed all at once rather than incrementally pushed.
func (s *Scrollback) SetRows(rows []Row) {
	if over := len(rows) - s.cap; over > 0 {
		rows = rows[over:]
	}
	s.rows = rows
}
