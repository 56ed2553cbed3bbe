package screen

// SelectionMode discriminates how a selection's span is interpreted
// when materializing text.
type SelectionMode int

const (
	SelectionChar SelectionMode = iota
	SelectionWord
	SelectionLine
)

// Point is an absolute coordinate spanning the visible grid and
// scrollback: Row 0 is the top visible row, Row == rows-1 the bottom
// visible row, and negative rows index into scrollback (-1 is the
// most recent scrollback row, immediately above the visible grid;
// -scrollbackLen is the oldest retained row). Because scrolling moves
// every fixed position up by the same amount regardless of whether it
// currently sits in scrollback or on screen, a single signed row index
// lets StartSelection/ExtendSelection/scroll eviction all move a point
// the same way (spec §9: "Selection survives eviction by clamping").
type Point struct {
	Row, Col int
}

// Selection is the engine's notion of a highlighted span, generalized
// from the teacher's visible-grid-only row/col selection into
// scrollback-aware coordinates so a selection anchored above the fold
// remains meaningful as output continues to arrive (a feature the
// distilled spec's "Supplemented features" calls for).
type Selection struct {
	active      bool
	anchor, ext Point
	mode        SelectionMode
}

// Active reports whether a selection currently exists.
func (sel *Selection) Active() bool { return sel.active }

// Mode returns the selection's granularity.
func (sel *Selection) Mode() SelectionMode { return sel.mode }

// Range returns the selection's two endpoints in document order
// (start before end), regardless of drag direction.
func (sel *Selection) Range() (start, end Point) {
	a, b := sel.anchor, sel.ext
	if pointLess(b, a) {
		a, b = b, a
	}
	return a, b
}

func pointLess(a, b Point) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

// StartSelection begins a new selection at an absolute point.
func (s *Screen) StartSelection(row, col int, mode SelectionMode) {
	p := Point{Row: row, Col: col}
	s.selection = &Selection{active: true, anchor: p, ext: p, mode: mode}
}

// ExtendSelection moves the selection's moving endpoint.
func (s *Screen) ExtendSelection(row, col int) {
	if !s.selection.active {
		return
	}
	s.selection.ext = Point{Row: row, Col: col}
}

// ClearSelection discards the current selection.
func (s *Screen) ClearSelection() {
	s.selection = &Selection{}
}

// Selection exposes the current selection for a renderer.
func (s *Screen) Selection() *Selection { return s.selection }

// ScrollbackLen returns the number of rows currently retained in
// scrollback: the valid range for Point.Row is
// [-ScrollbackLen(), rows).
func (s *Screen) ScrollbackLen() int { return s.scrollback.Len() }

// shiftSelectionForEviction moves the active selection up by n rows
// to track a primary-buffer scroll of n rows (every fixed position's
// absolute row decreases by n, whether it currently sits on screen or
// in scrollback), clamping any point pushed past the oldest retained
// scrollback row to that row rather than letting it escape the valid
// range (spec §9: "Selection survives eviction by clamping").
func (s *Screen) shiftSelectionForEviction(n int) {
	if !s.selection.active || n <= 0 {
		return
	}
	floor := -s.scrollback.Len()
	shift := func(p Point) Point {
		p.Row -= n
		if p.Row < floor {
			p.Row = floor
			p.Col = 0
		}
		return p
	}
	s.selection.anchor = shift(s.selection.anchor)
	s.selection.ext = shift(s.selection.ext)
}
