package screen

import (
	"github.com/itsserbin/ferrum/internal/color"
	"github.com/itsserbin/ferrum/internal/grid"
)

// savedCursor is the DECSC/SCOSC slot, one per buffer (spec §3
// saved_cursor_primary/saved_cursor_alt), plus the SGR state and
// pending-wrap bit that xterm also saves (spec §9 Open Question b:
// "pending-wrap state participates in DECSC save — xterm does;
// specify yes").
type savedCursor struct {
	row, col    int
	pendingWrap bool
	fg, bg      color.Color
	style       grid.StyleFlags
	valid       bool
}

// buffer bundles the per-buffer state spec §4.5 requires to be saved
// and restored as a unit across 1049 (scroll region, tab stops) —
// grounded on the teacher's Grid owning scrollTop/scrollBottom
// directly, generalized here into an explicit struct so primary and
// alt each keep fully independent copies rather than relying on the
// teacher's implicit "the active grid's fields are whatever was last
// swapped in" behavior.
type buffer struct {
	grid         *grid.Grid
	scrollTop    int // 0-based, inclusive
	scrollBottom int
	tabStops     map[int]bool
	saved        savedCursor // DECSC/SCOSC slot
	altSaved     savedCursor // mode-1049 entry snapshot, kept separate
	// from `saved` so an explicit DECSC/DECRC pair nested inside a
	// 1049 session never clobbers the entry snapshot 1049 itself needs
	// to restore on exit.
}

func newBuffer(cols, rows int) *buffer {
	return &buffer{
		grid:         grid.New(cols, rows),
		scrollTop:    0,
		scrollBottom: rows - 1,
		tabStops:     defaultTabStops(cols),
	}
}

func defaultTabStops(cols int) map[int]bool {
	stops := make(map[int]bool)
	for c := 8; c < cols; c += 8 {
		stops[c] = true
	}
	return stops
}

func (b *buffer) cloneTabStops() map[int]bool {
	out := make(map[int]bool, len(b.tabStops))
	for k := range b.tabStops {
		out[k] = true
	}
	return out
}
