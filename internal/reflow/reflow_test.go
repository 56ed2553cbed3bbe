package reflow

import (
	"testing"

	"github.com/itsserbin/ferrum/internal/grid"
)

func filledGrid(cols, rows int, text string) *grid.Grid {
	g := grid.New(cols, rows)
	runes := []rune(text)
	row := grid.NewRow(cols)
	for i := 0; i < cols && i < len(runes); i++ {
		row.Cells[i].Char = runes[i]
	}
	g.ReplaceRow(0, row)
	return g
}

func snapshotText(g *grid.Grid) []string {
	out := make([]string, len(g.Rows))
	for i, r := range g.Rows {
		out[i] = r.Text()
	}
	return out
}

func TestResizeIdempotence(t *testing.T) {
	g := filledGrid(10, 5, "0123456789")
	sb := grid.NewScrollback(100)
	target := Target{Grid: g, Scrollback: sb, CursorRow: 2, CursorCol: 3}

	once := Resize(target, 10, 3)

	g2 := filledGrid(10, 5, "0123456789")
	sb2 := grid.NewScrollback(100)
	target2 := Target{Grid: g2, Scrollback: sb2, CursorRow: 2, CursorCol: 3}
	twice := Resize(target2, 10, 3)
	twice = Resize(Target{Grid: g2, Scrollback: sb2, CursorRow: twice.CursorRow, CursorCol: twice.CursorCol}, 10, 3)

	if once != twice {
		t.Errorf("resize(r,c) then resize(r,c) again = %+v, want same single-call result %+v", twice, once)
	}
	gotA := snapshotText(g)
	gotB := snapshotText(g2)
	if len(gotA) != len(gotB) {
		t.Fatalf("row count differs: %d vs %d", len(gotA), len(gotB))
	}
	for i := range gotA {
		if gotA[i] != gotB[i] {
			t.Errorf("row %d text = %q, want %q", i, gotB[i], gotA[i])
		}
	}
}

func TestReflowMonotonicity(t *testing.T) {
	g := filledGrid(10, 5, "hello world")
	sb := grid.NewScrollback(100)
	target := Target{Grid: g, Scrollback: sb, CursorRow: 0, CursorCol: 0}

	before := joinLogical(g, sb)

	r1 := Resize(target, 5, 5)
	r2 := Resize(Target{Grid: g, Scrollback: sb, CursorRow: r1.CursorRow, CursorCol: r1.CursorCol}, 10, 5)
	_ = r2

	after := joinLogical(g, sb)
	if before != after {
		t.Errorf("reflow(c1) then reflow(c0) logical content = %q, want %q", after, before)
	}
}

// joinLogical flattens scrollback+visible row text into one logical
// string, merging WrapContinued rows without an inserted separator,
// the same rule internal/screen.SelectedText uses for wrapped rows.
func joinLogical(g *grid.Grid, sb *grid.Scrollback) string {
	var out string
	rows := append(append([]grid.Row{}, sb.All()...), g.Rows...)
	for i, r := range rows {
		if i > 0 && r.WrapContinued {
			out += r.Text()
			continue
		}
		if i > 0 {
			out += "\n"
		}
		out += r.Text()
	}
	return out
}

func TestScrollbackBoundAcrossShrink(t *testing.T) {
	const cap = 3
	g := grid.New(10, 10)
	sb := grid.NewScrollback(cap)
	target := Target{Grid: g, Scrollback: sb, CursorRow: 9, CursorCol: 0}

	Resize(target, 10, 2)

	if sb.Len() > cap {
		t.Errorf("scrollback length = %d after shrink, want <= cap %d", sb.Len(), cap)
	}
}
