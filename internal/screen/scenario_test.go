package screen

import (
	"testing"

	"github.com/itsserbin/ferrum/internal/color"
	"github.com/itsserbin/ferrum/internal/vtparser"
)

// feed drives a fresh 5-row/10-col Screen through data and returns it,
// matching the grid size the literal scenarios are specified against.
func feed(t *testing.T, data string) *Screen {
	t.Helper()
	scr := New(10, 5, 100)
	p := vtparser.New(scr)
	p.Feed([]byte(data))
	return scr
}

func TestScenarioPrintFillsRow(t *testing.T) {
	scr := feed(t, "ABC")
	got := scr.primary.grid.Row(0).Text()
	want := "ABC"
	if got != want {
		t.Errorf("row 0 text = %q, want %q", got, want)
	}
	row, col := scr.CursorPosition()
	if row != 0 || col != 3 {
		t.Errorf("cursor = (%d,%d), want (0,3)", row, col)
	}
}

func TestScenarioSGRColorReset(t *testing.T) {
	scr := feed(t, "\x1b[31mR\x1b[0mG")
	cell0 := scr.primary.grid.Cell(0, 0)
	if cell0.Char != 'R' {
		t.Fatalf("cell(0,0).Char = %q, want 'R'", cell0.Char)
	}
	if cell0.Fg != color.FromIndex(1) {
		t.Errorf("cell(0,0).Fg = %+v, want red index 1", cell0.Fg)
	}
	cell1 := scr.primary.grid.Cell(0, 1)
	if cell1.Char != 'G' {
		t.Fatalf("cell(0,1).Char = %q, want 'G'", cell1.Char)
	}
	if !cell1.Fg.IsDefault() {
		t.Errorf("cell(0,1).Fg = %+v, want default", cell1.Fg)
	}
	row, col := scr.CursorPosition()
	if row != 0 || col != 2 {
		t.Errorf("cursor = (%d,%d), want (0,2)", row, col)
	}
}

func TestScenarioEraseDisplayAndHome(t *testing.T) {
	scr := feed(t, "hello world, this line overflows the grid")
	p := vtparser.New(scr)
	p.Feed([]byte("\x1b[2J\x1b[H"))

	for row := 0; row < 5; row++ {
		text := scr.primary.grid.Row(row).Text()
		if text != "" {
			t.Errorf("row %d text = %q after ED 2, want empty", row, text)
		}
	}
	r, c := scr.CursorPosition()
	if r != 0 || c != 0 {
		t.Errorf("cursor after CUP H = (%d,%d), want (0,0)", r, c)
	}
}

func TestScenarioAltScreenRoundTrip(t *testing.T) {
	scr := New(10, 5, 100)
	p := vtparser.New(scr)
	p.Feed([]byte("xy"))
	beforeRow, beforeCol := scr.CursorPosition()
	beforeText := scr.primary.grid.Row(0).Text()

	p.Feed([]byte("\x1b[?1049h"))
	if !scr.OnAltScreen() {
		t.Fatal("expected alt screen active after CSI ?1049h")
	}
	p.Feed([]byte("abc"))
	altText := scr.alt.grid.Row(0).Text()
	if altText != "abc" {
		t.Errorf("alt row 0 = %q, want %q", altText, "abc")
	}

	p.Feed([]byte("\x1b[?1049l"))
	if scr.OnAltScreen() {
		t.Fatal("expected primary screen active after CSI ?1049l")
	}
	afterText := scr.primary.grid.Row(0).Text()
	if afterText != beforeText {
		t.Errorf("primary row 0 after 1049 round trip = %q, want unchanged %q", afterText, beforeText)
	}
	afterRow, afterCol := scr.CursorPosition()
	if afterRow != beforeRow || afterCol != beforeCol {
		t.Errorf("cursor after 1049 round trip = (%d,%d), want (%d,%d)", afterRow, afterCol, beforeRow, beforeCol)
	}
}

func TestScenarioScrollRegionClamp(t *testing.T) {
	scr := feed(t, "0123456789")
	p := vtparser.New(scr)
	p.Feed([]byte("\x1b[5;15r"))

	top, bottom := scr.active().scrollTop, scr.active().scrollBottom
	if top != 4 || bottom != 4 {
		t.Errorf("scroll region = [%d,%d], want [4,4]", top, bottom)
	}
	row, col := scr.CursorPosition()
	if row != 0 || col != 0 {
		t.Errorf("cursor after DECSTBM = (%d,%d), want (0,0)", row, col)
	}
}

func TestScenarioDECAWMOffPinsCursor(t *testing.T) {
	scr := New(10, 5, 100)
	p := vtparser.New(scr)
	p.Feed([]byte("\x1b[?7l")) // DECAWM off
	p.Feed([]byte("0123456789XY"))

	row, col := scr.CursorPosition()
	if row != 0 || col != 9 {
		t.Errorf("cursor with DECAWM off = (%d,%d), want (0,9) pinned at last column", row, col)
	}
	text := scr.primary.grid.Row(0).Text()
	if text != "012345678Y" {
		t.Errorf("row 0 = %q, want %q (overflow overwrites last column, no wrap)", text, "012345678Y")
	}
	if scr.primary.grid.Row(1).Text() != "" {
		t.Errorf("row 1 = %q, want empty: DECAWM off must never wrap", scr.primary.grid.Row(1).Text())
	}
}

func TestScenarioREPRepeatsLastPrinted(t *testing.T) {
	scr := feed(t, "A\x1b[3b")
	got := scr.primary.grid.Row(0).Text()
	want := "AAAA"
	if got != want {
		t.Errorf("row 0 after REP = %q, want %q", got, want)
	}
}

func TestScenarioAltScreenResetsScrollRegionOnReuse(t *testing.T) {
	scr := New(10, 5, 100)
	p := vtparser.New(scr)

	p.Feed([]byte("\x1b[?1049h"))
	p.Feed([]byte("\x1b[2;4r")) // narrow the alt buffer's scroll region
	p.Feed([]byte("\x1b[?1049l"))

	p.Feed([]byte("\x1b[?1049h"))
	top, bottom := scr.active().scrollTop, scr.active().scrollBottom
	if top != 0 || bottom != 4 {
		t.Errorf("reused alt scroll region = [%d,%d], want [0,4] (full screen reset on every 1049 entry)", top, bottom)
	}
	p.Feed([]byte("\x1b[?1049l"))
}

func TestScenarioWideCharContinuation(t *testing.T) {
	scr := New(4, 5, 100)
	p := vtparser.New(scr)
	p.Feed([]byte("漢字"))

	c0 := scr.primary.grid.Cell(0, 0)
	c1 := scr.primary.grid.Cell(0, 1)
	c2 := scr.primary.grid.Cell(0, 2)
	c3 := scr.primary.grid.Cell(0, 3)

	if c0.Char != '漢' || c0.Continuation {
		t.Errorf("cell(0,0) = %+v, want primary '漢'", c0)
	}
	if !c1.Continuation {
		t.Errorf("cell(0,1) = %+v, want continuation", c1)
	}
	if c2.Char != '字' || c2.Continuation {
		t.Errorf("cell(0,2) = %+v, want primary '字'", c2)
	}
	if !c3.Continuation {
		t.Errorf("cell(0,3) = %+v, want continuation", c3)
	}
	row, col := scr.CursorPosition()
	if row != 0 || col != 4 {
		t.Errorf("cursor after wide pair = (%d,%d), want (0,4) pending-wrap", row, col)
	}
}
