// Package grid implements the dense 2-D cell storage described by
// spec §3/§4: Cell, Row, Grid, and the bounded scrollback ring. It has
// no knowledge of VT escape sequences; the screen model (package
// screen) drives it.
package grid

import "github.com/itsserbin/ferrum/internal/color"

// StyleFlags are the per-cell text attribute bits from spec §3 Cell.
type StyleFlags uint8

const (
	StyleBold StyleFlags = 1 << iota
	StyleItalic
	StyleUnderline
	StyleReverse
	StyleDim
	StyleStrikethrough
	StyleBlink
)

// Cell is a single visible grid unit. A cell occupying the right half
// of a 2-column glyph carries Continuation=true and Char=0; readers
// must treat it as part of the preceding cell for layout purposes
// (spec §3 Cell).
type Cell struct {
	Char         rune
	Fg           color.Color
	Bg           color.Color
	Style        StyleFlags
	Continuation bool
}

// Blank returns the default empty cell: a space, default colors, no
// style, not a continuation.
func Blank() Cell {
	return Cell{
		Char: ' ',
		Fg:   color.DefaultFg(),
		Bg:   color.DefaultBg(),
	}
}

// Has reports whether all bits in want are set in the cell's style.
func (c Cell) Has(want StyleFlags) bool { return c.Style&want == want }
