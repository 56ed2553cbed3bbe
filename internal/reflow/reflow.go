// Package reflow implements the resize and rewrap engine of spec
// §4.6: the "Simple" (cols unchanged) and "Reflow" (cols changed)
// regimes, operating on an internal/grid.Grid plus
// internal/grid.Scrollback pair. It knows nothing of VT escape
// sequences or SGR state; internal/screen calls it.
package reflow

import "github.com/itsserbin/ferrum/internal/grid"

// Target is the subset of screen state a resize mutates: the primary
// grid's backing rows, its scrollback, and the cursor's logical
// position. Expressed as a struct of value/pointer fields rather than
// an interface so the caller (package screen) can pass its own grid
// and scrollback directly without wrapping them.
type Target struct {
	Grid       *grid.Grid
	Scrollback *grid.Scrollback
	CursorRow  int
	CursorCol  int
}

// Result carries the new cursor position after a resize, since the
// row/col the cursor logically occupied may have moved (spec §4.6:
// "place the cursor at the physical row containing the character it
// previously sat at").
type Result struct {
	CursorRow, CursorCol int
}

// Resize applies spec §4.6 to the primary buffer. Grounded on the
// "copy min(old,new) dimensions" half of
// other_examples' TerminalBuffer.Resize for the cols-unchanged case,
// generalized with true content-preserving rewrap (logical-line
// reconstruction via each row's WrapContinued bit) when cols changes,
// per Design Note "Cursor is a position, not a reference".
func Resize(t Target, newCols, newRows int) Result {
	if newCols == t.Grid.Cols {
		return resizeSimple(t, newRows)
	}
	return resizeReflow(t, newCols, newRows)
}

// AltResize implements spec §4.6 "Resize alt grid to new dims without
// reflow": the alt screen never rewraps and never touches scrollback,
// since full-screen apps redraw themselves on SIGWINCH.
func AltResize(g *grid.Grid, newCols, newRows int) {
	g.ResizePreservingTopLeft(newCols, newRows)
}

// resizeSimple implements the "Simple (cols unchanged)" regime: rows
// shrinking pushes overflowing top rows to scrollback (primary only),
// rows growing pulls rows back from scrollback to fill, and the
// cursor is clamped into the new bounds.
func resizeSimple(t Target, newRows int) Result {
	g := t.Grid
	oldRows := len(g.Rows)
	cursorRow := t.CursorRow

	switch {
	case newRows < oldRows:
		// Shrinking: if the cursor would fall outside the new bottom
		// edge, push the rows above it off the top into scrollback so
		// the cursor's own row survives, matching "push the top
		// cursor_row - new_rows + 1 rows to scrollback".
		if cursorRow >= newRows {
			push := cursorRow - newRows + 1
			if push > oldRows {
				push = oldRows
			}
			if push > 0 {
				evicted := make([]grid.Row, push)
				for i := 0; i < push; i++ {
					evicted[i] = g.Rows[i].Clone()
				}
				t.Scrollback.Push(evicted...)
				g.Rows = append([]grid.Row{}, g.Rows[push:]...)
				cursorRow -= push
			}
		}
		if len(g.Rows) > newRows {
			g.Rows = g.Rows[:newRows]
		}
	case newRows > oldRows:
		// Growing: pull rows back from scrollback tail to fill the
		// newly visible space above the old top, then pad any
		// remainder with blank rows.
		want := newRows - oldRows
		pulled := t.Scrollback.Tail(want)
		if len(pulled) > 0 {
			t.Scrollback.SetRows(t.Scrollback.All()[:len(t.Scrollback.All())-len(pulled)])
			rows := make([]grid.Row, 0, newRows)
			for _, r := range pulled {
				rows = append(rows, r.Clone())
			}
			rows = append(rows, g.Rows...)
			for len(rows) < newRows {
				rows = append(rows, grid.NewRow(g.Cols))
			}
			g.Rows = rows
			cursorRow += len(pulled)
		} else {
			rows := make([]grid.Row, newRows)
			copy(rows, g.Rows)
			for i := len(g.Rows); i < newRows; i++ {
				rows[i] = grid.NewRow(g.Cols)
			}
			g.Rows = rows
		}
	}

	if cursorRow >= newRows {
		cursorRow = newRows - 1
	}
	if cursorRow < 0 {
		cursorRow = 0
	}
	cursorCol := t.CursorCol
	if cursorCol >= g.Cols {
		cursorCol = g.Cols - 1
	}
	if cursorCol < 0 {
		cursorCol = 0
	}
	return Result{CursorRow: cursorRow, CursorCol: cursorCol}
}

// logicalLine is a run of physical rows joined by WrapContinued bits,
// flattened to a single cell sequence for rewrapping.
type logicalLine struct {
	cells []grid.Cell
}

// resizeReflow implements the "Reflow (cols changed)" regime: combine
// scrollback + visible rows into logical lines (honoring
// WrapContinued), rewrap every logical line to newCols, then split
// the result between scrollback (everything but the last newRows
// physical rows) and the new visible grid.
func resizeReflow(t Target, newCols, newRows int) Result {
	g := t.Grid
	allRows := make([]grid.Row, 0, t.Scrollback.Len()+len(g.Rows))
	allRows = append(allRows, t.Scrollback.All()...)
	allRows = append(allRows, g.Rows...)

	// cursorPhysicalIdx is the index, within allRows, of the row the
	// cursor currently occupies (always in the visible tail).
	cursorPhysicalIdx := t.Scrollback.Len() + t.CursorRow
	cursorOffset := logicalOffsetOf(allRows, cursorPhysicalIdx, t.CursorCol)

	lines := toLogicalLines(allRows)
	physical, cursorPhysicalRow, cursorPhysicalCol := rewrap(lines, newCols, cursorOffset)

	// Split: the last newRows physical rows become visible; earlier
	// rows go to scrollback.
	var sb []grid.Row
	var visible []grid.Row
	if len(physical) > newRows {
		split := len(physical) - newRows
		sb = physical[:split]
		visible = physical[split:]
		cursorPhysicalRow -= split
	} else {
		visible = physical
	}
	for len(visible) < newRows {
		visible = append(visible, grid.NewRow(newCols))
	}

	t.Scrollback.SetRows(sb)
	g.Rows = visible
	g.Cols = newCols

	if cursorPhysicalRow < 0 {
		cursorPhysicalRow = 0
	}
	if cursorPhysicalRow >= newRows {
		cursorPhysicalRow = newRows - 1
	}
	if cursorPhysicalCol < 0 || cursorPhysicalCol >= newCols {
		cursorPhysicalCol = 0
		if cursorPhysicalRow >= len(visible) {
			cursorPhysicalRow = len(visible) - 1
		}
	}
	return Result{CursorRow: cursorPhysicalRow, CursorCol: cursorPhysicalCol}
}

// logicalOffsetOf converts a (physical row index within allRows, col)
// position into a flat character offset within its logical line, by
// walking backward over WrapContinued rows to find the line's start
// and summing column widths. Returns -1 if the position cannot be
// resolved (ambiguous), signalling the caller to fall back.
func logicalOffsetOf(allRows []grid.Row, rowIdx, col int) int {
	if rowIdx < 0 || rowIdx >= len(allRows) {
		return -1
	}
	start := rowIdx
	for start > 0 && allRows[start].WrapContinued {
		start--
	}
	offset := 0
	for r := start; r < rowIdx; r++ {
		offset += rowWidth(allRows[r])
	}
	return offset + col
}

func rowWidth(r grid.Row) int {
	return len(r.Cells)
}

// toLogicalLines merges consecutive rows where row[i+1].WrapContinued
// is true into one logical line, concatenating their cells in order.
func toLogicalLines(rows []grid.Row) []logicalLine {
	var lines []logicalLine
	for _, r := range rows {
		if len(lines) > 0 && r.WrapContinued {
			last := &lines[len(lines)-1]
			last.cells = append(last.cells, r.Cells...)
			continue
		}
		cells := make([]grid.Cell, len(r.Cells))
		copy(cells, r.Cells)
		lines = append(lines, logicalLine{cells: cells})
	}
	return lines
}

// rewrap lays out every logical line into newCols-wide physical rows,
// trimming trailing blank cells from each logical line first so
// rewrapping to a wider column count doesn't pad content with dead
// space, then chunking at newCols boundaries and marking continuation
// rows as WrapContinued. cursorOffset is a flat offset into the
// logical-line stream (sum of trimmed line lengths, in order) locating
// the cursor; the function returns the physical (row, col) it maps to.
func rewrap(lines []logicalLine, newCols, cursorOffset int) ([]grid.Row, int, int) {
	var physical []grid.Row
	consumed := 0
	cursorRow, cursorCol := -1, -1

	for _, line := range lines {
		trimmed := trimTrailingBlank(line.cells)
		lineLen := len(trimmed)

		if cursorOffset >= 0 && cursorRow < 0 && consumed+lineLen >= cursorOffset && consumed <= cursorOffset {
			within := cursorOffset - consumed
			cursorRow = len(physical) + within/newCols
			cursorCol = within % newCols
		}

		if lineLen == 0 {
			physical = append(physical, grid.NewRow(newCols))
		} else {
			for off := 0; off < lineLen; off += newCols {
				end := off + newCols
				if end > lineLen {
					end = lineLen
				}
				row := grid.NewRow(newCols)
				copy(row.Cells, trimmed[off:end])
				row.WrapContinued = off > 0
				physical = append(physical, row)
			}
		}
		consumed += lineLen
	}

	if cursorRow < 0 {
		// Past end of logical content: place at first empty row,
		// appending one if every line was full.
		physical = append(physical, grid.NewRow(newCols))
		cursorRow = len(physical) - 1
		cursorCol = 0
	}
	return physical, cursorRow, cursorCol
}

func trimTrailingBlank(cells []grid.Cell) []grid.Cell {
	end := len(cells)
	for end > 0 {
		c := cells[end-1]
		if c.Char == 0 || c.Char == ' ' {
			end--
			continue
		}
		break
	}
	return cells[:end]
}
