package grid

// Grid is a rows x cols dense array of Cells plus per-row flags (spec
// §3 Grid). It is not safe for concurrent use on its own: per Design
// Note "Single mutex, not lock-free", the single mutex protecting all
// screen state lives one level up in package screen, so Grid itself
// carries none of its own — unlike the teacher's grid.Grid, which
// wraps every method in a sync.RWMutex. A second, grid-level lock
// would just be redundant with the screen-level one and risks being
// acquired in the wrong order under concurrent resize/dispatch.
type Grid struct {
	Rows []Row
	Cols int
}

// New allocates a grid of the given dimensions filled with blank
// cells.
func New(cols, rows int) *Grid {
	g := &Grid{Rows: make([]Row, rows), Cols: cols}
	for i := range g.Rows {
		g.Rows[i] = NewRow(cols)
	}
	return g
}

// RowCount returns the number of rows.
func (g *Grid) RowCount() int { return len(g.Rows) }

// Cell reads the cell at (row, col); out-of-bounds reads return a
// blank cell rather than panicking (mirrors the teacher's
// Grid.GetCell bounds behavior).
func (g *Grid) Cell(row, col int) Cell {
	if row < 0 || row >= len(g.Rows) || col < 0 || col >= g.Cols {
		return Blank()
	}
	return g.Rows[row].Cells[col]
}

// SetCell writes a cell at (row, col); out-of-bounds writes are
// no-ops.
func (g *Grid) SetCell(row, col int, c Cell) {
	if row < 0 || row >= len(g.Rows) || col < 0 || col >= g.Cols {
		return
	}
	g.Rows[row].Cells[col] = c
	g.Rows[row].Dirty = true
}

// Row returns the row at the given index (spec: "extract a row").
// The returned Row shares its Cells slice with the grid; Row.Clone
// gives an independent copy. Returns the zero Row if out of range.
func (g *Grid) Row(idx int) Row {
	if idx < 0 || idx >= len(g.Rows) {
		return Row{}
	}
	return g.Rows[idx]
}

// ReplaceRow overwrites the row at idx (spec: "replace a row").
func (g *Grid) ReplaceRow(idx int, r Row) {
	if idx < 0 || idx >= len(g.Rows) {
		return
	}
	r.Dirty = true
	g.Rows[idx] = r
}

// ClearRow resets the row at idx to blank cells, preserving neither
// wrap-continuation nor any other flag.
func (g *Grid) ClearRow(idx int) {
	if idx < 0 || idx >= len(g.Rows) {
		return
	}
	g.Rows[idx] = NewRow(g.Cols)
}

// ClearAll resets every cell in the grid to blank.
func (g *Grid) ClearAll() {
	for i := range g.Rows {
		g.Rows[i] = NewRow(g.Cols)
	}
}

// ShiftUp shifts rows [top, bottom] (inclusive, 0-based) up by n,
// discarding the top n rows of the range and filling the bottom n
// with blanks. Returns the rows discarded off the top, in top-to-
// bottom order, so a caller (the screen model) can push them to
// scrollback when top == 0 and the primary buffer is active (spec
// §3 Scrollback, §4.3 step 1).
func (g *Grid) ShiftUp(top, bottom, n int) []Row {
	if top < 0 || bottom >= len(g.Rows) || top > bottom || n <= 0 {
		return nil
	}
	span := bottom - top + 1
	if n > span {
		n = span
	}

	discarded := make([]Row, n)
	for i := 0; i < n; i++ {
		discarded[i] = g.Rows[top+i].Clone()
	}

	copy(g.Rows[top:bottom+1-n], g.Rows[top+n:bottom+1])
	for i := bottom - n + 1; i <= bottom; i++ {
		g.Rows[i] = NewRow(g.Cols)
	}
	return discarded
}

// ShiftDown shifts rows [top, bottom] (inclusive, 0-based) down by n,
// discarding the bottom n rows and filling the top n with blanks
// (used by SD/RI and DECSTBM-bounded scroll-down).
func (g *Grid) ShiftDown(top, bottom, n int) {
	if top < 0 || bottom >= len(g.Rows) || top > bottom || n <= 0 {
		return
	}
	span := bottom - top + 1
	if n > span {
		n = span
	}

	copy(g.Rows[top+n:bottom+1], g.Rows[top:bottom+1-n])
	for i := top; i < top+n; i++ {
		g.Rows[i] = NewRow(g.Cols)
	}
}

// ResizePreservingTopLeft performs the naive (cols-unchanged) resize:
// copy(min(old,new) rows, min(old,new) cols) into a freshly allocated
// grid, anchored at the top-left. This is the "Simple" regime of spec
// §4.6; the reflow engine handles the cols-changed regime separately.
func (g *Grid) ResizePreservingTopLeft(cols, rows int) {
	newRows := make([]Row, rows)
	minRows := rows
	if len(g.Rows) < minRows {
		minRows = len(g.Rows)
	}
	for i := 0; i < rows; i++ {
		if i < minRows {
			r := g.Rows[i]
			r.Resize(cols)
			newRows[i] = r
		} else {
			newRows[i] = NewRow(cols)
		}
	}
	g.Rows = newRows
	g.Cols = cols
}
