package engine

// Grid is the playfield, indexed [row][col] with row 0 at the top.
// Grids returned by Merge and ClearFullRows are fresh copies; the functions in
// this file never write to their input.
type Grid [][]Cell

// NewGrid allocates an empty grid of the given size.
func NewGrid(width, height int) Grid {
	g := make(Grid, height)
	for y := range g {
		g[y] = make([]Cell, width)
	}
	return g
}

// GridFromRows builds a grid from literal rows. Handy for fixtures.
func GridFromRows(rows ...[]Cell) Grid {
	g := make(Grid, len(rows))
	for y, row := range rows {
		g[y] = append([]Cell(nil), row...)
	}
	return g
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Width returns the number of columns of the first row.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// At returns the cell at (col, row), or Empty when out of bounds.
func (g Grid) At(col, row int) Cell {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return Empty
	}
	return g[row][col]
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for y, row := range g {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}

// Equal reports whether two grids hold the same cells.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for y := range g {
		if len(g[y]) != len(other[y]) {
			return false
		}
		for x := range g[y] {
			if g[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// IsEmpty reports whether every cell is empty.
func (g Grid) IsEmpty() bool {
	for _, row := range g {
		for _, c := range row {
			if c != Empty {
				return false
			}
		}
	}
	return true
}

// Overlaps reports whether shape placed with its top-left corner at (x, y)
// collides with a filled cell or leaves the grid. Bounds are checked per
// filled cell, so a shape's empty margin may hang off any edge.
func Overlaps(g Grid, shape Shape, x, y int) bool {
	for j := range ShapeSize {
		for i := range ShapeSize {
			if shape[j][i] == Empty {
				continue
			}
			col, row := x+i, y+j
			if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
				return true
			}
			if g[row][col] != Empty {
				return true
			}
		}
	}
	return false
}

// Merge returns a copy of g with the shape's filled cells written at (x, y).
// Cells falling outside the grid are dropped.
func Merge(g Grid, shape Shape, x, y int) Grid {
	out := g.Clone()
	for j := range ShapeSize {
		for i := range ShapeSize {
			c := shape[j][i]
			if c == Empty {
				continue
			}
			col, row := x+i, y+j
			if row < 0 || row >= len(out) || col < 0 || col >= len(out[row]) {
				continue
			}
			out[row][col] = c
		}
	}
	return out
}

// ClearResult describes the outcome of ClearFullRows.
type ClearResult struct {
	Count int   // Rows removed
	Rows  []int // Indices (in the input grid) of the removed rows, top to bottom
	Bonus int   // 50 * Count^2
	Grid  Grid  // Grid after compaction
}

// LineClearBonus returns the score bonus for clearing n rows at once.
func LineClearBonus(n int) int {
	return 50 * n * n
}

// ClearFullRows removes every full row, shifts the remaining rows down in
// their original order, and pads the top with empty rows.
func ClearFullRows(g Grid) ClearResult {
	width := g.Width()
	kept := make([][]Cell, 0, len(g))
	var cleared []int

	for y, row := range g {
		if rowFull(row) {
			cleared = append(cleared, y)
			continue
		}
		kept = append(kept, row)
	}

	out := make(Grid, len(g))
	pad := len(g) - len(kept)
	for y := range pad {
		out[y] = make([]Cell, width)
	}
	for i, row := range kept {
		out[pad+i] = append([]Cell(nil), row...)
	}

	return ClearResult{
		Count: len(cleared),
		Rows:  cleared,
		Bonus: LineClearBonus(len(cleared)),
		Grid:  out,
	}
}

// rowFull reports whether a row has no empty cell.
func rowFull(row []Cell) bool {
	if len(row) == 0 {
		return false
	}
	for _, c := range row {
		if c == Empty {
			return false
		}
	}
	return true
}

// FilledRows returns the number of rows holding at least one filled cell.
func FilledRows(g Grid) int {
	n := 0
	for _, row := range g {
		for _, c := range row {
			if c != Empty {
				n++
				break
			}
		}
	}
	return n
}
