package domain

import "fmt"

// Grid is the raw board state the engine works on. 0 marks an empty cell,
// 1..N a placed digit. Richer bookkeeping (fixed givens, identity) lives
// on Board, not here.
type Grid [][]int

// NewGrid allocates an empty grid for the geometry.
func NewGrid(geo Geometry) Grid {
	n := geo.Size()
	cells := make([]int, n*n)
	g := make(Grid, n)
	for r := range g {
		g[r] = cells[r*n : (r+1)*n : (r+1)*n]
	}
	return g
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	cells := make([]int, len(g)*len(g))
	for r := range g {
		row := cells[r*len(g) : (r+1)*len(g) : (r+1)*len(g)]
		copy(row, g[r])
		out[r] = row
	}
	return out
}

// Empties counts cells holding 0.
func (g Grid) Empties() int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if v == 0 {
				n++
			}
		}
	}
	return n
}

// Filled counts non-zero cells.
func (g Grid) Filled() int {
	return len(g)*len(g) - g.Empties()
}

// CheckShape verifies the grid is square for the geometry and holds only
// values in 0..N. Duplicate detection is the validator's job; this guards
// against grids the engine cannot meaningfully search at all.
func (g Grid) CheckShape(geo Geometry) error {
	n := geo.Size()
	if len(g) != n {
		return fmt.Errorf("%w: %d rows, want %d", ErrInvalidGrid, len(g), n)
	}
	for r, row := range g {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, r, len(row), n)
		}
		for c, v := range row {
			if v < 0 || v > n {
				return fmt.Errorf("%w: value %d at (%d,%d) outside 0..%d", ErrInvalidGrid, v, r, c, n)
			}
		}
	}
	return nil
}
