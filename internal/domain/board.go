package domain

import "fmt"

// Cell holds a value and whether it was part of the initial puzzle.
type Cell struct {
	Value int  `json:"value"`
	Fixed bool `json:"fixed,omitempty"`
}

// Empty reports whether the cell holds no digit.
func (c Cell) Empty() bool { return c.Value == 0 }

// Board layers fixed-given bookkeeping over a Grid for interactive play.
// The engine itself only ever sees flat Grids; translation happens here.
type Board struct {
	Geo   Geometry
	cells [][]Cell
}

// NewBoard builds a board from a puzzle grid. Every non-zero cell becomes
// a fixed given.
func NewBoard(geo Geometry, puzzle Grid) (*Board, error) {
	if err := puzzle.CheckShape(geo); err != nil {
		return nil, err
	}
	n := geo.Size()
	cells := make([][]Cell, n)
	for r := 0; r < n; r++ {
		cells[r] = make([]Cell, n)
		for c := 0; c < n; c++ {
			v := puzzle[r][c]
			cells[r][c] = Cell{Value: v, Fixed: v != 0}
		}
	}
	return &Board{Geo: geo, cells: cells}, nil
}

// Cell returns the cell at (r, c).
func (b *Board) Cell(r, c int) (Cell, error) {
	if !b.Geo.Inside(r, c) {
		return Cell{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, r, c)
	}
	return b.cells[r][c], nil
}

// Set places v at (r, c). Fixed givens cannot be overwritten.
func (b *Board) Set(r, c, v int) error {
	if !b.Geo.Inside(r, c) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, r, c)
	}
	if v < 1 || v > b.Geo.Size() {
		return fmt.Errorf("%w: value %d outside 1..%d", ErrInvalidGrid, v, b.Geo.Size())
	}
	if b.cells[r][c].Fixed {
		return fmt.Errorf("%w: (%d,%d)", ErrFixedCell, r, c)
	}
	b.cells[r][c].Value = v
	return nil
}

// Clear empties the cell at (r, c). Fixed givens cannot be cleared.
func (b *Board) Clear(r, c int) error {
	if !b.Geo.Inside(r, c) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, r, c)
	}
	if b.cells[r][c].Fixed {
		return fmt.Errorf("%w: (%d,%d)", ErrFixedCell, r, c)
	}
	b.cells[r][c].Value = 0
	return nil
}

// Snapshot flattens the current state into a Grid for the engine.
func (b *Board) Snapshot() Grid {
	n := b.Geo.Size()
	g := NewGrid(b.Geo)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			g[r][c] = b.cells[r][c].Value
		}
	}
	return g
}

// Givens returns the initial puzzle: fixed cells only, the rest zero.
func (b *Board) Givens() Grid {
	n := b.Geo.Size()
	g := NewGrid(b.Geo)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if b.cells[r][c].Fixed {
				g[r][c] = b.cells[r][c].Value
			}
		}
	}
	return g
}

// Complete reports whether every cell is filled. Correctness is the
// validator's call, not the board's.
func (b *Board) Complete() bool {
	for _, row := range b.cells {
		for _, cell := range row {
			if cell.Empty() {
				return false
			}
		}
	}
	return true
}

// FilledCount counts non-empty cells.
func (b *Board) FilledCount() int {
	n := 0
	for _, row := range b.cells {
		for _, cell := range row {
			if !cell.Empty() {
				n++
			}
		}
	}
	return n
}

// FixedCount counts the givens.
func (b *Board) FixedCount() int {
	n := 0
	for _, row := range b.cells {
		for _, cell := range row {
			if cell.Fixed {
				n++
			}
		}
	}
	return n
}
