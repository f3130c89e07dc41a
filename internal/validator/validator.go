package validator

import (
	"context"
	"fmt"

	"svw.info/sudokuterm/internal/domain"
)

// Check performs rule checks over flat grids: whole-grid duplicate scans
// and the cheap per-move check used for interactive feedback.
type Check struct{}

func New() *Check { return &Check{} }

// Grid scans every row, column and box for duplicate non-zero values and
// returns the coordinates of offending cells. Empty cells never conflict.
func (v *Check) Grid(ctx context.Context, g domain.Grid, geo domain.Geometry) (bool, []domain.CellCoord, error) {
	if err := g.CheckShape(geo); err != nil {
		return false, nil, err
	}
	n := geo.Size()
	conf := make([]domain.CellCoord, 0, 8)
	seen := make([]bool, n+1)
	reset := func() {
		for i := range seen {
			seen[i] = false
		}
	}
	// rows
	for r := 0; r < n; r++ {
		reset()
		for c := 0; c < n; c++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			if seen[val] {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			seen[val] = true
		}
	}
	// cols
	for c := 0; c < n; c++ {
		reset()
		for r := 0; r < n; r++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			if seen[val] {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			seen[val] = true
		}
	}
	// boxes
	for br := 0; br < n; br += geo.BoxHeight {
		for bc := 0; bc < n; bc += geo.BoxWidth {
			reset()
			for dr := 0; dr < geo.BoxHeight; dr++ {
				for dc := 0; dc < geo.BoxWidth; dc++ {
					r, c := br+dr, bc+dc
					val := g[r][c]
					if val == 0 {
						continue
					}
					if seen[val] {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
					seen[val] = true
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}

// Move reports whether placing v at (r, c) keeps the row, column and box
// duplicate-free. The grid is not modified. The target cell's own current
// value is ignored so re-entering the same digit is not a conflict.
func (v *Check) Move(ctx context.Context, g domain.Grid, geo domain.Geometry, r, c, val int) (bool, error) {
	if err := g.CheckShape(geo); err != nil {
		return false, err
	}
	n := geo.Size()
	if !geo.Inside(r, c) {
		return false, fmt.Errorf("%w: (%d,%d)", domain.ErrOutOfBounds, r, c)
	}
	if val < 1 || val > n {
		return false, fmt.Errorf("%w: value %d outside 1..%d", domain.ErrInvalidGrid, val, n)
	}
	for i := 0; i < n; i++ {
		if i != c && g[r][i] == val {
			return false, nil
		}
		if i != r && g[i][c] == val {
			return false, nil
		}
	}
	br, bc := geo.BoxOrigin(r, c)
	for dr := 0; dr < geo.BoxHeight; dr++ {
		for dc := 0; dc < geo.BoxWidth; dc++ {
			rr, cc := br+dr, bc+dc
			if (rr != r || cc != c) && g[rr][cc] == val {
				return false, nil
			}
		}
	}
	return true, nil
}

// Complete reports whether the grid is fully filled and duplicate-free,
// i.e. a finished, correct solution.
func (v *Check) Complete(ctx context.Context, g domain.Grid, geo domain.Geometry) (bool, error) {
	if err := g.CheckShape(geo); err != nil {
		return false, err
	}
	for _, row := range g {
		for _, val := range row {
			if val == 0 {
				return false, nil
			}
		}
	}
	ok, _, err := v.Grid(ctx, g, geo)
	return ok, err
}
