package solver

import "svw.info/sudokuterm/internal/domain"

// Backtracking is a straightforward recursive solver. Candidates are tried
// in ascending order, so a given grid always solves to the same completion.
type Backtracking struct{}

func NewBacktracking() *Backtracking { return &Backtracking{} }

// --- helpers used by Solve/Unique (in other files) ---

// canPlace reports whether v at (r, c) collides with the same value in the
// row, the column, or the surrounding box. The target cell itself is not
// required to be empty; callers ensure that.
func canPlace(g domain.Grid, geo domain.Geometry, r, c, v int) bool {
	n := geo.Size()
	for i := 0; i < n; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := geo.BoxOrigin(r, c)
	for dr := 0; dr < geo.BoxHeight; dr++ {
		for dc := 0; dc < geo.BoxWidth; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// findEmpty returns the first empty cell in row-major order.
func findEmpty(g domain.Grid) (int, int, bool) {
	for r := range g {
		for c := range g[r] {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// hasDuplicates scans the whole grid for a repeated non-zero value in any
// row, column or box. This is the solver precondition: a contradictory set
// of givens is rejected up front instead of being "fixed" by the search.
func hasDuplicates(g domain.Grid, geo domain.Geometry) bool {
	n := geo.Size()
	seen := make([]bool, n+1)
	reset := func() {
		for i := range seen {
			seen[i] = false
		}
	}
	for r := 0; r < n; r++ {
		reset()
		for c := 0; c < n; c++ {
			if v := g[r][c]; v != 0 {
				if seen[v] {
					return true
				}
				seen[v] = true
			}
		}
	}
	for c := 0; c < n; c++ {
		reset()
		for r := 0; r < n; r++ {
			if v := g[r][c]; v != 0 {
				if seen[v] {
					return true
				}
				seen[v] = true
			}
		}
	}
	for br := 0; br < n; br += geo.BoxHeight {
		for bc := 0; bc < n; bc += geo.BoxWidth {
			reset()
			for dr := 0; dr < geo.BoxHeight; dr++ {
				for dc := 0; dc < geo.BoxWidth; dc++ {
					if v := g[br+dr][bc+dc]; v != 0 {
						if seen[v] {
							return true
						}
						seen[v] = true
					}
				}
			}
		}
	}
	return false
}
