package solver

import (
	"context"
	"time"

	"svw.info/sudokuterm/internal/domain"
	"svw.info/sudokuterm/internal/ports"
)

// Unique counts completions up to 2 and reports whether exactly one
// exists. Counting past 2 would only waste work on exponentially larger
// search trees, so the search unwinds as soon as the cap is hit.
func (s *Backtracking) Unique(ctx context.Context, g domain.Grid, geo domain.Geometry) (bool, ports.Stats, error) {
	start := time.Now()
	if err := g.CheckShape(geo); err != nil {
		return false, ports.Stats{}, err
	}
	if hasDuplicates(g, geo) {
		// 0 solutions, so not unique
		return false, ports.Stats{Duration: time.Since(start)}, nil
	}

	grid := g.Clone()
	n := geo.Size()
	nodes := 0
	count := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= 2 {
			return true // stop early
		}
		r, c, ok := findEmpty(grid)
		if !ok {
			count++
			return count >= 2
		}
		for v := 1; v <= n; v++ {
			nodes++
			if canPlace(grid, geo, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	_ = dfs()
	if err := ctx.Err(); err != nil {
		return false, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
