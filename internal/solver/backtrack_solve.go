package solver

import (
	"context"
	"time"

	"svw.info/sudokuterm/internal/domain"
	"svw.info/sudokuterm/internal/ports"
)

// Solve returns a solved copy of g, or domain.ErrNoSolution when no
// assignment satisfies the constraints. The input grid is never mutated.
func (s *Backtracking) Solve(ctx context.Context, g domain.Grid, geo domain.Geometry) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	if err := g.CheckShape(geo); err != nil {
		return nil, ports.Stats{}, err
	}
	if hasDuplicates(g, geo) {
		return nil, ports.Stats{Duration: time.Since(start)}, domain.ErrNoSolution
	}

	grid := g.Clone()
	n := geo.Size()
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(grid)
		if !ok {
			return true
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
	if !dfs() {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, domain.ErrNoSolution
	}
	return grid, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
