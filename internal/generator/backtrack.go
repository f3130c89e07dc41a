package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sudokuterm/internal/domain"
	"svw.info/sudokuterm/internal/ports"
)

// Generate creates a puzzle for the geometry and difficulty. The seed
// fully determines the output, so two calls with the same arguments
// produce the same puzzle.
func (g *Backtracking) Generate(ctx context.Context, seed int64, geo domain.Geometry, d domain.Difficulty) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	if _, err := domain.NewGeometry(geo.BoxWidth, geo.BoxHeight); err != nil {
		return nil, ports.Stats{}, err
	}
	frac, err := removalRange(d)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	if g.EnsureUnique && g.Solver == nil {
		return nil, ports.Stats{}, errNoSolver
	}

	rng := rand.New(rand.NewSource(seed))

	full := domain.NewGrid(geo)
	nodes := fillRandom(ctx, rng, full, geo)
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}

	puzzle, carveNodes, err := g.carve(ctx, rng, full, geo, frac)
	nodes += carveNodes
	if err != nil {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}
	return puzzle, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// FillComplete returns a complete random solution grid for the geometry,
// the seed-generation half of Generate exposed on its own.
func FillComplete(ctx context.Context, seed int64, geo domain.Geometry) (domain.Grid, error) {
	if _, err := domain.NewGeometry(geo.BoxWidth, geo.BoxHeight); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	grid := domain.NewGrid(geo)
	fillRandom(ctx, rng, grid, geo)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return grid, nil
}

// fillRandom solves the empty grid into a full valid solution, trying
// candidates in a freshly shuffled order at every cell. The shuffle is
// what makes each seed produce a different board; with a fixed order the
// filler would always emit the same canonical solution. A solution always
// exists for a valid geometry, so the top-level call cannot fail.
func fillRandom(ctx context.Context, rng *rand.Rand, grid domain.Grid, geo domain.Geometry) int {
	n := geo.Size()
	nodes := 0
	nums := make([]int, n)
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := firstEmpty(grid)
		if !ok {
			return true
		}
		for i := range nums {
			nums[i] = i + 1
		}
		rng.Shuffle(n, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		for _, v := range nums {
			nodes++
			if allowed(grid, geo, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	dfs()
	return nodes
}

// carve copies the complete grid and zeroes a difficulty-budgeted number
// of cells at shuffled positions. The input grid is left untouched.
func (g *Backtracking) carve(ctx context.Context, rng *rand.Rand, full domain.Grid, geo domain.Geometry, frac fractionRange) (domain.Grid, int, error) {
	total := geo.Cells()
	low := int(float64(total) * frac.min)
	high := int(float64(total) * frac.max)
	target := low + rng.Intn(high-low+1)

	puzzle := full.Clone()
	positions := rng.Perm(total)
	n := geo.Size()

	if !g.EnsureUnique {
		for _, pos := range positions[:target] {
			puzzle[pos/n][pos%n] = 0
		}
		return puzzle, 0, nil
	}

	// Keep-or-revert carve: a removal that lets a second solution in is
	// undone. The target may be missed when the position list runs out.
	nodes := 0
	removed := 0
	for _, pos := range positions {
		if removed >= target {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, nodes, err
		}
		r, c := pos/n, pos%n
		old := puzzle[r][c]
		puzzle[r][c] = 0
		unique, st, err := g.Solver.Unique(ctx, puzzle, geo)
		nodes += st.Nodes
		if err != nil {
			return nil, nodes, err
		}
		if !unique {
			puzzle[r][c] = old
			continue
		}
		removed++
	}
	return puzzle, nodes, nil
}

// firstEmpty mirrors the solver's scan locally for the generator.
func firstEmpty(g domain.Grid) (int, int, bool) {
	for r := range g {
		for c := range g[r] {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// allowed mirrors the row/col/box placement check locally for the generator.
func allowed(g domain.Grid, geo domain.Geometry, r, c, v int) bool {
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
