package ports

import (
	"context"
	"time"

	"svw.info/sudokuterm/internal/domain"
)

// Stats captures performance characteristics of an engine operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver solves a grid and can test solution uniqueness. Implementations
// must not mutate the caller's grid.
type Solver interface {
	Solve(ctx context.Context, g domain.Grid, geo domain.Geometry) (domain.Grid, Stats, error)
	Unique(ctx context.Context, g domain.Grid, geo domain.Geometry) (bool, Stats, error)
}

// Generator creates new puzzles at a target difficulty. The seed fully
// determines the output for a given geometry and difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, geo domain.Geometry, d domain.Difficulty) (domain.Grid, Stats, error)
}

// Validator performs rule checks: whole-grid duplicate scans for solver
// preconditions and completion, and per-move checks for interactive play.
type Validator interface {
	Grid(ctx context.Context, g domain.Grid, geo domain.Geometry) (ok bool, conflicts []domain.CellCoord, err error)
	Move(ctx context.Context, g domain.Grid, geo domain.Geometry, r, c, v int) (bool, error)
	Complete(ctx context.Context, g domain.Grid, geo domain.Geometry) (bool, error)
}

// Hinter returns the next logical step, if one can be found cheaply.
type Hinter interface {
	Hint(ctx context.Context, g domain.Grid, geo domain.Geometry) (domain.Hint, bool, error)
}

// StatsStore persists per-player win/loss statistics keyed by canonical
// difficulty name.
type StatsStore interface {
	Record(ctx context.Context, player string, d domain.Difficulty, won bool, elapsed time.Duration) error
	Get(ctx context.Context, player string, d domain.Difficulty) (domain.DifficultyStats, error)
	All(ctx context.Context, player string) (domain.PlayerStats, error)
}
