package generator

import (
	"errors"
	"fmt"

	"svw.info/sudokuterm/internal/domain"
	"svw.info/sudokuterm/internal/ports"
)

// Backtracking generates puzzles by filling a complete random solution and
// carving cells out of it under a difficulty-controlled budget.
//
// The plain carve does not re-check that the puzzle keeps a unique
// solution; that matches the historical behavior and keeps HARD fast.
// EnsureUnique switches to a keep-or-revert carve driven by the Solver.
type Backtracking struct {
	Solver       ports.Solver // required only when EnsureUnique is set
	EnsureUnique bool
}

// New wires the plain generator.
func New() *Backtracking { return &Backtracking{} }

// NewUnique wires a generator that keeps every carved puzzle uniquely
// solvable, using the given solver for the uniqueness checks.
func NewUnique(s ports.Solver) *Backtracking {
	return &Backtracking{Solver: s, EnsureUnique: true}
}

var errNoSolver = errors.New("unique carving requires a solver")

// removal fraction of total cells per difficulty, [min, max]
type fractionRange struct {
	min, max float64
}

func removalRange(d domain.Difficulty) (fractionRange, error) {
	switch d {
	case domain.Easy:
		return fractionRange{0.30, 0.40}, nil
	case domain.Medium:
		return fractionRange{0.45, 0.55}, nil
	case domain.Hard:
		return fractionRange{0.60, 0.65}, nil
	}
	return fractionRange{}, fmt.Errorf("%w: %d", domain.ErrUnknownDifficulty, int(d))
}
