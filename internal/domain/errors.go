package domain

import "errors"

// Sentinel errors for the puzzle engine. All of them are terminal for the
// call that returns them; there are no partial or retry semantics.
var (
	// ErrInvalidDimensions reports a non-positive box width or height.
	ErrInvalidDimensions = errors.New("invalid box dimensions")

	// ErrUnknownDifficulty reports a difficulty key outside the
	// recognized set. Only canonical upper-case keys are accepted.
	ErrUnknownDifficulty = errors.New("unknown difficulty")

	// ErrInvalidGrid reports a grid that is not square for its geometry
	// or carries values outside 0..N.
	ErrInvalidGrid = errors.New("invalid grid")

	// ErrNoSolution is the expected outcome of solving a contradictory
	// or over-constrained grid, not a defect.
	ErrNoSolution = errors.New("no solution")
)

// Errors raised by the game-session entities.
var (
	ErrOutOfBounds     = errors.New("position out of bounds")
	ErrFixedCell       = errors.New("cell is a fixed given")
	ErrEmptyPlayerName = errors.New("player name cannot be empty")
	ErrGameState       = errors.New("operation not allowed in current game state")
)
