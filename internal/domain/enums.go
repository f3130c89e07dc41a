package domain

import "fmt"

// Difficulty labels how many cells are carved out of a generated puzzle.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// String returns the canonical key, also used for statistics storage.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "EASY"
	case Medium:
		return "MEDIUM"
	case Hard:
		return "HARD"
	}
	return "UNKNOWN"
}

// ParseDifficulty accepts only the canonical upper-case keys and fails
// loudly on anything else. Callers wanting case-insensitive input must
// normalize before calling.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "EASY":
		return Easy, nil
	case "MEDIUM":
		return Medium, nil
	case "HARD":
		return Hard, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// Difficulties lists all levels in ascending order of removal.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// GameState tracks a session through its lifecycle.
type GameState int

const (
	NotStarted GameState = iota
	InProgress
	Paused
	Won
	Lost
)

func (s GameState) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Paused:
		return "paused"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}
