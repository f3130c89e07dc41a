package domain

import "strings"

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint suggests a single placement the current grid forces.
type Hint struct {
	Message string    `json:"message,omitempty"`
	Cell    CellCoord `json:"cell"`
	Value   int       `json:"value"`
}

// Player is whoever is filling in the grid. Equality is by name, which is
// also the statistics key.
type Player struct {
	Name string `json:"name"`
}

// NewPlayer trims the name and rejects blank input.
func NewPlayer(name string) (Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Player{}, ErrEmptyPlayerName
	}
	return Player{Name: name}, nil
}

func (p Player) String() string { return p.Name }
