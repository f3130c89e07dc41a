package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Game is a single play session: board, player, difficulty and timer.
// Elapsed time excludes everything spent in the Paused state.
type Game struct {
	ID         string
	Player     Player
	Difficulty Difficulty
	Board      *Board
	State      GameState

	startedAt   time.Time
	endedAt     time.Time
	pausedAt    time.Time
	pausedTotal time.Duration

	now func() time.Time
}

// NewGame creates a session in the NotStarted state.
func NewGame(player Player, difficulty Difficulty, board *Board) *Game {
	return &Game{
		ID:         uuid.NewString(),
		Player:     player,
		Difficulty: difficulty,
		Board:      board,
		State:      NotStarted,
		now:        time.Now,
	}
}

// Start begins the clock. A session can be started only once.
func (g *Game) Start() error {
	if g.State != NotStarted {
		return fmt.Errorf("%w: start from %s", ErrGameState, g.State)
	}
	g.State = InProgress
	g.startedAt = g.now()
	return nil
}

// Pause suspends the clock.
func (g *Game) Pause() error {
	if g.State != InProgress {
		return fmt.Errorf("%w: pause from %s", ErrGameState, g.State)
	}
	g.State = Paused
	g.pausedAt = g.now()
	return nil
}

// Resume continues a paused session, adding the pause to the excluded total.
func (g *Game) Resume() error {
	if g.State != Paused {
		return fmt.Errorf("%w: resume from %s", ErrGameState, g.State)
	}
	g.pausedTotal += g.now().Sub(g.pausedAt)
	g.pausedAt = time.Time{}
	g.State = InProgress
	return nil
}

// MakeMove places v at (r, c), or clears the cell when v is 0. Moves are
// only legal while the session is in progress.
func (g *Game) MakeMove(r, c, v int) error {
	if g.State != InProgress {
		return fmt.Errorf("%w: move from %s", ErrGameState, g.State)
	}
	if v == 0 {
		return g.Board.Clear(r, c)
	}
	return g.Board.Set(r, c, v)
}

// MarkWon ends the session as a win.
func (g *Game) MarkWon() error {
	if g.State != InProgress {
		return fmt.Errorf("%w: win from %s", ErrGameState, g.State)
	}
	g.State = Won
	g.endedAt = g.now()
	return nil
}

// MarkLost ends the session as a loss.
func (g *Game) MarkLost() error {
	if g.State != InProgress && g.State != Paused {
		return fmt.Errorf("%w: lose from %s", ErrGameState, g.State)
	}
	if g.State == Paused {
		g.pausedTotal += g.now().Sub(g.pausedAt)
		g.pausedAt = time.Time{}
	}
	g.State = Lost
	g.endedAt = g.now()
	return nil
}

// Elapsed returns play time so far, excluding pauses. Zero before Start.
func (g *Game) Elapsed() time.Duration {
	if g.startedAt.IsZero() {
		return 0
	}
	var end time.Time
	switch {
	case g.State == Paused:
		end = g.pausedAt
	case !g.endedAt.IsZero():
		end = g.endedAt
	default:
		end = g.now()
	}
	return end.Sub(g.startedAt) - g.pausedTotal
}

// Active reports whether the session is in progress or paused.
func (g *Game) Active() bool { return g.State == InProgress || g.State == Paused }

// Finished reports whether the session ended in a win or loss.
func (g *Game) Finished() bool { return g.State == Won || g.State == Lost }

func (g *Game) String() string {
	return fmt.Sprintf("Game(%s, %s, %s, %s)", g.Player, g.Difficulty, g.State, g.Elapsed().Round(time.Second))
}
