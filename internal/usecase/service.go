package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"svw.info/sudokuterm/internal/domain"
	"svw.info/sudokuterm/internal/ports"
)

// Service wires the engine ports into the operations the UI and CLI call.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Stats     ports.StatsStore
	Log       *logrus.Logger
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, st ports.StatsStore, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.New()
	}
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h, Stats: st, Log: log}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// StartNewGame generates a puzzle and opens a session for the player. The
// difficulty string is normalized here; the engine only takes canonical
// keys.
func (u *Service) StartNewGame(ctx context.Context, playerName, difficulty string, geo domain.Geometry, seed int64) (*domain.Game, error) {
	if u.Generator == nil {
		return nil, errNotConfigured
	}
	player, err := domain.NewPlayer(playerName)
	if err != nil {
		return nil, err
	}
	diff, err := domain.ParseDifficulty(normalizeDifficulty(difficulty))
	if err != nil {
		return nil, err
	}
	puzzle, st, err := u.Generator.Generate(ctx, seed, geo, diff)
	if err != nil {
		return nil, err
	}
	u.Log.WithFields(logrus.Fields{
		"player":     player.Name,
		"difficulty": diff.String(),
		"geometry":   geo.String(),
		"seed":       seed,
		"givens":     puzzle.Filled(),
		"nodes":      st.Nodes,
		"dur":        st.Duration,
	}).Info("puzzle generated")

	board, err := domain.NewBoard(geo, puzzle)
	if err != nil {
		return nil, err
	}
	game := domain.NewGame(player, diff, board)
	if err := game.Start(); err != nil {
		return nil, err
	}
	return game, nil
}

// MakeMove validates and applies a move. v == 0 clears the cell. The
// returned bool says whether the move was applied; rule conflicts and
// fixed-cell writes report false without an error.
func (u *Service) MakeMove(ctx context.Context, game *domain.Game, r, c, v int) (bool, error) {
	if u.Validator == nil {
		return false, errNotConfigured
	}
	if v == 0 {
		if err := game.MakeMove(r, c, 0); err != nil {
			if errors.Is(err, domain.ErrFixedCell) {
				return false, nil
			}
			return false, err
		}
		return true, nil
	}
	cell, err := game.Board.Cell(r, c)
	if err != nil {
		return false, err
	}
	if cell.Fixed {
		return false, nil
	}
	// Check against the grid without the cell's old value so replacing a
	// digit is judged on its own merits.
	grid := game.Board.Snapshot()
	grid[r][c] = 0
	ok, err := u.Validator.Move(ctx, grid, game.Board.Geo, r, c, v)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := game.MakeMove(r, c, v); err != nil {
		return false, err
	}
	return true, nil
}

// CheckCompletion reports whether the board is a finished, correct
// solution, and marks the session won when it is.
func (u *Service) CheckCompletion(ctx context.Context, game *domain.Game) (bool, error) {
	if u.Validator == nil {
		return false, errNotConfigured
	}
	if !game.Board.Complete() {
		return false, nil
	}
	done, err := u.Validator.Complete(ctx, game.Board.Snapshot(), game.Board.Geo)
	if err != nil || !done {
		return false, err
	}
	if game.State == domain.InProgress {
		if err := game.MarkWon(); err != nil {
			return false, err
		}
	}
	return true, nil
}

// RecordResult persists a finished session into the player's statistics.
func (u *Service) RecordResult(ctx context.Context, game *domain.Game) error {
	if u.Stats == nil {
		return errNotConfigured
	}
	if !game.Finished() {
		return domain.ErrGameState
	}
	won := game.State == domain.Won
	if err := u.Stats.Record(ctx, game.Player.Name, game.Difficulty, won, game.Elapsed()); err != nil {
		return err
	}
	u.Log.WithFields(logrus.Fields{
		"player":     game.Player.Name,
		"difficulty": game.Difficulty.String(),
		"won":        won,
		"elapsed":    game.Elapsed().Round(time.Second),
	}).Info("result recorded")
	return nil
}

// PlayerStatistics returns all per-difficulty aggregates for a player.
func (u *Service) PlayerStatistics(ctx context.Context, playerName string) (domain.PlayerStats, error) {
	if u.Stats == nil {
		return nil, errNotConfigured
	}
	player, err := domain.NewPlayer(playerName)
	if err != nil {
		return nil, err
	}
	return u.Stats.All(ctx, player.Name)
}

// Engine pass-throughs.

func (u *Service) Solve(ctx context.Context, g domain.Grid, geo domain.Geometry) (domain.Grid, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g, geo)
}

func (u *Service) Unique(ctx context.Context, g domain.Grid, geo domain.Geometry) (bool, ports.Stats, error) {
	if u.Solver == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Unique(ctx, g, geo)
}

func (u *Service) Generate(ctx context.Context, seed int64, geo domain.Geometry, d domain.Difficulty) (domain.Grid, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, geo, d)
}

func (u *Service) Hint(ctx context.Context, game *domain.Game) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, game.Board.Snapshot(), game.Board.Geo)
}

func normalizeDifficulty(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
