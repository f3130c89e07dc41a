package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"svw.info/sudokuterm/internal/domain"
	"svw.info/sudokuterm/internal/generator"
	"svw.info/sudokuterm/internal/hint"
	"svw.info/sudokuterm/internal/infrastructure/storage"
	"svw.info/sudokuterm/internal/solver"
	"svw.info/sudokuterm/internal/validator"
)

var geo9 = domain.Geometry{BoxWidth: 3, BoxHeight: 3}

func testService(t *testing.T) *Service {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	s := solver.NewBacktracking()
	return NewService(s, generator.New(), validator.New(), hint.NewSingles(), storage.NewFS(t.TempDir()), log)
}

func TestStartNewGame(t *testing.T) {
	svc := testService(t)

	game, err := svc.StartNewGame(context.Background(), "alice", "easy", geo9, 42)
	if err != nil {
		t.Fatalf("StartNewGame failed: %v", err)
	}
	if game.State != domain.InProgress {
		t.Fatalf("state = %s, want in progress", game.State)
	}
	if game.Difficulty != domain.Easy {
		t.Fatalf("difficulty = %s", game.Difficulty)
	}
	if game.Board.FixedCount() != game.Board.FilledCount() {
		t.Fatal("fresh board holds non-given values")
	}
	if game.Board.FixedCount() == 0 || game.Board.Complete() {
		t.Fatal("degenerate puzzle")
	}

	// same seed, same puzzle
	again, err := svc.StartNewGame(context.Background(), "alice", " EASY ", geo9, 42)
	if err != nil {
		t.Fatalf("StartNewGame failed: %v", err)
	}
	a, b := game.Board.Givens(), again.Board.Givens()
	for r := range a {
		for c := range a[r] {
			if a[r][c] != b[r][c] {
				t.Fatal("same seed produced different boards")
			}
		}
	}
}

func TestStartNewGameRejectsBadInput(t *testing.T) {
	svc := testService(t)
	if _, err := svc.StartNewGame(context.Background(), "   ", "easy", geo9, 1); err == nil {
		t.Fatal("blank player accepted")
	}
	if _, err := svc.StartNewGame(context.Background(), "alice", "brutal", geo9, 1); !errors.Is(err, domain.ErrUnknownDifficulty) {
		t.Fatalf("want ErrUnknownDifficulty, got %v", err)
	}
}

func TestMakeMoveRules(t *testing.T) {
	ctx := context.Background()
	svc := testService(t)
	game, err := svc.StartNewGame(ctx, "alice", "easy", geo9, 42)
	if err != nil {
		t.Fatalf("StartNewGame failed: %v", err)
	}

	// find a given and an empty cell
	var fr, fc, er, ec int
	foundFixed, foundEmpty := false, false
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell, _ := game.Board.Cell(r, c)
			if cell.Fixed && !foundFixed {
				fr, fc, foundFixed = r, c, true
			}
			if cell.Empty() && !foundEmpty {
				er, ec, foundEmpty = r, c, true
			}
		}
	}
	if !foundFixed || !foundEmpty {
		t.Fatal("puzzle lacks a given or an empty cell")
	}

	// a given can be neither overwritten nor cleared, silently
	ok, err := svc.MakeMove(ctx, game, fr, fc, 1)
	if err != nil || ok {
		t.Fatalf("write to given: ok=%v err=%v", ok, err)
	}
	ok, err = svc.MakeMove(ctx, game, fr, fc, 0)
	if err != nil || ok {
		t.Fatalf("clear of given: ok=%v err=%v", ok, err)
	}

	// conflicting digit is refused, the correct one goes in
	solved, _, err := svc.Solve(ctx, game.Board.Givens(), geo9)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	want := solved[er][ec]
	snapshot := game.Board.Snapshot()
	clash := 0
	for c := 0; c < 9; c++ {
		if c != ec && snapshot[er][c] != 0 {
			clash = snapshot[er][c]
			break
		}
	}
	if clash != 0 {
		if ok, err := svc.MakeMove(ctx, game, er, ec, clash); err != nil || ok {
			t.Fatalf("conflicting move accepted: ok=%v err=%v (value %d)", ok, err, clash)
		}
	}
	if ok, err := svc.MakeMove(ctx, game, er, ec, want); err != nil || !ok {
		t.Fatalf("legal move refused: ok=%v err=%v", ok, err)
	}
	// re-entering the same digit is still legal
	if ok, err := svc.MakeMove(ctx, game, er, ec, want); err != nil || !ok {
		t.Fatalf("re-entry refused: ok=%v err=%v", ok, err)
	}
	// and clearing it works
	if ok, err := svc.MakeMove(ctx, game, er, ec, 0); err != nil || !ok {
		t.Fatalf("clear refused: ok=%v err=%v", ok, err)
	}
}

func TestPlayThrough(t *testing.T) {
	ctx := context.Background()
	svc := testService(t)
	game, err := svc.StartNewGame(ctx, "alice", "easy", geo9, 7)
	if err != nil {
		t.Fatalf("StartNewGame failed: %v", err)
	}

	done, err := svc.CheckCompletion(ctx, game)
	if err != nil || done {
		t.Fatalf("fresh game complete: done=%v err=%v", done, err)
	}

	solved, _, err := svc.Solve(ctx, game.Board.Givens(), geo9)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell, _ := game.Board.Cell(r, c)
			if !cell.Empty() {
				continue
			}
			ok, err := svc.MakeMove(ctx, game, r, c, solved[r][c])
			if err != nil || !ok {
				t.Fatalf("move (%d,%d)=%d: ok=%v err=%v", r, c, solved[r][c], ok, err)
			}
		}
	}

	done, err = svc.CheckCompletion(ctx, game)
	if err != nil || !done {
		t.Fatalf("completed game not recognized: done=%v err=%v", done, err)
	}
	if game.State != domain.Won {
		t.Fatalf("state = %s, want won", game.State)
	}

	if err := svc.RecordResult(ctx, game); err != nil {
		t.Fatalf("RecordResult failed: %v", err)
	}
	stats, err := svc.PlayerStatistics(ctx, "alice")
	if err != nil {
		t.Fatalf("PlayerStatistics failed: %v", err)
	}
	if stats["EASY"].Won != 1 {
		t.Fatalf("stats after win: %+v", stats["EASY"])
	}
}

func TestRecordResultRequiresFinishedGame(t *testing.T) {
	ctx := context.Background()
	svc := testService(t)
	game, err := svc.StartNewGame(ctx, "alice", "easy", geo9, 3)
	if err != nil {
		t.Fatalf("StartNewGame failed: %v", err)
	}
	if err := svc.RecordResult(ctx, game); !errors.Is(err, domain.ErrGameState) {
		t.Fatalf("recording an unfinished game: %v", err)
	}
	if err := game.MarkLost(); err != nil {
		t.Fatalf("MarkLost failed: %v", err)
	}
	if err := svc.RecordResult(ctx, game); err != nil {
		t.Fatalf("RecordResult failed: %v", err)
	}
	stats, err := svc.PlayerStatistics(ctx, "alice")
	if err != nil {
		t.Fatalf("PlayerStatistics failed: %v", err)
	}
	if stats["EASY"].Lost != 1 {
		t.Fatalf("stats after loss: %+v", stats["EASY"])
	}
}

func TestHintSuggestsValidPlacement(t *testing.T) {
	ctx := context.Background()
	svc := testService(t)
	game, err := svc.StartNewGame(ctx, "alice", "easy", geo9, 11)
	if err != nil {
		t.Fatalf("StartNewGame failed: %v", err)
	}
	h, ok, err := svc.Hint(ctx, game)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if !ok {
		t.Skip("no naked single in this puzzle")
	}
	cell, err := game.Board.Cell(h.Cell.Row, h.Cell.Col)
	if err != nil || !cell.Empty() {
		t.Fatalf("hint targets occupied cell %v: %+v err=%v", h.Cell, cell, err)
	}
	solved, _, err := svc.Solve(ctx, game.Board.Givens(), geo9)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if solved[h.Cell.Row][h.Cell.Col] != h.Value {
		t.Fatalf("hint %d at %v contradicts the solution value %d", h.Value, h.Cell, solved[h.Cell.Row][h.Cell.Col])
	}
}

func TestUnconfiguredService(t *testing.T) {
	svc := NewService(nil, nil, nil, nil, nil, nil)
	ctx := context.Background()
	if _, err := svc.StartNewGame(ctx, "a", "easy", geo9, 1); err == nil {
		t.Fatal("StartNewGame without generator succeeded")
	}
	if _, _, err := svc.Solve(ctx, domain.NewGrid(geo9), geo9); err == nil {
		t.Fatal("Solve without solver succeeded")
	}
	if _, err := svc.PlayerStatistics(ctx, "a"); err == nil {
		t.Fatal("PlayerStatistics without store succeeded")
	}
}
