package tui

import (
	"context"
	"fmt"
	"time"

	gc "github.com/gbin/goncurses"

	"svw.info/sudokuterm/internal/domain"
)

// playGame runs one session from StartNewGame to win, loss or abandon.
// Abandoning an in-progress game (menu, new game, quit) counts as a loss.
func (a *App) playGame(ctx context.Context, w *gc.Window, playerName, difficulty string) error {
	game, err := a.uc.StartNewGame(ctx, playerName, difficulty, a.geo, time.Now().UnixNano())
	if err != nil {
		return err
	}

	n := a.geo.Size()
	cur := domain.CellCoord{}
	message := ""
	w.Timeout(500) // wake up to tick the clock
	defer w.Timeout(-1)

	for {
		a.drawGame(w, game, cur, message)

		k := w.GetChar()
		if k == 0 {
			continue // timeout tick, redraw clock
		}
		if game.State == domain.Paused {
			// any key resumes except quit paths
			act, _ := mapGameKey(k, n)
			switch act {
			case ActQuit, ActMenu:
				a.abandon(ctx, game)
				return nil
			default:
				if err := game.Resume(); err == nil {
					message = ""
				}
			}
			continue
		}

		act, digit := mapGameKey(k, n)
		message = ""
		switch act {
		case ActUp:
			if cur.Row > 0 {
				cur.Row--
			}
		case ActDown:
			if cur.Row < n-1 {
				cur.Row++
			}
		case ActLeft:
			if cur.Col > 0 {
				cur.Col--
			}
		case ActRight:
			if cur.Col < n-1 {
				cur.Col++
			}
		case ActDigit:
			applied, err := a.uc.MakeMove(ctx, game, cur.Row, cur.Col, digit)
			if err != nil {
				return err
			}
			if !applied {
				message = fmt.Sprintf("%d does not fit there", digit)
				break
			}
			done, err := a.uc.CheckCompletion(ctx, game)
			if err != nil {
				return err
			}
			if done {
				a.finishGame(ctx, w, game)
				return nil
			}
		case ActClear:
			if _, err := a.uc.MakeMove(ctx, game, cur.Row, cur.Col, 0); err != nil {
				return err
			}
		case ActPause:
			if err := game.Pause(); err == nil {
				message = "paused - press any key"
			}
		case ActHint:
			h, ok, err := a.uc.Hint(ctx, game)
			if err != nil {
				return err
			}
			if ok {
				cur = h.Cell
				message = "hint: " + h.Message
			} else {
				message = "no obvious move"
			}
		case ActStats:
			a.statsScreen(ctx, w, game.Player.Name)
			w.Timeout(500)
		case ActNewGame, ActMenu, ActQuit:
			a.abandon(ctx, game)
			if act == ActNewGame {
				name, diff, ok := a.playerForm(w)
				if ok {
					return a.playGame(ctx, w, name, diff)
				}
			}
			return nil
		}
	}
}

func (a *App) drawGame(w *gc.Window, game *domain.Game, cur domain.CellCoord, message string) {
	w.Erase()
	header := fmt.Sprintf("%s  |  %s  |  %s", game.Player.Name, game.Difficulty, formatElapsed(game.Elapsed()))
	w.AttrOn(gc.ColorPair(colAccent))
	w.MovePrint(0, 2, header)
	w.AttrOff(gc.ColorPair(colAccent))

	if game.State == domain.Paused {
		w.MovePrint(3, 2, "-- paused --")
	} else {
		drawBoard(w, 2, 2, game.Board, cur, nil)
	}

	y := 2 + boardHeight(game.Board.Geo) + 1
	w.MovePrint(y, 2, "arrows/hjkl move, 1-9/qwertzuio place, x clear, a hint, p pause")
	w.MovePrint(y+1, 2, "n new game, s stats, esc menu, Q quit")
	if message != "" {
		w.AttrOn(gc.ColorPair(colConflict))
		w.MovePrint(y+3, 2, message)
		w.AttrOff(gc.ColorPair(colConflict))
	}
	w.Refresh()
}

// finishGame records the win and shows the summary until a key is pressed.
func (a *App) finishGame(ctx context.Context, w *gc.Window, game *domain.Game) {
	if err := a.uc.RecordResult(ctx, game); err != nil {
		a.log.WithError(err).Warn("recording win failed")
	}
	w.Timeout(-1)
	w.Erase()
	w.AttrOn(gc.ColorPair(colAccent) | gc.A_BOLD)
	w.MovePrint(2, 2, "Solved!")
	w.AttrOff(gc.ColorPair(colAccent) | gc.A_BOLD)
	w.MovePrint(4, 2, fmt.Sprintf("%s finished a %s board in %s", game.Player.Name, game.Difficulty, formatElapsed(game.Elapsed())))
	w.MovePrint(6, 2, "press any key")
	w.Refresh()
	w.GetChar()
}

// abandon marks a still-active game lost and records it.
func (a *App) abandon(ctx context.Context, game *domain.Game) {
	if !game.Active() {
		return
	}
	if err := game.MarkLost(); err != nil {
		a.log.WithError(err).Warn("marking game lost failed")
		return
	}
	if err := a.uc.RecordResult(ctx, game); err != nil {
		a.log.WithError(err).Warn("recording loss failed")
	}
}
