package tui

import (
	"context"
	"fmt"

	gc "github.com/gbin/goncurses"
	"github.com/sirupsen/logrus"

	"svw.info/sudokuterm/internal/domain"
	"svw.info/sudokuterm/internal/usecase"
)

// App is the curses front end: a menu, a player form, the game screen and
// a statistics screen, all drawn on the one stdscr.
type App struct {
	uc  *usecase.Service
	log *logrus.Logger

	geo        domain.Geometry
	difficulty string
	lastPlayer string
}

// New builds the app. geo and difficulty are the configured defaults; the
// player form lets the user override the difficulty per game.
func New(uc *usecase.Service, log *logrus.Logger, geo domain.Geometry, difficulty string) *App {
	return &App{uc: uc, log: log, geo: geo, difficulty: difficulty}
}

type menuChoice int

const (
	menuNewGame menuChoice = iota
	menuStats
	menuQuit
)

// Run owns the terminal until the player quits.
func (a *App) Run(ctx context.Context) error {
	if a.geo.Size() > 9 {
		return fmt.Errorf("board %s is not playable in the terminal UI (digit keys stop at 9)", a.geo)
	}
	stdscr, err := gc.Init()
	if err != nil {
		return fmt.Errorf("init curses: %w", err)
	}
	defer gc.End()

	gc.Echo(false)
	gc.CBreak(true)
	gc.Cursor(0)
	stdscr.Keypad(true)
	setupColors()

	for {
		choice, err := a.menu(stdscr)
		if err != nil {
			return err
		}
		switch choice {
		case menuNewGame:
			name, diff, ok := a.playerForm(stdscr)
			if !ok {
				continue
			}
			a.lastPlayer = name
			if err := a.playGame(ctx, stdscr, name, diff); err != nil {
				a.log.WithError(err).Error("game session failed")
				a.flashError(stdscr, err)
			}
		case menuStats:
			a.statsScreen(ctx, stdscr, a.lastPlayer)
		case menuQuit:
			return nil
		}
	}
}

var menuItems = []string{"New Game", "Statistics", "Quit"}

func (a *App) menu(w *gc.Window) (menuChoice, error) {
	sel := 0
	for {
		w.Erase()
		w.AttrOn(gc.ColorPair(colAccent) | gc.A_BOLD)
		w.MovePrint(1, 2, "S U D O K U")
		w.AttrOff(gc.ColorPair(colAccent) | gc.A_BOLD)
		w.MovePrint(2, 2, a.geo.String())
		for i, item := range menuItems {
			attr := gc.Char(0)
			if i == sel {
				attr = gc.A_REVERSE
			}
			w.AttrOn(attr)
			w.MovePrint(4+i, 4, item)
			w.AttrOff(attr)
		}
		w.MovePrint(8+len(menuItems), 2, "arrows/jk move, enter select, n new game, s stats, q quit")
		w.Refresh()

		switch k := w.GetChar(); k {
		case gc.KEY_UP, 'k':
			if sel > 0 {
				sel--
			}
		case gc.KEY_DOWN, 'j':
			if sel < len(menuItems)-1 {
				sel++
			}
		case keyNewline, keyCarriage, gc.KEY_ENTER:
			return menuChoice(sel), nil
		case 'n':
			return menuNewGame, nil
		case 's':
			return menuStats, nil
		case 'q', 'Q', keyEsc:
			return menuQuit, nil
		}
	}
}

func (a *App) flashError(w *gc.Window, err error) {
	w.Erase()
	w.AttrOn(gc.ColorPair(colConflict))
	w.MovePrint(2, 2, "error: ", err.Error())
	w.AttrOff(gc.ColorPair(colConflict))
	w.MovePrint(4, 2, "press any key")
	w.Refresh()
	w.GetChar()
}
