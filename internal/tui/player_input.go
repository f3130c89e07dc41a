package tui

import (
	"strings"

	gc "github.com/gbin/goncurses"

	"svw.info/sudokuterm/internal/domain"
)

// playerForm collects a player name and difficulty. Returns ok=false when
// the player backs out with Esc.
func (a *App) playerForm(w *gc.Window) (name, difficulty string, ok bool) {
	diffs := domain.Difficulties()
	sel := 0
	for i, d := range diffs {
		if d.String() == strings.ToUpper(a.difficulty) {
			sel = i
		}
	}
	var input []rune

	for {
		w.Erase()
		w.MovePrint(1, 2, "New game")
		w.MovePrint(3, 2, "Player name: ", string(input), "_")
		w.MovePrint(5, 2, "Difficulty (left/right): ")
		col := 28
		for i, d := range diffs {
			attr := gc.Char(0)
			if i == sel {
				attr = gc.A_REVERSE
			}
			w.AttrOn(attr)
			w.MovePrint(5, col, d.String())
			w.AttrOff(attr)
			col += len(d.String()) + 2
		}
		w.MovePrint(7, 2, "enter start, esc back")
		w.Refresh()

		switch k := w.GetChar(); k {
		case keyEsc:
			return "", "", false
		case keyNewline, keyCarriage, gc.KEY_ENTER:
			trimmed := strings.TrimSpace(string(input))
			if trimmed == "" {
				continue // name required
			}
			return trimmed, diffs[sel].String(), true
		case gc.KEY_LEFT:
			if sel > 0 {
				sel--
			}
		case gc.KEY_RIGHT:
			if sel < len(diffs)-1 {
				sel++
			}
		case gc.KEY_BACKSPACE, 127:
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
		default:
			if r := rune(k); r >= ' ' && r < 127 && len(input) < 24 {
				input = append(input, r)
			}
		}
	}
}
