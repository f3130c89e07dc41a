package tui

import gc "github.com/gbin/goncurses"

// Action is what a key press means on the game screen.
type Action int

const (
	ActNone Action = iota
	ActUp
	ActDown
	ActLeft
	ActRight
	ActDigit
	ActClear
	ActPause
	ActHint
	ActNewGame
	ActStats
	ActMenu
	ActQuit
)

// terminal control keys ncurses does not name
const (
	keyEsc      gc.Key = 27
	keyNewline  gc.Key = '\n'
	keyCarriage gc.Key = '\r'
)

// qwertzDigits maps the QWERTZ home-ish row to 1..9, mirroring the
// original terminal bindings, so digits can be typed without reaching for
// the number row.
var qwertzDigits = map[gc.Key]int{
	'q': 1, 'w': 2, 'e': 3, 'r': 4, 't': 5, 'z': 6, 'u': 7, 'i': 8, 'o': 9,
}

// mapGameKey translates a key press. For digits the second return value
// carries the value to place; n caps which digit keys are live so a 6x6
// board ignores 7..9. Lowercase q belongs to the QWERTZ digits; quitting
// is capital Q.
func mapGameKey(k gc.Key, n int) (Action, int) {
	switch k {
	case gc.KEY_UP, 'k':
		return ActUp, 0
	case gc.KEY_DOWN, 'j':
		return ActDown, 0
	case gc.KEY_LEFT, 'h':
		return ActLeft, 0
	case gc.KEY_RIGHT, 'l':
		return ActRight, 0
	case 'x', gc.KEY_DC, gc.KEY_BACKSPACE:
		return ActClear, 0
	case 'p':
		return ActPause, 0
	case 'a':
		return ActHint, 0
	case 'n':
		return ActNewGame, 0
	case 's':
		return ActStats, 0
	case keyEsc:
		return ActMenu, 0
	case 'Q':
		return ActQuit, 0
	}
	if k >= '1' && k <= '9' {
		v := int(k - '0')
		if v <= n {
			return ActDigit, v
		}
		return ActNone, 0
	}
	if v, ok := qwertzDigits[k]; ok && v <= n {
		return ActDigit, v
	}
	return ActNone, 0
}
