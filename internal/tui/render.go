package tui

import (
	"fmt"
	"time"

	gc "github.com/gbin/goncurses"

	"svw.info/sudokuterm/internal/domain"
)

// color pair ids
const (
	colFixed int16 = iota + 1
	colEntry
	colConflict
	colAccent
)

func setupColors() {
	if err := gc.StartColor(); err != nil {
		return
	}
	gc.UseDefaultColors()
	gc.InitPair(colFixed, gc.C_CYAN, -1)
	gc.InitPair(colEntry, gc.C_WHITE, -1)
	gc.InitPair(colConflict, gc.C_RED, -1)
	gc.InitPair(colAccent, gc.C_YELLOW, -1)
}

// drawBoard renders the grid with ASCII box ruling at (y, x). Each cell is
// three columns wide; heavy separators follow the box tiling. The cursor
// cell is drawn reversed, fixed givens and conflicts get their colors.
func drawBoard(w *gc.Window, y, x int, board *domain.Board, cur domain.CellCoord, conflicts []domain.CellCoord) {
	geo := board.Geo
	n := geo.Size()

	conflict := make(map[domain.CellCoord]bool, len(conflicts))
	for _, cc := range conflicts {
		conflict[cc] = true
	}

	sep := rowSeparator(geo)
	line := y
	for r := 0; r < n; r++ {
		if r%geo.BoxHeight == 0 {
			w.MovePrint(line, x, sep)
			line++
		}
		col := x
		for c := 0; c < n; c++ {
			if c%geo.BoxWidth == 0 {
				w.MovePrint(line, col, "|")
				col++
			}
			cell, _ := board.Cell(r, c)
			text := " . "
			if !cell.Empty() {
				text = fmt.Sprintf("%2d ", cell.Value)
			}

			var attr gc.Char
			switch {
			case conflict[domain.CellCoord{Row: r, Col: c}]:
				attr = gc.ColorPair(colConflict)
			case cell.Fixed:
				attr = gc.ColorPair(colFixed) | gc.A_BOLD
			default:
				attr = gc.ColorPair(colEntry)
			}
			if cur.Row == r && cur.Col == c {
				attr |= gc.A_REVERSE
			}
			w.AttrOn(attr)
			w.MovePrint(line, col, text)
			w.AttrOff(attr)
			col += 3
		}
		w.MovePrint(line, col, "|")
		line++
	}
	w.MovePrint(line, x, sep)
}

// rowSeparator builds "+---------+---------+..." for the geometry.
func rowSeparator(geo domain.Geometry) string {
	out := ""
	for b := 0; b < geo.BoxHeight; b++ { // boxes per row = n/boxWidth = boxHeight
		out += "+"
		for i := 0; i < geo.BoxWidth*3; i++ {
			out += "-"
		}
	}
	return out + "+"
}

// boardHeight returns the number of terminal rows drawBoard uses.
func boardHeight(geo domain.Geometry) int {
	return geo.Size() + geo.BoxHeight + 1
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}
