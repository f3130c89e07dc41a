package tui

import (
	"context"
	"fmt"

	gc "github.com/gbin/goncurses"

	"svw.info/sudokuterm/internal/domain"
)

// statsScreen shows the per-difficulty table for one player. With no
// player yet, it asks for a name first.
func (a *App) statsScreen(ctx context.Context, w *gc.Window, playerName string) {
	if playerName == "" {
		name, _, ok := a.playerForm(w)
		if !ok {
			return
		}
		playerName = name
		a.lastPlayer = name
	}

	stats, err := a.uc.PlayerStatistics(ctx, playerName)
	if err != nil {
		a.log.WithError(err).Error("loading statistics failed")
		a.flashError(w, err)
		return
	}

	w.Timeout(-1)
	w.Erase()
	w.AttrOn(gc.ColorPair(colAccent) | gc.A_BOLD)
	w.MovePrint(1, 2, "Statistics - ", playerName)
	w.AttrOff(gc.ColorPair(colAccent) | gc.A_BOLD)

	w.MovePrint(3, 2, fmt.Sprintf("%-8s %7s %5s %6s %8s %8s %8s", "LEVEL", "PLAYED", "WON", "WIN%", "TOTAL", "AVG", "BEST"))
	row := 4
	for _, d := range domain.Difficulties() {
		ds := stats[d.String()]
		best := "-"
		if b, ok := ds.BestTime(); ok {
			best = formatElapsed(b)
		}
		avg := "-"
		if ds.Played > 0 {
			avg = formatElapsed(ds.AverageTime())
		}
		w.MovePrint(row, 2, fmt.Sprintf("%-8s %7d %5d %5.1f%% %8s %8s %8s",
			d.String(), ds.Played, ds.Won, ds.WinRate(), formatElapsed(ds.TotalTime()), avg, best))
		row++
	}
	w.MovePrint(row+2, 2, "press any key")
	w.Refresh()
	w.GetChar()
}
