package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudokuterm/internal/domain"
)

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <player>",
		Short: "Show a player's win/loss statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.svc.PlayerStatistics(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-8s %7s %5s %5s %7s %8s %8s\n", "LEVEL", "PLAYED", "WON", "LOST", "WIN%", "TOTAL", "BEST")
			for _, d := range domain.Difficulties() {
				ds := stats[d.String()]
				best := "-"
				if b, ok := ds.BestTime(); ok {
					best = b.Round(time.Second).String()
				}
				fmt.Fprintf(out, "%-8s %7d %5d %5d %6.1f%% %8s %8s\n",
					d.String(), ds.Played, ds.Won, ds.Lost, ds.WinRate(),
					ds.TotalTime().Round(time.Second), best)
			}
			return nil
		},
	}
}
