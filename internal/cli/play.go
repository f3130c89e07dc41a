package cli

import (
	"github.com/spf13/cobra"

	"svw.info/sudokuterm/internal/tui"
)

func (a *app) playCmd() *cobra.Command {
	var boxWidth, boxHeight int
	var difficulty string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play Sudoku in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			geo, err := a.geometry(boxWidth, boxHeight)
			if err != nil {
				return err
			}
			if difficulty == "" {
				difficulty = a.cfg.Difficulty
			}
			a.log.WithField("geometry", geo.String()).Info("starting terminal ui")
			return tui.New(a.svc, a.log, geo, difficulty).Run(cmd.Context())
		},
	}
	cmd.Flags().IntVar(&boxWidth, "box-width", 0, "box width (default from config)")
	cmd.Flags().IntVar(&boxHeight, "box-height", 0, "box height (default from config)")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "EASY, MEDIUM or HARD")
	return cmd
}
