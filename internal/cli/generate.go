package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudokuterm/internal/domain"
	"svw.info/sudokuterm/internal/generator"
)

func (a *app) generateCmd() *cobra.Command {
	var boxWidth, boxHeight int
	var difficulty string
	var seed int64
	var unique bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle and print it to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			geo, err := a.geometry(boxWidth, boxHeight)
			if err != nil {
				return err
			}
			if difficulty == "" {
				difficulty = a.cfg.Difficulty
			}
			diff, err := domain.ParseDifficulty(strings.ToUpper(strings.TrimSpace(difficulty)))
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			gen := a.svc.Generator
			if unique {
				gen = generator.NewUnique(a.svc.Solver)
			}
			puzzle, st, err := gen.Generate(cmd.Context(), seed, geo, diff)
			if err != nil {
				return err
			}
			a.log.WithFields(map[string]interface{}{
				"seed": seed, "nodes": st.Nodes, "dur": st.Duration,
			}).Debug("generated")
			printGrid(cmd.OutOrStdout(), puzzle)
			return nil
		},
	}
	cmd.Flags().IntVar(&boxWidth, "box-width", 0, "box width (default from config)")
	cmd.Flags().IntVar(&boxHeight, "box-height", 0, "box height (default from config)")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "EASY, MEDIUM or HARD")
	cmd.Flags().Int64Var(&seed, "seed", 0, "rng seed (0 = current time)")
	cmd.Flags().BoolVar(&unique, "unique", false, "keep the puzzle uniquely solvable while carving")
	return cmd
}
