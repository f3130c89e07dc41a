package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) solveCmd() *cobra.Command {
	var boxWidth, boxHeight int
	var checkUnique bool

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a grid read from a file or stdin (-)",
		Long: "Reads a grid as whitespace-separated integers, one board row per\n" +
			"line, with 0 or . for empty cells, and prints the solved grid.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			geo, err := a.geometry(boxWidth, boxHeight)
			if err != nil {
				return err
			}
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			in, err := openGridInput(path)
			if err != nil {
				return err
			}
			defer in.Close()
			grid, err := parseGrid(in, geo)
			if err != nil {
				return err
			}

			solved, st, err := a.svc.Solve(cmd.Context(), grid, geo)
			if err != nil {
				return err
			}
			printGrid(cmd.OutOrStdout(), solved)
			a.log.WithFields(map[string]interface{}{
				"nodes": st.Nodes, "dur": st.Duration,
			}).Debug("solved")

			if checkUnique {
				unique, _, err := a.svc.Unique(cmd.Context(), grid, geo)
				if err != nil {
					return err
				}
				if unique {
					fmt.Fprintln(cmd.OutOrStdout(), "solution is unique")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "solution is NOT unique")
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&boxWidth, "box-width", 0, "box width (default from config)")
	cmd.Flags().IntVar(&boxHeight, "box-height", 0, "box height (default from config)")
	cmd.Flags().BoolVar(&checkUnique, "check-unique", false, "also report whether the solution is unique")
	return cmd
}
