package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lifeos/internal/app/advance"
)

var advanceCmd = &cobra.Command{
	Use:   "advance [phase]",
	Short: "Advance the day cycle, applying passive stat drift",
	Long: `Advance into a day phase (Morning, Day, Evening, Night), applying the
phase's passive drift to Hunger, Energy, and Stress. With no argument the
cycle moves to the next phase.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var phase string
		if len(args) == 1 {
			phase = args[0]
		}
		resp, err := advanceUC.Execute(cmd.Context(), advance.Request{Phase: phase})
		if err != nil {
			return err
		}

		fmt.Printf("Advanced to %s (%s)\n", resp.Phase, formatEffects(resp.Drift))
		printDerived(resp.Stability, resp.Rank, resp.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(advanceCmd)
}
