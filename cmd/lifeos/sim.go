package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lifeos/internal/app/sim"
	"lifeos/internal/domain/life"
)

var simCmd = &cobra.Command{
	Use:   "sim <reset|rough_day|recovery>",
	Short: "Quick-sim controls: reset the profile or apply a preset day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := simUC.Execute(cmd.Context(), sim.Request{Scenario: args[0]})
		if err != nil {
			fmt.Printf("Scenarios: reset, %s\n", strings.Join(life.ScenarioIDs(), ", "))
			return err
		}

		fmt.Printf("Applied %s (%s)\n", resp.Scenario, formatEffects(resp.Effects))
		printDerived(resp.Stability, resp.Rank, resp.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(simCmd)
}
