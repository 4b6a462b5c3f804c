package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lifeos/internal/app/action"
	"lifeos/internal/domain/life"
)

var doCmd = &cobra.Command{
	Use:   "do <action>",
	Short: "Perform an activity (Sleep, Eat, Exercise, Socialize, Study, Leisure)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		resp, err := actionUC.Execute(cmd.Context(), action.Request{Action: name})
		if err != nil {
			return err
		}

		if resp.Unknown {
			fmt.Printf("Unknown action: %s\n", name)
			if resp.Suggestion != "" {
				fmt.Printf("Did you mean %q?\n", resp.Suggestion)
			}
			fmt.Printf("Available: %s\n", strings.Join(life.ActionNames(), ", "))
			return nil
		}

		fmt.Printf("Performed %s (%s)\n", resp.Action, formatEffects(resp.Effects))
		printDerived(resp.Stability, resp.Rank, resp.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doCmd)
}
