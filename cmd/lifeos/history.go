package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lifeos/internal/app/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := historyUC.Execute(cmd.Context(), history.Request{Limit: historyLimit})
		if err != nil {
			return err
		}

		if len(resp.Entries) == 0 {
			fmt.Println("No actions yet. Try `lifeos do Eat` to see changes and history.")
			return nil
		}
		for _, entry := range resp.Entries {
			fmt.Printf("%s  %-10s %-22s %s\n",
				entry.Time.Format("2006-01-02 15:04:05"),
				entry.Phase,
				entry.Action,
				formatEffects(entry.Effects))
		}
		fmt.Printf("(%d of %d entries)\n", len(resp.Entries), resp.Total)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "entries to show (default 12)")
	rootCmd.AddCommand(historyCmd)
}
