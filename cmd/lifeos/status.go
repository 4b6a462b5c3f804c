package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current stats, stability, and buddy feedback",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := statusUC.Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%s — phase %s\n", resp.Name, resp.LastPhase)
		printStats(resp.Stats)
		printDerived(resp.Stability, resp.Rank, resp.Message)
		for _, tip := range resp.Tips {
			fmt.Printf("  tip: %s\n", tip)
		}
		if resp.Notes != "" {
			fmt.Printf("Notes: %s\n", resp.Notes)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
