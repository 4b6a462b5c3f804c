package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lifeos/internal/app/notes"
)

var notesCmd = &cobra.Command{
	Use:   "notes [text]",
	Short: "Save short notes on the profile (empty clears them)",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := notesUC.Execute(cmd.Context(), notes.Request{Notes: strings.Join(args, " ")})
		if err != nil {
			return err
		}
		if resp.Notes == "" {
			fmt.Println("Notes cleared.")
			return nil
		}
		fmt.Println("Notes saved.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(notesCmd)
}
