package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	filerepo "lifeos/internal/adapter/repo/file"
	"lifeos/internal/app/action"
	"lifeos/internal/app/advance"
	"lifeos/internal/app/history"
	"lifeos/internal/app/notes"
	"lifeos/internal/app/sim"
	"lifeos/internal/app/status"
	"lifeos/internal/config"
	"lifeos/internal/domain/life"
)

var (
	cfgPath string
	cfg     config.CLI

	profiles  *filerepo.ProfileStore
	actionUC  action.UseCase
	advanceUC advance.UseCase
	statusUC  status.UseCase
	historyUC history.UseCase
	notesUC   notes.UseCase
	simUC     sim.UseCase
)

var rootCmd = &cobra.Command{
	Use:   "lifeos",
	Short: "A small life-simulation sandbox: stats, actions, gentle feedback",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := cfgPath
		if path == "" {
			home, err := os.UserHomeDir()
			if err == nil {
				path = filepath.Join(home, ".lifeos.yaml")
			}
		}
		loaded, err := config.LoadCLI(path)
		if err != nil {
			return err
		}
		cfg = loaded

		store := filerepo.NewProfileStore(cfg.DataFile).WithDefaultName(cfg.Name)
		tx := filerepo.TxManager{}
		profiles = store
		actionUC = action.UseCase{Tx: tx, Profiles: store}
		advanceUC = advance.UseCase{Tx: tx, Profiles: store}
		statusUC = status.UseCase{Profiles: store}
		historyUC = history.UseCase{Profiles: store}
		notesUC = notes.UseCase{Tx: tx, Profiles: store}
		simUC = sim.UseCase{Tx: tx, Profiles: store}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.lifeos.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printStats(stats life.Stats) {
	names := make([]string, 0, len(stats))
	for stat := range stats {
		names = append(names, string(stat))
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-8s %3d\n", name, stats[life.Stat(name)])
	}
}

func printDerived(stability int, rank life.Rank, message string) {
	fmt.Printf("Stability: %d/100 (%s)\n", stability, rank)
	fmt.Printf("Buddy: %s\n", message)
}

func formatEffects(effects map[life.Stat]int) string {
	if len(effects) == 0 {
		return "no change"
	}
	parts := make([]string, 0, len(effects))
	for stat, delta := range effects {
		parts = append(parts, fmt.Sprintf("%s%+d", stat, delta))
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
