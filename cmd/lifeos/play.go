package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"lifeos/internal/app/action"
	"lifeos/internal/domain/life"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive prompt loop: dialogue and *action* inputs",
	Long: `Start an interactive session. Wrap an action name in asterisks to
perform it (*sleep*, *eat*, ...); anything else counts as dialogue and
nudges Social. Type quit to exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flavor := rand.New(rand.NewSource(time.Now().UnixNano()))

		fmt.Println("Welcome to Life OS!")
		fmt.Println("Type dialogue or actions (use *action* for actions). Type 'quit' to exit.")
		fmt.Println()

		scanner := bufio.NewScanner(os.Stdin)
		for {
			if err := showRound(cmd); err != nil {
				return err
			}
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			input := strings.TrimSpace(scanner.Text())
			switch {
			case input == "":
				continue
			case strings.EqualFold(input, "quit"), strings.EqualFold(input, "exit"):
				fmt.Println("Goodbye!")
				return nil
			case strings.HasPrefix(input, "*") && strings.HasSuffix(input, "*") && len(input) > 2:
				name := strings.TrimSpace(strings.Trim(input, "*"))
				if err := performAction(cmd, name, flavor); err != nil {
					return err
				}
			default:
				if err := speak(cmd, input, flavor); err != nil {
					return err
				}
			}
			fmt.Println()
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func showRound(cmd *cobra.Command) error {
	resp, err := statusUC.Execute(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Println("--- Current Stats ---")
	printStats(resp.Stats)
	printDerived(resp.Stability, resp.Rank, resp.Message)
	return nil
}

func performAction(cmd *cobra.Command, name string, flavor life.Rand) error {
	resp, err := actionUC.Execute(cmd.Context(), action.Request{Action: name})
	if err != nil {
		return err
	}
	if resp.Unknown {
		fmt.Printf("Unknown action: %s\n", name)
		if resp.Suggestion != "" {
			fmt.Printf("Did you mean *%s*?\n", strings.ToLower(resp.Suggestion))
		}
		return nil
	}
	fmt.Printf("Action performed: %s (%s)\n", resp.Action, formatEffects(resp.Effects))
	fmt.Println(life.ActionFlavor(flavor))
	return nil
}

// speak treats free-form input as dialogue: a small Social nudge plus a
// flavor line, never recorded in history.
func speak(cmd *cobra.Command, input string, flavor life.Rand) error {
	profile, err := profiles.Load(cmd.Context())
	if err != nil {
		return err
	}
	profile.Stats = life.ApplyEffects(profile.Stats, map[life.Stat]int{life.StatSocial: life.DialogueSocialNudge})
	profile.LastTime = time.Now().UTC()
	if err := profiles.Save(cmd.Context(), profile); err != nil {
		return err
	}
	fmt.Printf("You said: %q\n", input)
	fmt.Println(life.DialogueFlavor(flavor))
	return nil
}
