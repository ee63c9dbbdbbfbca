// ABOUTME: CLI command for wiping all logged data behind a confirmation.
// ABOUTME: Also hosts the shared y/N confirmation used by destructive commands.
package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/session"
	"github.com/spf13/cobra"
)

var resetSkipConfirm bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all exercises, meals and stats",
	Long: `Delete all exercises, meals, calendar entries and stats.

Settings are kept. This cannot be undone; run 'fittrack backup' or
'fittrack export json -o backup.json' first if you may want the data back.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return confirmPrompt(sess.RequestReset(), resetSkipConfirm)
	},
}

// confirmPrompt shows p on the terminal and confirms or dismisses it.
func confirmPrompt(p *session.Prompt, skip bool) error {
	_, _ = color.New(color.Bold).Println(p.Title)
	fmt.Println(p.Message)
	fmt.Println()

	if !skip {
		fmt.Print("Continue? [y/N] ")
		reader := bufio.NewReader(rootCmd.InOrStdin())
		response, err := reader.ReadString('\n')
		if err != nil && response == "" {
			sess.Dismiss(p)
			return fmt.Errorf("failed to read response: %w", err)
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			sess.Dismiss(p)
			fmt.Println("Canceled.")
			return nil
		}
	}

	return sess.Confirm(p)
}

func init() {
	resetCmd.Flags().BoolVarP(&resetSkipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}
