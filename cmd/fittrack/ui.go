// ABOUTME: CLI command launching the interactive terminal app.
// ABOUTME: Logs go to a file while the full-screen interface owns the terminal.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/harperreed/fittrack/internal/tui"
	"github.com/spf13/cobra"
)

var uiLogFile string

var uiCmd = &cobra.Command{
	Use:     "ui",
	Aliases: []string{"app", "tui"},
	Short:   "Open the interactive terminal app",
	Long: `Open the interactive terminal app.

KEYS:

  1-5, tab       Switch views (dashboard, exercise, nutrition, progress, settings)
  a              Add an exercise or meal on its view
  w              Add water
  t              Toggle theme
  [ ]            Previous / next month on the progress view
  arrows, enter  Pick a calendar day or a setting
  q              Quit

Data is saved every 30 seconds and on exit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if uiLogFile != "" {
			f, err := os.OpenFile(uiLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			defer func() { _ = f.Close() }()
			logger.SetOutput(f)
		} else {
			logger.SetOutput(io.Discard)
		}

		stop, err := startAutosave()
		if err != nil {
			return err
		}
		defer stop()

		return tui.Run(sess)
	},
}

func init() {
	uiCmd.Flags().StringVar(&uiLogFile, "log-file", "", "write logs to this file")
	rootCmd.AddCommand(uiCmd)
}
