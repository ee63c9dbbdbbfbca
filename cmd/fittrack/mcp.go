// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/fittrack/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your fitness data through
a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "fittrack": {
        "command": "fittrack",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  add_exercise              Log an exercise for today
  add_meal                  Log a meal for today
  add_water                 Add water to today's total
  list_exercises            Today's exercises or full history
  list_meals                Today's meals or full history by type
  get_stats                 Dashboard stats and goal progress
  get_calendar              Month grid with per-day summaries
  get_day                   What was logged on one date
  change_setting            Change one setting
  restore_default_settings  Restore factory settings
  reset_all_data            Delete all logs (requires confirm)
  backup                    Write the backup blob

AVAILABLE RESOURCES:

  fittrack://dashboard      Stats and goal progress
  fittrack://today          Today's exercises and meals
  fittrack://settings       Current settings`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess.SetDisplay(logDisplay{log: logger})

		server, err := mcp.NewServer(sess, logger)
		if err != nil {
			return err
		}

		stop, err := startAutosave()
		if err != nil {
			return err
		}
		defer stop()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
