// ABOUTME: CLI command for starting the HTTP JSON API.
// ABOUTME: Loads .env, autosaves while running, and shuts down on SIGINT/SIGTERM.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/harperreed/fittrack/internal/api"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP JSON API",
	Long: `Start the HTTP JSON API for browser or script front ends.

The address comes from --addr, then PORT, then FITTRACK_LISTEN_ADDR or
the config file, defaulting to :8080. A .env file in the working
directory is loaded first.

ENDPOINTS:

  GET  /api/dashboard                  Stats and goal progress
  GET  /api/exercises, /api/meals      Today's lists (?scope=history for all)
  POST /api/exercises, /api/meals      Log an entry
  POST /api/water                      Add water
  GET  /api/calendar/{year}/{month}    Month grid
  GET  /api/days/{date}                Day details
  GET  /api/chart/weekly               Weekly series
  GET  /api/settings                   Settings form
  PUT  /api/settings/{key}             Change one setting
  POST /api/reset                      Reset (requires {"confirm": true})
  POST /api/backup, GET /api/export?format=json, POST /api/import`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{loadDotEnv: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		sess.SetDisplay(logDisplay{log: logger})

		stop, err := startAutosave()
		if err != nil {
			return err
		}
		defer stop()

		addr := serveAddr
		if addr == "" {
			addr = appConfig.GetListenAddr()
		}

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		return api.NewServer(sess, logger).ListenAndServe(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default :8080)")
	rootCmd.AddCommand(serveCmd)
}
