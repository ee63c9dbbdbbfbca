// ABOUTME: Root Cobra command for fittrack CLI.
// ABOUTME: Handles config, logger, store and session lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/config"
	"github.com/harperreed/fittrack/internal/session"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagBackend   string
	flagDataDir   string
	flagLogLevel  string
	flagEphemeral bool
)

var (
	appConfig *config.Config
	logger    *log.Logger
	sess      *session.Session
)

// Command annotations read by the root hooks.
const (
	skipSession = "skip-session"
	loadDotEnv  = "load-dotenv"
)

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "Personal fitness tracker",
	Long: `FitTrack is a personal fitness tracker for exercises, meals and water.

WHAT IT TRACKS:

  Exercises   name, duration (minutes), calories burned, time of day
  Meals       breakfast, lunch, snacks, dinner with calories
  Water       liters per day
  Progress    weekly calories and workouts, activity calendar, streaks

QUICK START:

  $ fittrack exercise add "Morning Run" --duration 30 --calories 300
  $ fittrack meal add "Oatmeal" --type breakfast --calories 350
  $ fittrack water add 0.5
  $ fittrack dashboard                  # Today's stats and goals
  $ fittrack calendar                   # This month's activity
  $ fittrack ui                         # Interactive terminal app

SETTINGS:

  $ fittrack settings show
  $ fittrack settings set calorieGoal 2200
  $ fittrack theme dark

SERVERS:

  $ fittrack serve                      # JSON API on :8080
  $ fittrack mcp                        # MCP server on stdio

DATA STORAGE:

  Data is stored under ~/.local/share/fittrack (XDG_DATA_HOME aware).
  The default backend is Badger; use --backend sqlite for a single
  fittrack.db file, or --ephemeral to keep everything in memory.
  Config lives at ~/.config/fittrack/config.json and FITTRACK_* env vars.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip session init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Annotations[skipSession] == "true" {
			return nil
		}
		if cmd.Annotations[loadDotEnv] == "true" {
			// A missing .env is fine
			_ = godotenv.Load()
		}
		return openSession()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeSession()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend (badger, sqlite, memory)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default ~/.local/share/fittrack)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagEphemeral, "ephemeral", false, "keep data in memory only")
}

// loadConfig reads the config file and env, then applies global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if flagBackend != "" {
		cfg.Backend = flagBackend
	}
	if flagEphemeral {
		cfg.Backend = "memory"
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	return cfg, nil
}

func openSession() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	l, err := cfg.NewLogger()
	if err != nil {
		return err
	}

	store, err := cfg.OpenStore(l)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.GetBackend(), err)
	}

	s, err := session.New(storage.NewPersister(store, l), session.Options{
		Display: cliDisplay{},
		Logger:  l,
	})
	if err != nil {
		_ = store.Close()
		return err
	}

	for _, key := range s.Recovered() {
		color.Yellow("! Stored %s was unreadable and has been reset (kept as %s.corrupt)", key, key)
	}

	appConfig, logger, sess = cfg, l, s
	return nil
}

func closeSession() error {
	if sess == nil {
		return nil
	}
	err := sess.Close()
	sess = nil
	return err
}
