// ABOUTME: CLI command for copying data between storage backends.
// ABOUTME: Refuses to overwrite a non-empty destination unless --force is given.
package main

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/config"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/spf13/cobra"
)

var (
	migrateFrom   string
	migrateTo     string
	migrateForce  bool
	migrateDryRun bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy data between storage backends",
	Long: `Copy all fittrack data from one storage backend to another.

BACKENDS:

  badger   Badger key-value files under <data-dir>/kv (default)
  sqlite   A single SQLite file at <data-dir>/fittrack.db

USAGE:

  fittrack migrate --from badger --to sqlite --dry-run
  fittrack migrate --from badger --to sqlite

AFTER MIGRATION:

  Point fittrack at the new backend with --backend, FITTRACK_BACKEND,
  or "backend" in ~/.config/fittrack/config.json.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipSession: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, b := range []string{migrateFrom, migrateTo} {
			if b == "memory" || !slices.Contains(config.Backends, b) {
				return fmt.Errorf("unsupported backend for migration: %q (use badger or sqlite)", b)
			}
		}
		if migrateFrom == migrateTo {
			return fmt.Errorf("source and destination are both %s", migrateFrom)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		l, err := cfg.NewLogger()
		if err != nil {
			return err
		}

		dataDir := cfg.GetDataDir()
		dstPath := filepath.Join(dataDir, "kv")
		if migrateTo == "sqlite" {
			dstPath = filepath.Join(dataDir, "fittrack.db")
		}
		exists, err := storage.IsDirNonEmpty(dstPath)
		if err != nil {
			// A sqlite destination is a file, not a directory.
			exists = true
		}
		if exists && !migrateForce {
			return fmt.Errorf("destination %s already has data (use --force to overwrite)", dstPath)
		}

		if migrateDryRun {
			color.Yellow("Dry run mode - no changes will be made")
			fmt.Printf("  Would copy %s → %s\n", migrateFrom, migrateTo)
			fmt.Printf("  Destination: %s\n", dstPath)
			return nil
		}

		src, err := openBackend(cfg, migrateFrom)
		if err != nil {
			return err
		}
		defer func() { _ = src.Close() }()

		dst, err := openBackend(cfg, migrateTo)
		if err != nil {
			return err
		}
		defer func() { _ = dst.Close() }()

		summary, err := storage.MigrateData(src, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		l.Info("migration complete", "from", migrateFrom, "to", migrateTo, "copied", summary.Copied)

		color.Green("✓ Migrated %s → %s", migrateFrom, migrateTo)
		fmt.Printf("  %d copied, %d absent in source\n", summary.Copied, summary.Skipped)
		return nil
	},
}

// openBackend opens one backend under cfg's data directory.
func openBackend(cfg *config.Config, backend string) (storage.Store, error) {
	c := *cfg
	c.Backend = backend
	store, err := c.OpenStore(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", backend, err)
	}
	return store, nil
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFrom, "from", "badger", "source backend")
	migrateCmd.Flags().StringVar(&migrateTo, "to", "sqlite", "destination backend")
	migrateCmd.Flags().BoolVar(&migrateForce, "force", false, "overwrite data already in the destination")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	rootCmd.AddCommand(migrateCmd)
}
