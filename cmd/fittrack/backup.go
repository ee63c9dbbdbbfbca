// ABOUTME: CLI command for writing the backup blob.
// ABOUTME: Reports how long ago the previous backup was taken.
package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up all data inside the store",
	Long: `Write a copy of all logs and stats to the backup slot of the store.

Only the most recent backup is kept. Use 'fittrack export json' for a
copy outside the store.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		prev, ok, err := sess.LastBackup()
		if err != nil {
			logger.Warn("previous backup unreadable", "err", err)
		}

		b, err := sess.Backup()
		if err != nil {
			return fmt.Errorf("backup failed: %w", err)
		}

		faint := color.New(color.Faint)
		fmt.Printf("  %s %d exercises, %d meals\n",
			faint.Sprint(b.ID[:8]), len(b.Exercises), len(b.Meals))
		if ok {
			_, _ = faint.Printf("  Replaced backup from %s\n", humanize.Time(prev.Timestamp))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
}
