// ABOUTME: CLI commands for exporting and importing fittrack data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/session"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportAuto   bool
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export fittrack data",
	Long: `Export fittrack data in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Markdown tables (for documentation/sharing)

OPTIONS:

  --output, -o   Write to file instead of stdout
  --file, -f     Write to fittrack-data-YYYY-MM-DD.<ext> in this directory

EXAMPLES:

  fittrack export json                      # Export all data as JSON
  fittrack export json -o backup.json       # Save to file
  fittrack export json -f                   # Save as fittrack-data-<today>.json
  fittrack export markdown                  # Export logs as Markdown`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: storage.ExportFormats,
	RunE: func(cmd *cobra.Command, args []string) error {
		toStdout := exportOutput == "" && !exportAuto
		if toStdout {
			sess.SetDisplay(session.NopDisplay{})
		}

		data, name, err := sess.Export(args[0])
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if toStdout {
			fmt.Println(string(data))
			return nil
		}

		path := exportOutput
		if path == "" {
			path = name
		}
		if err := os.WriteFile(path, data, 0600); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		_, _ = color.New(color.Faint).Printf("  %s\n", path)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import fittrack data from JSON",
	Long: `Import fittrack data from a JSON export file.

This replaces all exercises, meals, calendar entries, stats and settings
with the contents of the file.

EXAMPLES:

  fittrack import fittrack-data-2025-10-15.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		if err := sess.Import(data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().BoolVarP(&exportAuto, "file", "f", false, "write to the dated default file name")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
