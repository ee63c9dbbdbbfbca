// ABOUTME: CLI command for logging water intake.
// ABOUTME: Adds liters to today's total and shows progress against the goal.
package main

import (
	"fmt"
	"strconv"

	"github.com/harperreed/fittrack/internal/session"
	"github.com/spf13/cobra"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Log water intake",
}

var waterAddCmd = &cobra.Command{
	Use:   "add <liters>",
	Short: "Add water to today's total",
	Long: `Add water to today's total.

Examples:
  fittrack water add 0.5
  fittrack water add 0.25`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		liters, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid amount: %s", args[0])
		}

		total, err := sess.AddWater(liters)
		if err != nil {
			return fmt.Errorf("failed to add water: %w", err)
		}

		var goal float64
		sess.Read(func(snap session.Snapshot) {
			goal = snap.State.Settings.WaterGoal
		})
		fmt.Printf("  Today: %g L of %g L\n", total, goal)
		return nil
	},
}

func init() {
	waterCmd.AddCommand(waterAddCmd)
	rootCmd.AddCommand(waterCmd)
}
