// ABOUTME: CLI command printing the weekly progress chart.
// ABOUTME: Draws each series as horizontal bars scaled to its largest value.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/session"
	"github.com/harperreed/fittrack/internal/views"
	"github.com/spf13/cobra"
)

var chartCmd = &cobra.Command{
	Use:     "chart",
	Aliases: []string{"progress"},
	Short:   "Show this week's calories and workouts",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var chart views.Chart
		sess.Read(func(snap session.Snapshot) {
			chart = views.WeeklyChart(snap.State)
		})
		sess.Navigate(models.ViewProgress)
		printChart(chart)
		return nil
	},
}

func printChart(c views.Chart) {
	bold := color.New(color.Bold)
	for i, s := range c.Series {
		if i > 0 {
			fmt.Println()
		}
		_, _ = bold.Println(s.Label)

		top := 0
		for _, v := range s.Values {
			if v > top {
				top = v
			}
		}
		for j, v := range s.Values {
			fraction := 0.0
			if top > 0 {
				fraction = float64(v) / float64(top)
			}
			fmt.Printf("  %s %s %d\n", padRight(c.Labels[j], 4), bar(fraction, 30), v)
		}
	}
}

func init() {
	rootCmd.AddCommand(chartCmd)
}
