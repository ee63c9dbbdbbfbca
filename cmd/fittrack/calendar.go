// ABOUTME: CLI commands for the activity calendar and day details.
// ABOUTME: Prints the month grid with per-day task counts and status marks.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/calendar"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/session"
	"github.com/harperreed/fittrack/internal/views"
	"github.com/spf13/cobra"
)

var (
	calendarPrev bool
	calendarNext bool
)

var calendarCmd = &cobra.Command{
	Use:     "calendar [YYYY-MM]",
	Aliases: []string{"cal"},
	Short:   "Show the activity calendar for a month",
	Long: `Show the activity calendar for a month.

Days with logged activity show their task count. Completed days are
green, pending days yellow, and today is underlined.

Examples:
  fittrack calendar            # This month
  fittrack calendar 2025-09    # September 2025
  fittrack calendar --prev     # Last month`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			year, month, err := parseMonth(args[0])
			if err != nil {
				return err
			}
			if err := sess.SetMonth(year, month); err != nil {
				return err
			}
		}
		if calendarPrev {
			sess.PrevMonth()
		}
		if calendarNext {
			sess.NextMonth()
		}

		var grid calendar.Grid
		sess.Read(func(snap session.Snapshot) {
			grid = views.Calendar(snap.State, snap.Nav, snap.Today)
		})
		printGrid(grid)
		return nil
	},
}

var dayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "Show what was logged on a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := sess.DayDetails(args[0])
		if err != nil {
			return err
		}
		defer sess.Dismiss(sess.ActivePrompt())

		fmt.Print(d.Message())
		return nil
	},
}

func printGrid(g calendar.Grid) {
	_, _ = color.New(color.Bold).Println(g.Title)
	fmt.Println(strings.Join(g.Headers[:], " "))

	completed := color.New(color.FgGreen)
	pending := color.New(color.FgYellow)

	for i, c := range g.Cells {
		cell := "   "
		if !c.Blank {
			label := fmt.Sprintf("%3d", c.Day)
			switch c.Status {
			case models.StatusCompleted:
				label = completed.Sprint(label)
			case models.StatusPending:
				label = pending.Sprint(label)
			}
			if c.Today {
				label = color.New(color.Underline).Sprint(label)
			}
			cell = label
		}
		fmt.Print(cell)
		if i%7 == 6 {
			fmt.Println()
		} else {
			fmt.Print(" ")
		}
	}
	if len(g.Cells)%7 != 0 {
		fmt.Println()
	}

	var active []string
	for _, c := range g.Cells {
		if !c.Blank && c.HasData {
			active = append(active, fmt.Sprintf("%d (%d)", c.Day, c.TaskCount))
		}
	}
	if len(active) > 0 {
		fmt.Println()
		_, _ = color.New(color.Faint).Printf("Active days: %s\n", strings.Join(active, ", "))
	}
}

func init() {
	calendarCmd.Flags().BoolVar(&calendarPrev, "prev", false, "show the month before")
	calendarCmd.Flags().BoolVar(&calendarNext, "next", false, "show the month after")

	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(dayCmd)
}
