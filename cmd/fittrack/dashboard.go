// ABOUTME: CLI command showing today's stats and goal progress.
// ABOUTME: Mirrors the dashboard view of the interactive app.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/session"
	"github.com/harperreed/fittrack/internal/views"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"d", "status"},
	Short:   "Show today's stats and goals",
	Long: `Show today's stats and goal progress.

Calories, workout time and water cover today only and start again at 0
after midnight. Weekly workouts count the current Monday-start week.`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var d views.Dashboard
		sess.Read(func(snap session.Snapshot) {
			d = views.StatsSummary(snap.State, snap.Now)
		})
		printDashboard(d)
		return nil
	},
}

func printDashboard(d views.Dashboard) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	_, _ = bold.Println(d.Greeting)
	_, _ = faint.Println(d.Date)
	fmt.Println()

	s := d.Stats
	fmt.Printf("  %s %d\n", padRight("Calories burned", 18), s.CaloriesBurned)
	fmt.Printf("  %s %d / %d  %s\n", padRight("Calories eaten", 18), s.CaloriesConsumed, d.CalorieGoal, bar(d.CalorieProgress, 20))
	fmt.Printf("  %s %d min\n", padRight("Workout time", 18), s.WorkoutTime)
	fmt.Printf("  %s %g / %g L  %s\n", padRight("Water", 18), s.WaterIntake, d.WaterGoal, bar(d.WaterProgress, 20))
	fmt.Printf("  %s %d / %d  %s\n", padRight("Weekly workouts", 18), s.WeeklyWorkouts, d.WorkoutGoal, bar(d.WorkoutProgress, 20))
	fmt.Printf("  %s %d days\n", padRight("Streak", 18), s.StreakDays)
	fmt.Printf("  %s %+.1f kg\n", padRight("Weight change", 18), s.WeightChange)
	fmt.Println()

	_, _ = bold.Println("Today's Tasks")
	fmt.Printf("  %d exercises, %d meals, %s water\n", d.Tasks.Exercises, d.Tasks.Meals, d.Tasks.Water)
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
