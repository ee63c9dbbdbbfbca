// ABOUTME: CLI commands for logging and listing exercises.
// ABOUTME: Provides add, list (today) and history subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/session"
	"github.com/harperreed/fittrack/internal/tracker"
	"github.com/harperreed/fittrack/internal/views"
	"github.com/spf13/cobra"
)

var (
	exerciseDuration int
	exerciseCalories int
	exerciseTime     string
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Log and list exercises",
	Long: `Log and list exercises.

Each exercise adds to today's calories burned, workout time and weekly
workout count, and marks today as completed on the calendar.`,
}

var exerciseAddCmd = &cobra.Command{
	Use:     "add <name>",
	Aliases: []string{"a"},
	Short:   "Log an exercise for today",
	Long: `Log an exercise for today.

Examples:
  fittrack exercise add "Morning Run" --duration 30 --calories 300
  fittrack exercise add Yoga -d 45 -c 180 --time 6:30PM`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, err := sess.AddExercise(tracker.ExerciseInput{
			Name:     args[0],
			Duration: exerciseDuration,
			Calories: exerciseCalories,
			Time:     exerciseTime,
		})
		if err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}

		at := ""
		if ex.Time != "" {
			at = " at " + ex.Time
		}
		fmt.Printf("  %s %s %d min, %d cal%s\n",
			color.New(color.Faint).Sprintf("#%d", ex.ID),
			ex.Name, ex.Duration, ex.Calories, at)
		return nil
	},
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "today"},
	Short:   "List today's exercises",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var list views.List
		sess.Read(func(snap session.Snapshot) {
			list = views.TodayExercises(snap.State, snap.Today)
		})
		printList(list)
		return nil
	},
}

var exerciseHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List every exercise, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var list views.List
		sess.Read(func(snap session.Snapshot) {
			list = views.ExerciseHistory(snap.State)
		})
		printList(list)
		return nil
	},
}

func init() {
	exerciseAddCmd.Flags().IntVarP(&exerciseDuration, "duration", "d", 0, "duration in minutes")
	exerciseAddCmd.Flags().IntVarP(&exerciseCalories, "calories", "c", 0, "calories burned")
	exerciseAddCmd.Flags().StringVar(&exerciseTime, "time", "", "time of day label, e.g. \"6:30 PM\" (left blank if omitted)")

	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseHistoryCmd)
	rootCmd.AddCommand(exerciseCmd)
}
