// ABOUTME: CLI commands for logging and listing meals.
// ABOUTME: Lists are grouped by meal type in breakfast, lunch, snacks, dinner order.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/session"
	"github.com/harperreed/fittrack/internal/tracker"
	"github.com/harperreed/fittrack/internal/views"
	"github.com/spf13/cobra"
)

var (
	mealType     string
	mealCalories int
)

var mealCmd = &cobra.Command{
	Use:     "meal",
	Aliases: []string{"m"},
	Short:   "Log and list meals",
}

var mealAddCmd = &cobra.Command{
	Use:     "add <name>",
	Aliases: []string{"a"},
	Short:   "Log a meal for today",
	Long: `Log a meal for today, stamped with the current time.

MEAL TYPES:

  breakfast, lunch, snacks, dinner

Examples:
  fittrack meal add Oatmeal --type breakfast --calories 350
  fittrack meal add "Chicken Salad" -t lunch -c 420`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := sess.AddMeal(tracker.MealInput{
			Name:     args[0],
			Type:     mealType,
			Calories: mealCalories,
		})
		if err != nil {
			return fmt.Errorf("failed to add meal: %w", err)
		}

		fmt.Printf("  %s %s %s %d cal at %s\n",
			color.New(color.Faint).Sprintf("#%d", m.ID),
			padRight(string(m.Type), 10), m.Name, m.Calories, m.Time)
		return nil
	},
}

var mealListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "today"},
	Short:   "List today's meals by type",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var groups []views.MealGroup
		sess.Read(func(snap session.Snapshot) {
			groups = views.TodayMeals(snap.State, snap.Today)
		})
		printGroups(groups)
		return nil
	},
}

var mealHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List every meal by type, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var groups []views.MealGroup
		sess.Read(func(snap session.Snapshot) {
			groups = views.NutritionHistory(snap.State)
		})
		printGroups(groups)
		return nil
	},
}

func printGroups(groups []views.MealGroup) {
	for i, g := range groups {
		if i > 0 {
			fmt.Println()
		}
		printList(g.List)
	}
}

func init() {
	mealAddCmd.Flags().StringVarP(&mealType, "type", "t", string(models.MealBreakfast), "meal type (breakfast, lunch, snacks, dinner)")
	mealAddCmd.Flags().IntVarP(&mealCalories, "calories", "c", 0, "calories consumed")

	mealCmd.AddCommand(mealAddCmd)
	mealCmd.AddCommand(mealListCmd)
	mealCmd.AddCommand(mealHistoryCmd)
	rootCmd.AddCommand(mealCmd)
}
