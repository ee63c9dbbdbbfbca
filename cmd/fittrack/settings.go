// ABOUTME: CLI commands for viewing and changing settings and the theme.
// ABOUTME: Every change is saved immediately.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/session"
	"github.com/harperreed/fittrack/internal/views"
	"github.com/spf13/cobra"
)

var settingsSkipConfirm bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View and change settings",
	Long: `View and change settings.

KEYS:

  theme                                  light or dark
  calorieGoal, waterGoal, workoutGoal    daily and weekly goals
  workoutReminders, mealReminders,
  waterReminders, progressUpdates        true or false
  userName, userHeight, userWeight, userAge`,
}

var settingsShowCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"ls"},
	Short:   "Show all settings",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var fields []views.Field
		sess.Read(func(snap session.Snapshot) {
			fields = views.SettingsForm(snap.State)
		})

		faint := color.New(color.Faint)
		for _, f := range fields {
			fmt.Printf("  %s %s %s\n",
				padRight(f.Label, 22),
				padRight(f.Value, 16),
				faint.Sprint(f.Key))
		}
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting and save.

Examples:
  fittrack settings set calorieGoal 2200
  fittrack settings set mealReminders false
  fittrack settings set userName "Sam Rivera"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sess.ChangeSetting(args[0], args[1]); err != nil {
			return fmt.Errorf("failed to change setting: %w\nValid keys: %s", err, strings.Join(models.SettingKeys, ", "))
		}
		return sess.SaveSettings()
	},
}

var settingsRestoreCmd = &cobra.Command{
	Use:   "restore-defaults",
	Short: "Restore the default settings",
	Long: `Restore every setting to its default value.

Exercises, meals and stats are not touched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return confirmPrompt(sess.RequestRestoreDefaults(), settingsSkipConfirm)
	},
}

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark]",
	Short:     "Show, set or toggle the theme",
	Long:      "Show the theme, set it by name, or toggle it with --toggle.",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: models.AllThemes,
	RunE: func(cmd *cobra.Command, args []string) error {
		toggle, _ := cmd.Flags().GetBool("toggle")
		switch {
		case toggle:
			theme, err := sess.ToggleTheme()
			if err != nil {
				return err
			}
			fmt.Printf("  Theme: %s\n", theme)
		case len(args) == 1:
			if err := sess.SetTheme(args[0]); err != nil {
				return err
			}
			fmt.Printf("  Theme: %s\n", args[0])
		default:
			sess.Read(func(snap session.Snapshot) {
				fmt.Println(snap.State.Settings.Theme)
			})
		}
		return nil
	},
}

func init() {
	settingsRestoreCmd.Flags().BoolVarP(&settingsSkipConfirm, "yes", "y", false, "Skip confirmation prompt")
	themeCmd.Flags().Bool("toggle", false, "switch between light and dark")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsRestoreCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(themeCmd)
}
