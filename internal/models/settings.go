// ABOUTME: User settings record with defaults and per-key updates.
// ABOUTME: Decoding ignores unknown keys and keeps defaults for missing or bad ones.
package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownSetting is returned when a settings key is not recognized.
var ErrUnknownSetting = errors.New("unknown setting")

// Theme names.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// AllThemes lists the supported themes.
var AllThemes = []string{ThemeLight, ThemeDark}

// Settings holds the user profile and preferences.
type Settings struct {
	Theme            string  `json:"theme" yaml:"theme"`
	CalorieGoal      int     `json:"calorieGoal" yaml:"calorie_goal"`
	WaterGoal        float64 `json:"waterGoal" yaml:"water_goal"`
	WorkoutGoal      int     `json:"workoutGoal" yaml:"workout_goal"`
	WorkoutReminders bool    `json:"workoutReminders" yaml:"workout_reminders"`
	MealReminders    bool    `json:"mealReminders" yaml:"meal_reminders"`
	WaterReminders   bool    `json:"waterReminders" yaml:"water_reminders"`
	ProgressUpdates  bool    `json:"progressUpdates" yaml:"progress_updates"`
	UserName         string  `json:"userName" yaml:"user_name"`
	UserHeight       float64 `json:"userHeight" yaml:"user_height"`
	UserWeight       float64 `json:"userWeight" yaml:"user_weight"`
	UserAge          int     `json:"userAge" yaml:"user_age"`
}

// SettingKeys lists every recognized key in form order.
var SettingKeys = []string{
	"theme",
	"calorieGoal", "waterGoal", "workoutGoal",
	"workoutReminders", "mealReminders", "waterReminders", "progressUpdates",
	"userName", "userHeight", "userWeight", "userAge",
}

// DefaultSettings returns the factory settings.
func DefaultSettings() Settings {
	return Settings{
		Theme:            ThemeLight,
		CalorieGoal:      2000,
		WaterGoal:        2.5,
		WorkoutGoal:      5,
		WorkoutReminders: true,
		MealReminders:    true,
		WaterReminders:   true,
		ProgressUpdates:  true,
		UserName:         "Alex Johnson",
		UserHeight:       165,
		UserWeight:       62.5,
		UserAge:          28,
	}
}

// IsToggle reports whether key holds a boolean reminder toggle.
func IsToggle(key string) bool {
	switch key {
	case "workoutReminders", "mealReminders", "waterReminders", "progressUpdates":
		return true
	}
	return false
}

// IsValidTheme checks if a theme name is supported.
func IsValidTheme(name string) bool {
	for _, t := range AllThemes {
		if t == name {
			return true
		}
	}
	return false
}

// Set overwrites a single setting from its text form.
func (s *Settings) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "theme":
		if !IsValidTheme(value) {
			return fmt.Errorf("unknown theme: %q", value)
		}
		s.Theme = value
	case "calorieGoal":
		return setInt(&s.CalorieGoal, key, value)
	case "waterGoal":
		return setFloat(&s.WaterGoal, key, value)
	case "workoutGoal":
		return setInt(&s.WorkoutGoal, key, value)
	case "workoutReminders":
		return setBool(&s.WorkoutReminders, key, value)
	case "mealReminders":
		return setBool(&s.MealReminders, key, value)
	case "waterReminders":
		return setBool(&s.WaterReminders, key, value)
	case "progressUpdates":
		return setBool(&s.ProgressUpdates, key, value)
	case "userName":
		s.UserName = value
	case "userHeight":
		return setFloat(&s.UserHeight, key, value)
	case "userWeight":
		return setFloat(&s.UserWeight, key, value)
	case "userAge":
		return setInt(&s.UserAge, key, value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSetting, key)
	}
	return nil
}

// Get returns the text form of a single setting.
func (s *Settings) Get(key string) (string, error) {
	switch key {
	case "theme":
		return s.Theme, nil
	case "calorieGoal":
		return strconv.Itoa(s.CalorieGoal), nil
	case "waterGoal":
		return formatFloat(s.WaterGoal), nil
	case "workoutGoal":
		return strconv.Itoa(s.WorkoutGoal), nil
	case "workoutReminders":
		return strconv.FormatBool(s.WorkoutReminders), nil
	case "mealReminders":
		return strconv.FormatBool(s.MealReminders), nil
	case "waterReminders":
		return strconv.FormatBool(s.WaterReminders), nil
	case "progressUpdates":
		return strconv.FormatBool(s.ProgressUpdates), nil
	case "userName":
		return s.UserName, nil
	case "userHeight":
		return formatFloat(s.UserHeight), nil
	case "userWeight":
		return formatFloat(s.UserWeight), nil
	case "userAge":
		return strconv.Itoa(s.UserAge), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownSetting, key)
}

// DecodeSettings layers a persisted settings blob over the defaults.
// Values may be JSON numbers, booleans or the strings a form submits.
func DecodeSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return s, err
	}
	for _, key := range SettingKeys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		var text string
		switch tv := v.(type) {
		case string:
			text = tv
		case float64:
			text = formatFloat(tv)
		case bool:
			text = strconv.FormatBool(tv)
		default:
			continue
		}
		// A bad value keeps that key's default.
		_ = s.Set(key, text)
	}
	return s, nil
}

func setInt(dst *int, key, value string) error {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %q", key, value)
	}
	*dst = int(f)
	return nil
}

func setFloat(dst *float64, key, value string) error {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %q", key, value)
	}
	*dst = f
	return nil
}

func setBool(dst *bool, key, value string) error {
	switch strings.ToLower(value) {
	case "true", "on", "yes", "1":
		*dst = true
	case "false", "off", "no", "0":
		*dst = false
	default:
		return fmt.Errorf("invalid value for %s: %q (use true or false)", key, value)
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
