// ABOUTME: Aggregate statistics and the Monday-first weekly series.
// ABOUTME: Both are projections refreshed from the logs by State.Recompute.
package models

import "time"

// Stats is the dashboard aggregate.
type Stats struct {
	CaloriesBurned   int     `json:"caloriesBurned" yaml:"calories_burned"`
	CaloriesConsumed int     `json:"caloriesConsumed" yaml:"calories_consumed"`
	WorkoutTime      int     `json:"workoutTime" yaml:"workout_time"`
	WaterIntake      float64 `json:"waterIntake" yaml:"water_intake"`
	WeeklyWorkouts   int     `json:"weeklyWorkouts" yaml:"weekly_workouts"`
	StreakDays       int     `json:"streakDays" yaml:"streak_days"`
	WeightChange     float64 `json:"weightChange" yaml:"weight_change"`
}

// WeekdayLabels are the weekly series labels, Monday first.
var WeekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeeklyData pairs each weekday label with calories burned and workout count.
type WeeklyData struct {
	Labels   [7]string `json:"labels" yaml:"labels"`
	Calories [7]int    `json:"calories" yaml:"calories"`
	Workouts [7]int    `json:"workouts" yaml:"workouts"`
}

// NewWeeklyData returns a zeroed weekly series.
func NewWeeklyData() WeeklyData {
	return WeeklyData{Labels: WeekdayLabels}
}

// WeekdaySlot maps t to its index in the weekly series (Mon = 0, Sun = 6).
func WeekdaySlot(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// WeekStart returns midnight of the Monday that starts t's week.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -WeekdaySlot(t))
}
