// ABOUTME: Exercise and Meal log entries for fitness tracking.
// ABOUTME: Defines the closed MealType enum and the date/time label formats.
package models

import "time"

// DateLayout is the ISO calendar date format used for every stored date.
const DateLayout = "2006-01-02"

// MealTimeLayout formats the time label stamped on new meals.
const MealTimeLayout = "3:04 PM"

// DateKey returns the ISO date string for t in its own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// Exercise is a single logged workout.
type Exercise struct {
	ID       int64  `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Duration int    `json:"duration" yaml:"duration"`
	Calories int    `json:"calories" yaml:"calories"`
	Time     string `json:"time" yaml:"time"`
	Date     string `json:"date" yaml:"date"`
}

// MealType is the category a meal is logged under.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealSnacks    MealType = "snacks"
	MealDinner    MealType = "dinner"
)

// AllMealTypes lists meal types in display order.
var AllMealTypes = []MealType{MealBreakfast, MealLunch, MealSnacks, MealDinner}

// IsValidMealType checks if a string is a valid meal type.
func IsValidMealType(s string) bool {
	for _, mt := range AllMealTypes {
		if string(mt) == s {
			return true
		}
	}
	return false
}

// Meal is a single logged meal.
type Meal struct {
	ID       int64    `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Type     MealType `json:"type" yaml:"type"`
	Calories int      `json:"calories" yaml:"calories"`
	Time     string   `json:"time" yaml:"time"`
	Date     string   `json:"date" yaml:"date"`
}
