// ABOUTME: Navigation state: the active view and the calendar month cursor.
// ABOUTME: Ephemeral; never persisted.
package models

import (
	"fmt"
	"time"
)

// View is one of the five top-level screens.
type View string

const (
	ViewDashboard View = "dashboard"
	ViewExercise  View = "exercise"
	ViewNutrition View = "nutrition"
	ViewProgress  View = "progress"
	ViewSettings  View = "settings"
)

// AllViews lists views in navigation order.
var AllViews = []View{ViewDashboard, ViewExercise, ViewNutrition, ViewProgress, ViewSettings}

// ParseView validates a view name.
func ParseView(s string) (View, error) {
	for _, v := range AllViews {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown view: %s", s)
}

// Navigation holds the current view and calendar cursor.
type Navigation struct {
	View  View
	Year  int
	Month time.Month
}

// NewNavigation starts on the dashboard with the cursor on now's month.
func NewNavigation(now time.Time) Navigation {
	return Navigation{View: ViewDashboard, Year: now.Year(), Month: now.Month()}
}

// NextMonth advances the cursor, rolling into the next year after December.
func (n *Navigation) NextMonth() {
	n.Month++
	if n.Month > time.December {
		n.Month = time.January
		n.Year++
	}
}

// PrevMonth moves the cursor back, rolling into the previous year before January.
func (n *Navigation) PrevMonth() {
	n.Month--
	if n.Month < time.January {
		n.Month = time.December
		n.Year--
	}
}
