// ABOUTME: Calendar day-summary overrides keyed by ISO date.
// ABOUTME: An override wins over values derived live from the logs.
package models

// TaskStatus classifies a calendar day.
type TaskStatus string

const (
	StatusNone      TaskStatus = ""
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
)

// DayTask is an explicitly stored day summary.
type DayTask struct {
	Exercises int        `json:"exercises" yaml:"exercises"`
	Meals     int        `json:"meals" yaml:"meals"`
	Water     float64    `json:"water" yaml:"water"`
	Status    TaskStatus `json:"status" yaml:"status"`
}

// CalendarTasks maps ISO dates to overrides. Sparse.
type CalendarTasks map[string]DayTask
