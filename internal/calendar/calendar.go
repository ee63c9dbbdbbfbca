// ABOUTME: Calendar aggregator building month grids and per-day summaries.
// ABOUTME: Explicit day overrides always win over counts derived from the logs.
package calendar

import (
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

// DayHeaders are the grid column headers, Sunday first.
var DayHeaders = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Summary is what a calendar cell shows for one date.
type Summary struct {
	HasData   bool              `json:"has_data"`
	Status    models.TaskStatus `json:"status,omitempty"`
	TaskCount int               `json:"task_count"`
	Override  bool              `json:"override"`
}

// Cell is one slot of the month grid. Blank cells pad the first week.
type Cell struct {
	Blank bool   `json:"blank"`
	Day   int    `json:"day,omitempty"`
	Date  string `json:"date,omitempty"`
	Today bool   `json:"today"`
	Summary
}

// Grid is a rendered month.
type Grid struct {
	Year    int        `json:"year"`
	Month   time.Month `json:"month"`
	Title   string     `json:"title"`
	Headers [7]string  `json:"headers"`
	Cells   []Cell     `json:"cells"`
}

// Leading returns the number of blank cells before the 1st of the month.
func Leading(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// DaysIn returns the number of days in the month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Month builds the grid for year/month. today is an ISO date.
func Month(st *models.State, year int, month time.Month, today string) Grid {
	g := Grid{
		Year:    year,
		Month:   month,
		Title:   fmt.Sprintf("%s %d", month, year),
		Headers: DayHeaders,
	}

	lead := Leading(year, month)
	for i := 0; i < lead; i++ {
		g.Cells = append(g.Cells, Cell{Blank: true})
	}

	for day := 1; day <= DaysIn(year, month); day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(models.DateLayout)
		g.Cells = append(g.Cells, Cell{
			Day:     day,
			Date:    date,
			Today:   date == today,
			Summary: Summarize(st, date),
		})
	}
	return g
}

// Summarize computes the cell summary for an ISO date.
func Summarize(st *models.State, date string) Summary {
	if task, ok := st.CalendarTasks[date]; ok {
		return Summary{
			HasData:   true,
			Status:    task.Status,
			TaskCount: task.Exercises + task.Meals,
			Override:  true,
		}
	}

	count := len(st.ExercisesOn(date)) + len(st.MealsOn(date))
	if count == 0 {
		return Summary{}
	}
	return Summary{
		HasData:   true,
		Status:    models.StatusCompleted,
		TaskCount: count,
	}
}

// Details lists what was logged on a single date.
type Details struct {
	Date      string            `json:"date"`
	Title     string            `json:"title"`
	Exercises []models.Exercise `json:"exercises"`
	Meals     []models.Meal     `json:"meals"`
	Water     float64           `json:"water"`
	Summary   Summary           `json:"summary"`
}

// Day returns the details for an ISO date.
func Day(st *models.State, date string) (Details, error) {
	d, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return Details{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD): %w", date, err)
	}
	return Details{
		Date:      date,
		Title:     d.Format("Monday, January 2, 2006"),
		Exercises: st.ExercisesOn(date),
		Meals:     st.MealsOn(date),
		Water:     st.Water[date],
		Summary:   Summarize(st, date),
	}, nil
}

// Message renders details as the text of the day-detail prompt.
func (d Details) Message() string {
	msg := d.Title + "\n\n"
	if len(d.Exercises) > 0 {
		msg += fmt.Sprintf("Exercises (%d):\n", len(d.Exercises))
		for _, e := range d.Exercises {
			msg += fmt.Sprintf("• %s - %d min (%d cal)\n", e.Name, e.Duration, e.Calories)
		}
		msg += "\n"
	} else {
		msg += "No exercises logged\n\n"
	}
	if len(d.Meals) > 0 {
		msg += fmt.Sprintf("Meals (%d):\n", len(d.Meals))
		for _, m := range d.Meals {
			msg += fmt.Sprintf("• %s - %d cal (%s)\n", m.Name, m.Calories, m.Type)
		}
	} else {
		msg += "No meals logged"
	}
	return msg
}
