// ABOUTME: Pure projections from State into render-ready view-models.
// ABOUTME: Lists over zero records carry an Empty placeholder instead of items.
package views

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/harperreed/fittrack/internal/calendar"
	"github.com/harperreed/fittrack/internal/models"
)

// Empty is the placeholder shown for a list with nothing in it.
type Empty struct {
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
}

// Item is one row of a list.
type Item struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Value  string `json:"value"`
}

// List is a titled list. Exactly one of Items or Empty is set.
type List struct {
	Title string `json:"title"`
	Items []Item `json:"items,omitempty"`
	Empty *Empty `json:"empty,omitempty"`
}

// IsEmpty reports whether the list renders its placeholder.
func (l List) IsEmpty() bool {
	return l.Empty != nil
}

// MealGroup is one meal category with its list.
type MealGroup struct {
	Type models.MealType `json:"type"`
	List List            `json:"list"`
}

// TodayExercises lists today's exercises in log order.
func TodayExercises(st *models.State, today string) List {
	l := List{Title: "Today's Exercises"}
	for _, e := range st.ExercisesOn(today) {
		l.Items = append(l.Items, exerciseItem(e, false))
	}
	if len(l.Items) == 0 {
		l.Empty = &Empty{Message: "No exercises logged today", Action: "Add Your First Exercise"}
	}
	return l
}

// ExerciseHistory lists every exercise, newest date first.
func ExerciseHistory(st *models.State) List {
	l := List{Title: "Exercise History"}
	sorted := append([]models.Exercise(nil), st.Exercises...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	for _, e := range sorted {
		l.Items = append(l.Items, exerciseItem(e, true))
	}
	if len(l.Items) == 0 {
		l.Empty = &Empty{Message: "No exercise history"}
	}
	return l
}

// TodayMeals groups today's meals by category.
func TodayMeals(st *models.State, today string) []MealGroup {
	todays := st.MealsOn(today)
	groups := make([]MealGroup, 0, len(models.AllMealTypes))
	for _, mt := range models.AllMealTypes {
		l := List{Title: titleCase(string(mt))}
		for _, m := range todays {
			if m.Type == mt {
				l.Items = append(l.Items, mealItem(m, false))
			}
		}
		if len(l.Items) == 0 {
			l.Empty = &Empty{Message: fmt.Sprintf("No %s logged", mt)}
		}
		groups = append(groups, MealGroup{Type: mt, List: l})
	}
	return groups
}

// NutritionHistory groups every meal by category, newest date first.
func NutritionHistory(st *models.State) []MealGroup {
	groups := make([]MealGroup, 0, len(models.AllMealTypes))
	for _, mt := range models.AllMealTypes {
		var meals []models.Meal
		for _, m := range st.Meals {
			if m.Type == mt {
				meals = append(meals, m)
			}
		}
		sort.SliceStable(meals, func(i, j int) bool {
			return meals[i].Date > meals[j].Date
		})

		l := List{Title: titleCase(string(mt)) + " History"}
		for _, m := range meals {
			l.Items = append(l.Items, mealItem(m, true))
		}
		if len(l.Items) == 0 {
			l.Empty = &Empty{Message: fmt.Sprintf("No %s history", mt)}
		}
		groups = append(groups, MealGroup{Type: mt, List: l})
	}
	return groups
}

// Dashboard is the stats summary with goal progress.
type Dashboard struct {
	Date            string       `json:"date"`
	Greeting        string       `json:"greeting"`
	Stats           models.Stats `json:"stats"`
	CalorieGoal     int          `json:"calorie_goal"`
	WaterGoal       float64      `json:"water_goal"`
	WorkoutGoal     int          `json:"workout_goal"`
	CalorieProgress float64      `json:"calorie_progress"`
	WaterProgress   float64      `json:"water_progress"`
	WorkoutProgress float64      `json:"workout_progress"`
	Tasks           TasksSummary `json:"tasks"`
}

// StatsSummary projects the dashboard for now.
func StatsSummary(st *models.State, now time.Time) Dashboard {
	s := st.Settings
	return Dashboard{
		Date:            now.Format("January 2, 2006"),
		Greeting:        fmt.Sprintf("Welcome back, %s", s.UserName),
		Stats:           st.Stats,
		CalorieGoal:     s.CalorieGoal,
		WaterGoal:       s.WaterGoal,
		WorkoutGoal:     s.WorkoutGoal,
		CalorieProgress: progress(float64(st.Stats.CaloriesConsumed), float64(s.CalorieGoal)),
		WaterProgress:   progress(st.Stats.WaterIntake, s.WaterGoal),
		WorkoutProgress: progress(float64(st.Stats.WeeklyWorkouts), float64(s.WorkoutGoal)),
		Tasks:           Tasks(st, models.DateKey(now)),
	}
}

// TasksSummary counts today's entries.
type TasksSummary struct {
	Exercises int    `json:"exercises"`
	Meals     int    `json:"meals"`
	Water     string `json:"water"`
}

// Tasks summarises today's exercise and meal counts and water.
func Tasks(st *models.State, today string) TasksSummary {
	return TasksSummary{
		Exercises: len(st.ExercisesOn(today)),
		Meals:     len(st.MealsOn(today)),
		Water:     fmt.Sprintf("%g L", st.Stats.WaterIntake),
	}
}

// Series is one dataset of a chart.
type Series struct {
	Label  string `json:"label"`
	Values []int  `json:"values"`
}

// Chart is a label/series array for the charting surface.
type Chart struct {
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
}

// WeeklyChart projects the weekly series.
func WeeklyChart(st *models.State) Chart {
	w := st.WeeklyData
	return Chart{
		Labels: append([]string(nil), w.Labels[:]...),
		Series: []Series{
			{Label: "Calories Burned", Values: append([]int(nil), w.Calories[:]...)},
			{Label: "Workouts", Values: append([]int(nil), w.Workouts[:]...)},
		},
	}
}

// Calendar projects the month under the navigation cursor.
func Calendar(st *models.State, nav models.Navigation, today string) calendar.Grid {
	return calendar.Month(st, nav.Year, nav.Month, today)
}

// Field is one settings form control.
type Field struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

var fieldLabels = map[string]string{
	"theme":            "Theme",
	"calorieGoal":      "Daily calorie goal",
	"waterGoal":        "Daily water goal (L)",
	"workoutGoal":      "Weekly workout goal",
	"workoutReminders": "Workout reminders",
	"mealReminders":    "Meal reminders",
	"waterReminders":   "Water reminders",
	"progressUpdates":  "Progress updates",
	"userName":         "Name",
	"userHeight":       "Height (cm)",
	"userWeight":       "Weight (kg)",
	"userAge":          "Age",
}

// SettingsForm projects settings as form fields in display order.
func SettingsForm(st *models.State) []Field {
	fields := make([]Field, 0, len(models.SettingKeys))
	for _, key := range models.SettingKeys {
		value, _ := st.Settings.Get(key)
		kind := "number"
		switch {
		case key == "theme":
			kind = "choice"
		case key == "userName":
			kind = "text"
		case models.IsToggle(key):
			kind = "toggle"
		}
		fields = append(fields, Field{Key: key, Label: fieldLabels[key], Kind: kind, Value: value})
	}
	return fields
}

// FormatDate renders an ISO date as "Jan 2, 2006"; bad input passes through.
func FormatDate(date string) string {
	d, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return d.Format("Jan 2, 2006")
}

func exerciseItem(e models.Exercise, withDate bool) Item {
	detail := e.Time
	if withDate {
		detail = FormatDate(e.Date) + " • " + e.Time
	}
	return Item{ID: e.ID, Title: e.Name, Detail: detail, Value: fmt.Sprintf("%d min", e.Duration)}
}

func mealItem(m models.Meal, withDate bool) Item {
	detail := m.Time
	if withDate {
		detail = FormatDate(m.Date) + " • " + m.Time
	}
	return Item{ID: m.ID, Title: m.Name, Detail: detail, Value: fmt.Sprintf("%d cal", m.Calories)}
}

func progress(value, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	p := value / goal
	if p > 1 {
		return 1
	}
	return p
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
