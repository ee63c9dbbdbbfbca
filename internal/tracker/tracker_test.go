// ABOUTME: Tests for mutation operations against fresh, isolated states.
// ABOUTME: Covers append-only logs, aggregates, calendar upserts and validation.
package tracker

import (
	"testing"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-10-15 is a Wednesday.
var fixedNow = time.Date(2025, time.October, 15, 8, 5, 0, 0, time.UTC)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	return New(models.NewState(), func() time.Time { return fixedNow })
}

func TestAddExerciseScenario(t *testing.T) {
	tr := newTestTracker(t)
	st := tr.State()
	before := st.Stats

	e, err := tr.AddExercise(ExerciseInput{Name: "Run", Duration: 30, Calories: 300, Time: "Morning"})
	require.NoError(t, err)

	assert.Equal(t, "2025-10-15", e.Date)
	assert.Equal(t, "Morning", e.Time)
	assert.Len(t, st.ExercisesOn(tr.Today()), 1)
	assert.Equal(t, before.CaloriesBurned+300, st.Stats.CaloriesBurned)
	assert.Equal(t, before.WorkoutTime+30, st.Stats.WorkoutTime)
	assert.Equal(t, before.WeeklyWorkouts+1, st.Stats.WeeklyWorkouts)

	task, ok := st.CalendarTasks["2025-10-15"]
	require.True(t, ok, "expected a calendar entry for today")
	assert.Equal(t, 1, task.Exercises)
	assert.Equal(t, models.StatusCompleted, task.Status)

	// Wednesday slot of the weekly series.
	assert.Equal(t, 300, st.WeeklyData.Calories[2])
	assert.Equal(t, 1, st.WeeklyData.Workouts[2])
}

func TestAddMealScenario(t *testing.T) {
	tr := newTestTracker(t)
	st := tr.State()
	before := st.Stats.CaloriesConsumed

	m, err := tr.AddMeal(MealInput{Name: "Toast", Type: "breakfast", Calories: 200})
	require.NoError(t, err)

	assert.Equal(t, "8:05 AM", m.Time)
	var breakfast int
	for _, meal := range st.MealsOn(tr.Today()) {
		if meal.Type == models.MealBreakfast {
			breakfast++
		}
	}
	assert.Equal(t, 1, breakfast)
	assert.Equal(t, before+200, st.Stats.CaloriesConsumed)
	assert.Equal(t, 1, st.CalendarTasks["2025-10-15"].Meals)
}

func TestAppendOnlyAndDistinctIDs(t *testing.T) {
	tr := newTestTracker(t)
	st := tr.State()
	seen := map[int64]bool{}

	for i := 0; i < 5; i++ {
		n := len(st.Exercises)
		e, err := tr.AddExercise(ExerciseInput{Name: "Row", Duration: 10, Calories: 80, Time: "Evening"})
		require.NoError(t, err)
		assert.Len(t, st.Exercises, n+1)
		assert.False(t, seen[e.ID], "duplicate id %d", e.ID)
		seen[e.ID] = true

		k := len(st.Meals)
		m, err := tr.AddMeal(MealInput{Name: "Apple", Type: "snacks", Calories: 90})
		require.NoError(t, err)
		assert.Len(t, st.Meals, k+1)
		assert.False(t, seen[m.ID], "duplicate id %d", m.ID)
		seen[m.ID] = true
	}
}

func TestCalendarEntryTracksLiveCount(t *testing.T) {
	tr := newTestTracker(t)
	st := tr.State()
	st.CalendarTasks["2025-10-15"] = models.DayTask{Exercises: 9, Meals: 2, Status: models.StatusPending}

	_, err := tr.AddExercise(ExerciseInput{Name: "Bike", Duration: 40, Calories: 350})
	require.NoError(t, err)

	task := st.CalendarTasks["2025-10-15"]
	assert.Equal(t, 1, task.Exercises, "exercise count is reset to the live count")
	assert.Equal(t, 2, task.Meals, "meal count untouched")
	assert.Equal(t, models.StatusPending, task.Status, "existing status kept")
}

func TestAddWater(t *testing.T) {
	tr := newTestTracker(t)
	st := tr.State()

	_, err := tr.AddWater(0.5)
	require.NoError(t, err)
	total, err := tr.AddWater(0.75)
	require.NoError(t, err)

	assert.InDelta(t, 1.25, total, 1e-9)
	assert.InDelta(t, 1.25, st.Stats.WaterIntake, 1e-9)
	assert.InDelta(t, 1.25, st.CalendarTasks["2025-10-15"].Water, 1e-9)

	_, err = tr.AddWater(0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidation(t *testing.T) {
	tr := newTestTracker(t)

	_, err := tr.AddExercise(ExerciseInput{Name: "  ", Duration: 10, Calories: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = tr.AddExercise(ExerciseInput{Name: "Run", Duration: -1, Calories: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = tr.AddMeal(MealInput{Name: "Cake", Type: "brunch", Calories: 400})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = tr.AddMeal(MealInput{Name: "Cake", Type: "dinner", Calories: -5})
	assert.ErrorIs(t, err, ErrInvalidInput)

	st := tr.State()
	assert.Empty(t, st.Exercises)
	assert.Empty(t, st.Meals)
	assert.Empty(t, st.CalendarTasks)
}

func TestChangeSetting(t *testing.T) {
	tr := newTestTracker(t)

	require.NoError(t, tr.ChangeSetting("mealReminders", "false"))
	require.NoError(t, tr.ChangeSetting("userName", "Jordan"))
	assert.False(t, tr.State().Settings.MealReminders)
	assert.Equal(t, "Jordan", tr.State().Settings.UserName)

	assert.ErrorIs(t, tr.ChangeSetting("shoeSize", "44"), ErrInvalidInput)
	assert.ErrorIs(t, tr.ChangeSetting("calorieGoal", "many"), ErrInvalidInput)
}

func TestResetAllDataIdempotent(t *testing.T) {
	tr := newTestTracker(t)
	_, err := tr.AddExercise(ExerciseInput{Name: "Run", Duration: 30, Calories: 300})
	require.NoError(t, err)
	_, err = tr.AddMeal(MealInput{Name: "Toast", Type: "breakfast", Calories: 200})
	require.NoError(t, err)
	_, err = tr.AddWater(1)
	require.NoError(t, err)

	tr.ResetAllData()
	once := *tr.State()
	tr.ResetAllData()
	twice := *tr.State()

	assert.Equal(t, once.Exercises, twice.Exercises)
	assert.Equal(t, once.Meals, twice.Meals)
	assert.Equal(t, once.CalendarTasks, twice.CalendarTasks)
	assert.Equal(t, once.Stats, twice.Stats)
	assert.Equal(t, once.WeeklyData, twice.WeeklyData)
	assert.Equal(t, models.Stats{}, twice.Stats)
	assert.Empty(t, twice.Exercises)
}

func TestRestoreDefaultSettings(t *testing.T) {
	tr := newTestTracker(t)
	_, err := tr.AddExercise(ExerciseInput{Name: "Run", Duration: 30, Calories: 300})
	require.NoError(t, err)
	require.NoError(t, tr.ChangeSetting("theme", "dark"))

	tr.RestoreDefaultSettings()

	assert.Equal(t, models.DefaultSettings(), tr.State().Settings)
	assert.Len(t, tr.State().Exercises, 1, "logs untouched")
}
