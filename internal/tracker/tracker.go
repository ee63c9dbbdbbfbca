// ABOUTME: Mutation operations over an explicitly owned State.
// ABOUTME: Validates submissions, appends to logs and keeps calendar entries current.
package tracker

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

// ErrInvalidInput is wrapped by every rejected submission.
var ErrInvalidInput = errors.New("invalid input")

// Clock returns the current time. Tests pin it.
type Clock func() time.Time

// Tracker applies user intents to a State.
type Tracker struct {
	state *models.State
	now   Clock
}

// New creates a Tracker over state. A nil clock means time.Now.
func New(state *models.State, clock Clock) *Tracker {
	if clock == nil {
		clock = time.Now
	}
	t := &Tracker{state: state, now: clock}
	state.SyncIDs()
	state.Recompute(t.now())
	return t
}

// State returns the state the tracker mutates.
func (t *Tracker) State() *models.State {
	return t.state
}

// Now returns the tracker's current time.
func (t *Tracker) Now() time.Time {
	return t.now()
}

// Today returns the ISO date of the tracker's current time.
func (t *Tracker) Today() string {
	return models.DateKey(t.now())
}

// ExerciseInput is the add-exercise form.
type ExerciseInput struct {
	Name     string
	Duration int
	Calories int
	Time     string
}

// MealInput is the add-meal form.
type MealInput struct {
	Name     string
	Type     string
	Calories int
}

// AddExercise logs an exercise for today.
func (t *Tracker) AddExercise(in ExerciseInput) (*models.Exercise, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: exercise name is required", ErrInvalidInput)
	}
	if in.Duration < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative", ErrInvalidInput)
	}
	if in.Calories < 0 {
		return nil, fmt.Errorf("%w: calories must not be negative", ErrInvalidInput)
	}

	now := t.now()
	today := models.DateKey(now)
	e := models.Exercise{
		ID:       t.state.NextID(),
		Name:     name,
		Duration: in.Duration,
		Calories: in.Calories,
		Time:     strings.TrimSpace(in.Time),
		Date:     today,
	}
	t.state.Exercises = append(t.state.Exercises, e)

	task := t.dayTask(today)
	task.Exercises = len(t.state.ExercisesOn(today))
	t.state.CalendarTasks[today] = task

	t.state.Recompute(now)
	return &e, nil
}

// AddMeal logs a meal for today, stamped with the current time.
func (t *Tracker) AddMeal(in MealInput) (*models.Meal, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: meal name is required", ErrInvalidInput)
	}
	if !models.IsValidMealType(in.Type) {
		return nil, fmt.Errorf("%w: unknown meal type %q (use breakfast, lunch, snacks or dinner)", ErrInvalidInput, in.Type)
	}
	if in.Calories < 0 {
		return nil, fmt.Errorf("%w: calories must not be negative", ErrInvalidInput)
	}

	now := t.now()
	today := models.DateKey(now)
	m := models.Meal{
		ID:       t.state.NextID(),
		Name:     name,
		Type:     models.MealType(in.Type),
		Calories: in.Calories,
		Time:     now.Format(models.MealTimeLayout),
		Date:     today,
	}
	t.state.Meals = append(t.state.Meals, m)

	task := t.dayTask(today)
	task.Meals = len(t.state.MealsOn(today))
	t.state.CalendarTasks[today] = task

	t.state.Recompute(now)
	return &m, nil
}

// AddWater adds liters to today's water total and returns the new total.
func (t *Tracker) AddWater(liters float64) (float64, error) {
	if liters <= 0 {
		return 0, fmt.Errorf("%w: water must be a positive amount of liters", ErrInvalidInput)
	}

	now := t.now()
	today := models.DateKey(now)
	if t.state.Water == nil {
		t.state.Water = map[string]float64{}
	}
	t.state.Water[today] += liters

	task := t.dayTask(today)
	task.Water = t.state.Water[today]
	t.state.CalendarTasks[today] = task

	t.state.Recompute(now)
	return t.state.Water[today], nil
}

// ChangeSetting overwrites a single setting.
func (t *Tracker) ChangeSetting(key, value string) error {
	if err := t.state.Settings.Set(key, value); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// ResetAllData clears logs, overrides and aggregates. Settings survive.
func (t *Tracker) ResetAllData() {
	t.state.Reset()
}

// RestoreDefaultSettings replaces the settings with the factory record.
func (t *Tracker) RestoreDefaultSettings() {
	t.state.Settings = models.DefaultSettings()
}

// Refresh recomputes aggregates, for callers that observe a date change.
func (t *Tracker) Refresh() {
	t.state.Recompute(t.now())
}

// dayTask returns the override for date, creating a completed one if absent.
func (t *Tracker) dayTask(date string) models.DayTask {
	if t.state.CalendarTasks == nil {
		t.state.CalendarTasks = models.CalendarTasks{}
	}
	task, ok := t.state.CalendarTasks[date]
	if !ok {
		task = models.DayTask{Status: models.StatusCompleted}
	}
	return task
}
