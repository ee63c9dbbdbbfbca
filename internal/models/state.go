// ABOUTME: State is the single owned record of logs, settings and overrides.
// ABOUTME: Recompute refreshes Stats and WeeklyData from the logs.
package models

import "time"

// State is the in-memory domain model. Operations and projections receive
// it explicitly; nothing holds it globally.
type State struct {
	Exercises     []Exercise
	Meals         []Meal
	Stats         Stats
	WeeklyData    WeeklyData
	Settings      Settings
	CalendarTasks CalendarTasks
	// Water is liters logged per ISO date.
	Water map[string]float64

	lastID int64
}

// NewState returns an empty state with default settings.
func NewState() *State {
	return &State{
		Exercises:     []Exercise{},
		Meals:         []Meal{},
		WeeklyData:    NewWeeklyData(),
		Settings:      DefaultSettings(),
		CalendarTasks: CalendarTasks{},
		Water:         map[string]float64{},
	}
}

// NextID hands out the next entry id. Ids never repeat within a session,
// even across a reset.
func (s *State) NextID() int64 {
	s.SyncIDs()
	s.lastID++
	return s.lastID
}

// SyncIDs moves the id source past every id already in the logs.
func (s *State) SyncIDs() {
	for _, e := range s.Exercises {
		if e.ID > s.lastID {
			s.lastID = e.ID
		}
	}
	for _, m := range s.Meals {
		if m.ID > s.lastID {
			s.lastID = m.ID
		}
	}
}

// ExercisesOn returns exercises logged on an ISO date, in log order.
func (s *State) ExercisesOn(date string) []Exercise {
	var out []Exercise
	for _, e := range s.Exercises {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// MealsOn returns meals logged on an ISO date, in log order.
func (s *State) MealsOn(date string) []Meal {
	var out []Meal
	for _, m := range s.Meals {
		if m.Date == date {
			out = append(out, m)
		}
	}
	return out
}

// HasActivity reports whether any exercise or meal is logged on date.
func (s *State) HasActivity(date string) bool {
	for _, e := range s.Exercises {
		if e.Date == date {
			return true
		}
	}
	for _, m := range s.Meals {
		if m.Date == date {
			return true
		}
	}
	return false
}

// Recompute derives Stats and WeeklyData from the logs as of now.
// WeightChange is not derivable and is carried over.
func (s *State) Recompute(now time.Time) {
	today := DateKey(now)
	stats := Stats{
		WaterIntake:  s.Water[today],
		WeightChange: s.Stats.WeightChange,
	}
	weekly := NewWeeklyData()
	weekStart := WeekStart(now)
	weekEnd := weekStart.AddDate(0, 0, 7)

	for _, e := range s.Exercises {
		if e.Date == today {
			stats.CaloriesBurned += e.Calories
			stats.WorkoutTime += e.Duration
		}
		d, err := time.ParseInLocation(DateLayout, e.Date, now.Location())
		if err != nil {
			continue
		}
		if !d.Before(weekStart) && d.Before(weekEnd) {
			slot := WeekdaySlot(d)
			weekly.Calories[slot] += e.Calories
			weekly.Workouts[slot]++
			stats.WeeklyWorkouts++
		}
	}
	for _, m := range s.Meals {
		if m.Date == today {
			stats.CaloriesConsumed += m.Calories
		}
	}
	stats.StreakDays = s.streak(now)

	s.Stats = stats
	s.WeeklyData = weekly
}

// streak counts consecutive active days ending today. An empty today does
// not break a streak that ran through yesterday.
func (s *State) streak(now time.Time) int {
	day := now
	if !s.HasActivity(DateKey(day)) {
		day = day.AddDate(0, 0, -1)
	}
	n := 0
	for s.HasActivity(DateKey(day)) {
		n++
		day = day.AddDate(0, 0, -1)
	}
	return n
}

// Reset clears every log and override and zeroes the aggregates.
// Settings are left alone.
func (s *State) Reset() {
	s.Exercises = []Exercise{}
	s.Meals = []Meal{}
	s.CalendarTasks = CalendarTasks{}
	s.Water = map[string]float64{}
	s.Stats = Stats{}
	s.WeeklyData = NewWeeklyData()
}
