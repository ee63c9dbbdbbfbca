// ABOUTME: Tests for loading and saving State through a Store.
// ABOUTME: Covers round trips, corrupt blob recovery, theme precedence, and backups.
package storage

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

var testNow = time.Date(2025, 10, 15, 8, 5, 0, 0, time.UTC)

func sampleState() *models.State {
	st := models.NewState()
	st.Exercises = append(st.Exercises, models.Exercise{
		ID: 7, Name: "Running", Duration: 30, Calories: 300, Time: "8:05 AM", Date: "2025-10-15",
	})
	st.Meals = append(st.Meals, models.Meal{
		ID: 9, Name: "Oatmeal", Type: models.MealBreakfast, Calories: 350, Time: "7:30 AM", Date: "2025-10-15",
	})
	st.CalendarTasks["2025-10-15"] = models.DayTask{Exercises: 1, Meals: 1, Status: models.StatusCompleted}
	st.Water["2025-10-15"] = 1.5
	st.Stats.WeightChange = -1.2
	st.Recompute(testNow)
	return st
}

func TestLoadEmptyStoreGivesDefaults(t *testing.T) {
	p := NewPersister(NewMemoryStore(), nil)

	st, err := p.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(st.Exercises) != 0 || len(st.Meals) != 0 {
		t.Error("Expected empty logs")
	}
	if st.Settings != models.DefaultSettings() {
		t.Errorf("Expected default settings, got %+v", st.Settings)
	}
	if len(p.Recovered()) != 0 {
		t.Errorf("Expected nothing recovered, got %v", p.Recovered())
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	p := NewPersister(NewMemoryStore(), nil)
	st := sampleState()
	st.Settings.CalorieGoal = 2400

	if err := p.SaveData(st); err != nil {
		t.Fatalf("SaveData failed: %v", err)
	}
	if err := p.SaveSettings(st); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	got, err := p.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got.Exercises) != 1 || got.Exercises[0].Name != "Running" {
		t.Errorf("Exercises not restored: %+v", got.Exercises)
	}
	if len(got.Meals) != 1 || got.Meals[0].Type != models.MealBreakfast {
		t.Errorf("Meals not restored: %+v", got.Meals)
	}
	if got.CalendarTasks["2025-10-15"].Status != models.StatusCompleted {
		t.Errorf("Calendar override not restored: %+v", got.CalendarTasks)
	}
	if got.Water["2025-10-15"] != 1.5 {
		t.Errorf("Water not restored: %v", got.Water)
	}
	if got.Stats.WeightChange != -1.2 {
		t.Errorf("WeightChange = %v, want -1.2", got.Stats.WeightChange)
	}
	if got.Settings.CalorieGoal != 2400 {
		t.Errorf("CalorieGoal = %d, want 2400", got.Settings.CalorieGoal)
	}
	if id := got.NextID(); id != 10 {
		t.Errorf("NextID after load = %d, want 10", id)
	}
}

func TestLoadRecoversCorruptData(t *testing.T) {
	store := NewMemoryStore()
	store.Set(KeyData, "{not json")
	store.Set(KeySettings, `{"calorieGoal": 1800}`)
	p := NewPersister(store, nil)

	st, err := p.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(st.Exercises) != 0 {
		t.Error("Expected empty exercises after corrupt data")
	}
	if st.Settings.CalorieGoal != 1800 {
		t.Errorf("Settings should still load, got goal %d", st.Settings.CalorieGoal)
	}
	if rec := p.Recovered(); len(rec) != 1 || rec[0] != KeyData {
		t.Errorf("Recovered = %v, want [%s]", rec, KeyData)
	}
	aside, ok, _ := store.Get(KeyData + ".corrupt")
	if !ok || aside != "{not json" {
		t.Errorf("Corrupt blob not set aside: %q, %v", aside, ok)
	}
}

func TestLoadRecoversCorruptSettings(t *testing.T) {
	store := NewMemoryStore()
	store.Set(KeySettings, "[]")
	p := NewPersister(store, nil)

	st, err := p.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if st.Settings != models.DefaultSettings() {
		t.Errorf("Expected defaults, got %+v", st.Settings)
	}
	if rec := p.Recovered(); len(rec) != 1 || rec[0] != KeySettings {
		t.Errorf("Recovered = %v", rec)
	}
}

func TestThemeKeyOverridesSettings(t *testing.T) {
	store := NewMemoryStore()
	store.Set(KeySettings, `{"theme":"light"}`)
	store.Set(KeyTheme, "dark")
	p := NewPersister(store, nil)

	st, err := p.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if st.Settings.Theme != models.ThemeDark {
		t.Errorf("Theme = %q, want dark", st.Settings.Theme)
	}

	store.Set(KeyTheme, "purple")
	st, _ = p.Load()
	if st.Settings.Theme != models.ThemeLight {
		t.Errorf("Invalid theme token should be ignored, got %q", st.Settings.Theme)
	}
}

func TestBackup(t *testing.T) {
	store := NewMemoryStore()
	p := NewPersister(store, nil)

	if _, ok, err := p.LastBackup(); err != nil || ok {
		t.Fatalf("Expected no backup yet, got %v, %v", ok, err)
	}

	b, err := p.Backup(sampleState(), testNow)
	if err != nil {
		t.Fatalf("Backup failed: %v", err)
	}
	if b.ID == "" {
		t.Error("Expected backup id")
	}

	raw, _, _ := store.Get(KeyBackup)
	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		t.Fatalf("Backup blob is not JSON: %v", err)
	}
	for _, key := range []string{"exercises", "meals", "stats", "weeklyData", "calendarTasks", "timestamp"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("Backup blob missing %q", key)
		}
	}

	last, ok, err := p.LastBackup()
	if err != nil || !ok {
		t.Fatalf("LastBackup failed: %v, %v", ok, err)
	}
	if !last.Timestamp.Equal(testNow) || len(last.Exercises) != 1 {
		t.Errorf("Unexpected backup: %+v", last)
	}

	// The backup is never read back into state.
	st, _ := p.Load()
	if len(st.Exercises) != 0 {
		t.Error("Load must not restore from backup")
	}
}

func TestDecodeDataWrapsErrCorruptState(t *testing.T) {
	_, err := DecodeData("nope")
	if err == nil {
		t.Fatal("Expected error")
	}
	if !errors.Is(err, ErrCorruptState) {
		t.Errorf("Expected ErrCorruptState, got %v", err)
	}
}
