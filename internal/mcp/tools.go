// ABOUTME: MCP tool implementations for the fitness tracker.
// ABOUTME: Logs exercises, meals and water, and reads stats, calendar and settings.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/calendar"
	"github.com/harperreed/fittrack/internal/session"
	"github.com/harperreed/fittrack/internal/tracker"
	"github.com/harperreed/fittrack/internal/views"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Log an exercise for today",
	}, s.handleAddExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_meal",
		Description: "Log a meal for today (breakfast, lunch, snacks or dinner)",
	}, s.handleAddMeal)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_water",
		Description: "Add liters of water to today's intake",
	}, s.handleAddWater)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List today's exercises, or all exercises newest first",
	}, s.handleListExercises)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_meals",
		Description: "List today's meals, or all meals, grouped by meal type",
	}, s.handleListMeals)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Get today's stats with goal progress and the weekly chart",
	}, s.handleGetStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_calendar",
		Description: "Get the activity calendar for a month",
	}, s.handleGetCalendar)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_day",
		Description: "Get everything logged on a single date",
	}, s.handleGetDay)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "change_setting",
		Description: "Change one setting and save the settings",
	}, s.handleChangeSetting)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "restore_default_settings",
		Description: "Restore all settings to their defaults",
	}, s.handleRestoreDefaults)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "reset_all_data",
		Description: "Delete every exercise, meal and calendar entry. Settings are kept. Requires confirm=true",
	}, s.handleResetAllData)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "backup",
		Description: "Write a timestamped backup of all data",
	}, s.handleBackup)
}

// Tool input/output types

type addExerciseInput struct {
	Name     string `json:"name" jsonschema:"Exercise name, e.g. Running"`
	Duration int    `json:"duration" jsonschema:"Duration in minutes"`
	Calories int    `json:"calories" jsonschema:"Calories burned"`
	Time     string `json:"time,omitempty" jsonschema:"Time of day label, e.g. 7:30 AM"`
}

type addMealInput struct {
	Name     string `json:"name" jsonschema:"Meal name"`
	Type     string `json:"type" jsonschema:"Meal type: breakfast, lunch, snacks or dinner"`
	Calories int    `json:"calories" jsonschema:"Calories consumed"`
}

type addWaterInput struct {
	Liters float64 `json:"liters" jsonschema:"Liters of water to add"`
}

type entryOutput struct {
	ID      int64  `json:"id"`
	Date    string `json:"date"`
	Message string `json:"message"`
}

type waterOutput struct {
	Total   float64 `json:"total"`
	Message string  `json:"message"`
}

type listInput struct {
	Scope string `json:"scope,omitempty" jsonschema:"today (default) or history"`
}

type calendarInput struct {
	Year  int `json:"year,omitempty" jsonschema:"Year, defaults to the current year"`
	Month int `json:"month,omitempty" jsonschema:"Month 1-12, defaults to the current month"`
}

type dayInput struct {
	Date string `json:"date" jsonschema:"Date as YYYY-MM-DD"`
}

type changeSettingInput struct {
	Key   string `json:"key" jsonschema:"Setting key, e.g. calorieGoal, theme, waterReminders"`
	Value string `json:"value" jsonschema:"New value as text"`
}

type resetInput struct {
	Confirm bool `json:"confirm" jsonschema:"Must be true to reset"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type statsOutput struct {
	Dashboard views.Dashboard `json:"dashboard"`
	Weekly    views.Chart     `json:"weekly"`
}

// Tool handlers

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, entryOutput, error) {
	e, err := s.session.AddExercise(tracker.ExerciseInput{
		Name:     input.Name,
		Duration: input.Duration,
		Calories: input.Calories,
		Time:     input.Time,
	})
	if err != nil {
		return nil, entryOutput{}, fmt.Errorf("failed to add exercise: %w", err)
	}
	if err := s.session.Save(); err != nil {
		return nil, entryOutput{}, fmt.Errorf("failed to save: %w", err)
	}

	return nil, entryOutput{
		ID:      e.ID,
		Date:    e.Date,
		Message: fmt.Sprintf("%s Logged %s: %d min, %d cal", session.MsgExerciseAdded, e.Name, e.Duration, e.Calories),
	}, nil
}

func (s *Server) handleAddMeal(ctx context.Context, req *mcp.CallToolRequest, input addMealInput) (*mcp.CallToolResult, entryOutput, error) {
	m, err := s.session.AddMeal(tracker.MealInput{
		Name:     input.Name,
		Type:     input.Type,
		Calories: input.Calories,
	})
	if err != nil {
		return nil, entryOutput{}, fmt.Errorf("failed to add meal: %w", err)
	}
	if err := s.session.Save(); err != nil {
		return nil, entryOutput{}, fmt.Errorf("failed to save: %w", err)
	}

	return nil, entryOutput{
		ID:      m.ID,
		Date:    m.Date,
		Message: fmt.Sprintf("%s Logged %s (%s): %d cal", session.MsgMealAdded, m.Name, m.Type, m.Calories),
	}, nil
}

func (s *Server) handleAddWater(ctx context.Context, req *mcp.CallToolRequest, input addWaterInput) (*mcp.CallToolResult, waterOutput, error) {
	total, err := s.session.AddWater(input.Liters)
	if err != nil {
		return nil, waterOutput{}, fmt.Errorf("failed to add water: %w", err)
	}
	if err := s.session.Save(); err != nil {
		return nil, waterOutput{}, fmt.Errorf("failed to save: %w", err)
	}

	return nil, waterOutput{
		Total:   total,
		Message: fmt.Sprintf("Water today: %g L", total),
	}, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, views.List, error) {
	if err := checkScope(input.Scope); err != nil {
		return nil, views.List{}, err
	}

	var list views.List
	s.session.Read(func(snap session.Snapshot) {
		if input.Scope == "history" {
			list = views.ExerciseHistory(snap.State)
		} else {
			list = views.TodayExercises(snap.State, snap.Today)
		}
	})
	return nil, list, nil
}

func (s *Server) handleListMeals(ctx context.Context, req *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, any, error) {
	if err := checkScope(input.Scope); err != nil {
		return nil, nil, err
	}

	var groups []views.MealGroup
	s.session.Read(func(snap session.Snapshot) {
		if input.Scope == "history" {
			groups = views.NutritionHistory(snap.State)
		} else {
			groups = views.TodayMeals(snap.State, snap.Today)
		}
	})
	return nil, map[string]any{"groups": groups}, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, statsOutput, error) {
	var out statsOutput
	s.session.Read(func(snap session.Snapshot) {
		out.Dashboard = views.StatsSummary(snap.State, snap.Now)
		out.Weekly = views.WeeklyChart(snap.State)
	})
	return nil, out, nil
}

func (s *Server) handleGetCalendar(ctx context.Context, req *mcp.CallToolRequest, input calendarInput) (*mcp.CallToolResult, any, error) {
	if input.Month < 0 || input.Month > 12 {
		return nil, nil, fmt.Errorf("month must be between 1 and 12, got %d", input.Month)
	}

	var grid calendar.Grid
	s.session.Read(func(snap session.Snapshot) {
		year, month := snap.Now.Year(), snap.Now.Month()
		if input.Year > 0 {
			year = input.Year
		}
		if input.Month > 0 {
			month = time.Month(input.Month)
		}
		grid = calendar.Month(snap.State, year, month, snap.Today)
	})
	return nil, grid, nil
}

func (s *Server) handleGetDay(ctx context.Context, req *mcp.CallToolRequest, input dayInput) (*mcp.CallToolResult, calendar.Details, error) {
	var (
		d   calendar.Details
		err error
	)
	s.session.Read(func(snap session.Snapshot) {
		d, err = calendar.Day(snap.State, input.Date)
	})
	if err != nil {
		return nil, calendar.Details{}, err
	}
	return nil, d, nil
}

func (s *Server) handleChangeSetting(ctx context.Context, req *mcp.CallToolRequest, input changeSettingInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.session.ChangeSetting(input.Key, input.Value); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to change setting: %w", err)
	}
	if err := s.session.SaveSettings(); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save settings: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("%s %s = %s", session.MsgSettingsSaved, input.Key, input.Value),
	}, nil
}

func (s *Server) handleRestoreDefaults(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, simpleOutput, error) {
	p := s.session.RequestRestoreDefaults()
	if err := s.session.Confirm(p); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to restore defaults: %w", err)
	}
	return nil, simpleOutput{Message: session.MsgDefaultsRestored}, nil
}

func (s *Server) handleResetAllData(ctx context.Context, req *mcp.CallToolRequest, input resetInput) (*mcp.CallToolResult, simpleOutput, error) {
	if !input.Confirm {
		return nil, simpleOutput{}, fmt.Errorf("reset not confirmed: pass confirm=true to delete all data")
	}

	p := s.session.RequestReset()
	if err := s.session.Confirm(p); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to reset: %w", err)
	}
	return nil, simpleOutput{Message: session.MsgReset}, nil
}

func (s *Server) handleBackup(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, simpleOutput, error) {
	b, err := s.session.Backup()
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to back up: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("%s (ID: %s)", session.MsgBackedUp, b.ID[:8]),
	}, nil
}

func checkScope(scope string) error {
	switch scope {
	case "", "today", "history":
		return nil
	default:
		return fmt.Errorf("unknown scope: %s (use today or history)", scope)
	}
}
