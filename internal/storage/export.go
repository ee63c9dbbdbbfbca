// ABOUTME: Export and import of the user-facing data bundle.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportFormats lists the supported export formats.
var ExportFormats = []string{"json", "yaml", "markdown"}

// ExportData is the bundle offered to the user as a file.
type ExportData struct {
	Exercises     []models.Exercise    `json:"exercises" yaml:"exercises"`
	Meals         []models.Meal        `json:"meals" yaml:"meals"`
	Stats         models.Stats         `json:"stats" yaml:"stats"`
	Settings      models.Settings      `json:"settings" yaml:"settings"`
	CalendarTasks models.CalendarTasks `json:"calendarTasks" yaml:"calendar_tasks"`
}

// NewExport captures the exportable parts of a state.
func NewExport(st *models.State) *ExportData {
	return &ExportData{
		Exercises:     st.Exercises,
		Meals:         st.Meals,
		Stats:         st.Stats,
		Settings:      st.Settings,
		CalendarTasks: st.CalendarTasks,
	}
}

// ExportFileName names an export after the date it was taken.
func ExportFileName(now time.Time, format string) string {
	ext := format
	if format == "markdown" {
		ext = "md"
	}
	return fmt.Sprintf("fittrack-data-%s.%s", models.DateKey(now), ext)
}

// Render encodes the export in the given format.
func (e *ExportData) Render(format string, now time.Time) ([]byte, error) {
	switch format {
	case "json":
		return e.JSON()
	case "yaml":
		return e.YAML()
	case "markdown":
		return []byte(e.Markdown(now)), nil
	default:
		return nil, fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
	}
}

// JSON exports the bundle as indented JSON.
func (e *ExportData) JSON() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

// YAML exports the bundle as YAML.
func (e *ExportData) YAML() ([]byte, error) {
	return yaml.Marshal(e)
}

// Markdown exports the logs as Markdown tables.
func (e *ExportData) Markdown(now time.Time) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# FitTrack Export - %s\n\n", models.DateKey(now)))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	sb.WriteString("## Exercises\n\n")
	if len(e.Exercises) == 0 {
		sb.WriteString("No exercises logged.\n\n")
	} else {
		sb.WriteString("| Date | Name | Duration | Calories | Time |\n")
		sb.WriteString("|------|------|----------|----------|------|\n")
		for _, ex := range e.Exercises {
			sb.WriteString(fmt.Sprintf("| %s | %s | %d min | %d | %s |\n",
				ex.Date, ex.Name, ex.Duration, ex.Calories, ex.Time))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Meals\n\n")
	if len(e.Meals) == 0 {
		sb.WriteString("No meals logged.\n\n")
	} else {
		sb.WriteString("| Date | Type | Name | Calories | Time |\n")
		sb.WriteString("|------|------|------|----------|------|\n")
		for _, m := range e.Meals {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %d | %s |\n",
				m.Date, m.Type, m.Name, m.Calories, m.Time))
		}
		sb.WriteString("\n")
	}

	if len(e.CalendarTasks) > 0 {
		// Sort dates for consistent output
		dates := make([]string, 0, len(e.CalendarTasks))
		for d := range e.CalendarTasks {
			dates = append(dates, d)
		}
		sort.Strings(dates)

		sb.WriteString("## Calendar\n\n")
		sb.WriteString("| Date | Exercises | Meals | Water | Status |\n")
		sb.WriteString("|------|-----------|-------|-------|--------|\n")
		for _, d := range dates {
			task := e.CalendarTasks[d]
			sb.WriteString(fmt.Sprintf("| %s | %d | %d | %g L | %s |\n",
				d, task.Exercises, task.Meals, task.Water, task.Status))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// ParseExport reads a JSON export bundle. Settings are decoded leniently:
// missing or invalid keys keep their defaults.
func ParseExport(data []byte) (*ExportData, error) {
	var in struct {
		ExportData
		Settings json.RawMessage `json:"settings"`
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	e := in.ExportData
	e.Settings = models.DefaultSettings()
	if len(in.Settings) > 0 && string(in.Settings) != "null" {
		settings, err := models.DecodeSettings(in.Settings)
		if err != nil {
			return nil, fmt.Errorf("decode settings: %w", err)
		}
		e.Settings = settings
	}
	return &e, nil
}

// Apply replaces the logs, overrides and settings of st with the bundle.
// Water totals are not part of the export and are cleared.
func (e *ExportData) Apply(st *models.State) {
	DataBundle{
		Exercises:     e.Exercises,
		Meals:         e.Meals,
		Stats:         e.Stats,
		CalendarTasks: e.CalendarTasks,
	}.Apply(st)
	st.Settings = e.Settings
	if st.Settings == (models.Settings{}) {
		st.Settings = models.DefaultSettings()
	}
	st.SyncIDs()
}
