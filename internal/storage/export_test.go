// ABOUTME: Tests for export and import functionality.
// ABOUTME: Verifies JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/harperreed/fittrack/internal/models"
	"gopkg.in/yaml.v3"
)

func TestExportJSON(t *testing.T) {
	data, err := NewExport(sampleState()).JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}
	for _, key := range []string{"exercises", "meals", "stats", "settings", "calendarTasks"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("Export missing %q", key)
		}
	}
	if _, ok := fields["weeklyData"]; ok {
		t.Error("Export should not include weeklyData")
	}
	if !strings.Contains(string(data), "\n  \"exercises\"") {
		t.Error("Expected two-space indentation")
	}
}

func TestExportYAML(t *testing.T) {
	data, err := NewExport(sampleState()).YAML()
	if err != nil {
		t.Fatalf("YAML failed: %v", err)
	}

	var export ExportData
	if err := yaml.Unmarshal(data, &export); err != nil {
		t.Fatalf("Failed to parse YAML: %v", err)
	}
	if len(export.Exercises) != 1 || export.Exercises[0].Name != "Running" {
		t.Errorf("Unexpected exercises: %+v", export.Exercises)
	}
	if export.Settings.UserName != "Alex Johnson" {
		t.Errorf("Unexpected settings: %+v", export.Settings)
	}
}

func TestExportMarkdown(t *testing.T) {
	md := NewExport(sampleState()).Markdown(testNow)

	for _, want := range []string{
		"# FitTrack Export - 2025-10-15",
		"| 2025-10-15 | Running | 30 min | 300 | 8:05 AM |",
		"| 2025-10-15 | breakfast | Oatmeal | 350 | 7:30 AM |",
		"## Calendar",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown missing %q", want)
		}
	}

	empty := NewExport(models.NewState()).Markdown(testNow)
	if !strings.Contains(empty, "No exercises logged.") || !strings.Contains(empty, "No meals logged.") {
		t.Error("Expected empty-state placeholders")
	}
}

func TestExportFileName(t *testing.T) {
	cases := map[string]string{
		"json":     "fittrack-data-2025-10-15.json",
		"yaml":     "fittrack-data-2025-10-15.yaml",
		"markdown": "fittrack-data-2025-10-15.md",
	}
	for format, want := range cases {
		if got := ExportFileName(testNow, format); got != want {
			t.Errorf("ExportFileName(%s) = %q, want %q", format, got, want)
		}
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	if _, err := NewExport(sampleState()).Render("csv", testNow); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestImportRoundTrip(t *testing.T) {
	data, err := NewExport(sampleState()).JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	export, err := ParseExport(data)
	if err != nil {
		t.Fatalf("ParseExport failed: %v", err)
	}

	st := models.NewState()
	export.Apply(st)

	if len(st.Exercises) != 1 || len(st.Meals) != 1 {
		t.Fatalf("Logs not imported: %d exercises, %d meals", len(st.Exercises), len(st.Meals))
	}
	if st.CalendarTasks["2025-10-15"].Exercises != 1 {
		t.Errorf("Override not imported: %+v", st.CalendarTasks)
	}
	if id := st.NextID(); id != 10 {
		t.Errorf("NextID after import = %d, want 10", id)
	}

	if _, err := ParseExport([]byte("nope")); err == nil {
		t.Error("Expected parse error")
	}
}

func TestParseExportSettingsLenient(t *testing.T) {
	tests := []struct {
		name string
		json string
		want func() models.Settings
	}{
		{
			name: "partial settings keep defaults",
			json: `{"exercises":[],"settings":{"theme":"dark"}}`,
			want: func() models.Settings {
				s := models.DefaultSettings()
				s.Theme = models.ThemeDark
				return s
			},
		},
		{
			name: "numeric strings are accepted",
			json: `{"settings":{"calorieGoal":"2200","waterGoal":"3.5"}}`,
			want: func() models.Settings {
				s := models.DefaultSettings()
				s.CalorieGoal = 2200
				s.WaterGoal = 3.5
				return s
			},
		},
		{
			name: "unknown theme falls back",
			json: `{"settings":{"theme":"purple","userAge":40}}`,
			want: func() models.Settings {
				s := models.DefaultSettings()
				s.UserAge = 40
				return s
			},
		},
		{
			name: "missing settings use defaults",
			json: `{"exercises":[]}`,
			want: models.DefaultSettings,
		},
		{
			name: "null settings use defaults",
			json: `{"settings":null}`,
			want: models.DefaultSettings,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			export, err := ParseExport([]byte(tt.json))
			if err != nil {
				t.Fatalf("ParseExport failed: %v", err)
			}
			st := models.NewState()
			export.Apply(st)
			if want := tt.want(); st.Settings != want {
				t.Errorf("Settings = %+v, want %+v", st.Settings, want)
			}
		})
	}
}
