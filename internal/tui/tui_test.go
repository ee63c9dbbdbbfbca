// ABOUTME: Tests for the terminal UI model.
// ABOUTME: Drives key messages through Update and checks session effects and rendering.
package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/session"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 10, 15, 8, 5, 0, 0, time.UTC)

func newTestModel(t *testing.T) (*Model, *session.Session) {
	t.Helper()
	sess, err := session.New(storage.NewPersister(storage.NewMemoryStore(), nil), session.Options{
		Clock: func() time.Time { return testNow },
	})
	require.NoError(t, err)
	return New(sess), sess
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd = m.Update(msg)
	}
	return cmd
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNumberKeysSwitchViews(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, models.ViewDashboard, m.nav.View)

	press(m, "4")
	assert.Equal(t, models.ViewProgress, m.nav.View)

	press(m, "tab")
	assert.Equal(t, models.ViewSettings, m.nav.View)

	press(m, "tab")
	assert.Equal(t, models.ViewDashboard, m.nav.View)
}

func TestAddExerciseForm(t *testing.T) {
	m, sess := newTestModel(t)
	press(m, "2", "a")
	require.NotNil(t, m.form)

	typeText(m, "Running")
	press(m, "enter")
	typeText(m, "30")
	press(m, "enter")
	typeText(m, "300")
	press(m, "enter")
	typeText(m, "7:00 AM")
	cmd := press(m, "enter")

	assert.Nil(t, m.form)
	assert.Equal(t, session.MsgExerciseAdded, m.toast)
	assert.NotNil(t, cmd, "expected toast expiry tick")
	require.Len(t, m.todayEx.Items, 1)
	assert.Equal(t, "Running", m.todayEx.Items[0].Title)
	assert.Equal(t, 300, m.dash.Stats.CaloriesBurned)

	sess.Read(func(snap session.Snapshot) {
		assert.Len(t, snap.State.Exercises, 1)
	})
}

func TestFormValidationKeepsFormOpen(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "3", "a")
	typeText(m, "Toast")
	press(m, "enter")
	typeText(m, "brunch")
	press(m, "enter")
	typeText(m, "200")
	press(m, "enter")

	assert.NotNil(t, m.form)
	assert.Contains(t, m.err, "unknown meal type")

	press(m, "esc")
	assert.Nil(t, m.form)
}

func TestToastExpires(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "w")
	typeText(m, "0.5")
	press(m, "enter")
	require.Equal(t, session.MsgWaterAdded, m.toast)

	m.Update(toastExpiredMsg{seq: m.toastSeq - 1})
	assert.NotEmpty(t, m.toast, "stale expiry must not clear a newer toast")

	m.Update(toastExpiredMsg{seq: m.toastSeq})
	assert.Empty(t, m.toast)
}

func TestResetPrompt(t *testing.T) {
	m, sess := newTestModel(t)
	press(m, "w")
	typeText(m, "1")
	press(m, "enter")

	press(m, "5", "r")
	require.NotNil(t, m.prompt)
	assert.Contains(t, m.View(), "Reset All Data")

	press(m, "n")
	assert.Nil(t, m.prompt)
	sess.Read(func(snap session.Snapshot) {
		assert.Equal(t, 1.0, snap.State.Water["2025-10-15"])
	})

	press(m, "r", "y")
	assert.Nil(t, m.prompt)
	assert.Equal(t, session.MsgReset, m.toast)
	sess.Read(func(snap session.Snapshot) {
		assert.Empty(t, snap.State.Water)
	})
}

func TestCalendarNavigationAndDetails(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "4")
	assert.Equal(t, 15, m.selDay)

	press(m, "]")
	assert.Equal(t, time.November, m.grid.Month)
	press(m, "[", "[")
	assert.Equal(t, time.September, m.grid.Month)
	press(m, "]")

	press(m, "enter")
	require.NotNil(t, m.prompt)
	assert.True(t, m.prompt.Informational())
	assert.Contains(t, m.prompt.Title, "October 15, 2025")

	press(m, "x")
	assert.Nil(t, m.prompt)
}

func TestThemeToggleRestyles(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, models.ThemeLight, m.theme)

	press(m, "t")
	assert.Equal(t, models.ThemeDark, m.theme)
}

func TestSettingsToggleAndEdit(t *testing.T) {
	m, sess := newTestModel(t)
	press(m, "5")

	idx := -1
	for i, f := range m.fields {
		if f.Key == "mealReminders" {
			idx = i
		}
	}
	require.GreaterOrEqual(t, idx, 0)
	m.selField = idx
	press(m, "enter")
	sess.Read(func(snap session.Snapshot) {
		assert.False(t, snap.State.Settings.MealReminders)
	})

	for i, f := range m.fields {
		if f.Key == "userName" {
			m.selField = i
		}
	}
	press(m, "enter")
	require.NotNil(t, m.form)
	m.form.inputs[0].SetValue("Sam")
	press(m, "enter")
	press(m, "s")
	assert.Equal(t, session.MsgSettingsSaved, m.toast)
	sess.Read(func(snap session.Snapshot) {
		assert.Equal(t, "Sam", snap.State.Settings.UserName)
	})
}

func TestViewRendersEveryScreen(t *testing.T) {
	m, _ := newTestModel(t)
	for i, v := range models.AllViews {
		press(m, string(rune('1'+i)))
		out := m.View()
		assert.Contains(t, out, viewTitles[v])
	}
}
