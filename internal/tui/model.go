// ABOUTME: Bubbletea model for the five-view terminal interface.
// ABOUTME: Keys become Session intents; queued redraws refresh cached projections.
package tui

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harperreed/fittrack/internal/calendar"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/session"
	"github.com/harperreed/fittrack/internal/tracker"
	"github.com/harperreed/fittrack/internal/views"
)

// toastTTL is how long a notification stays on screen.
const toastTTL = 3 * time.Second

type toastExpiredMsg struct{ seq int }

// Model is the terminal UI state.
type Model struct {
	sess   *session.Session
	box    *inbox
	styles styles
	width  int
	height int

	// cached projections, refreshed per surface
	nav          models.Navigation
	now          time.Time
	today        string
	theme        string
	dash         views.Dashboard
	todayEx      views.List
	historyEx    views.List
	todayMeals   []views.MealGroup
	historyMeals []views.MealGroup
	chart        views.Chart
	grid         calendar.Grid
	fields       []views.Field

	selDay   int
	selField int
	form     *form
	prompt   *session.Prompt
	toast    string
	toastSeq int
	err      string
}

// New builds the model and attaches it to the session as its display.
func New(sess *session.Session) *Model {
	m := &Model{sess: sess, box: newInbox()}
	sess.SetDisplay(m.box)

	all := map[session.Surface]bool{}
	for _, s := range session.AllSurfaces {
		all[s] = true
	}
	m.refresh(all)
	m.selDay = m.now.Day()
	return m
}

// Run starts the interface and blocks until the user quits.
func Run(sess *session.Session) error {
	p := tea.NewProgram(New(sess), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case m.prompt != nil:
			return m, m.handlePrompt(msg)
		case m.form != nil:
			return m, m.handleForm(msg)
		default:
			return m, m.handleKey(msg)
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.err = ""
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return tea.Quit
	case "1", "2", "3", "4", "5":
		i, _ := strconv.Atoi(key)
		m.sess.Navigate(models.AllViews[i-1])
		return m.sync()
	case "tab":
		m.sess.Navigate(m.stepView(1))
		return m.sync()
	case "shift+tab":
		m.sess.Navigate(m.stepView(-1))
		return m.sync()
	case "t":
		if _, err := m.sess.ToggleTheme(); err != nil {
			m.err = err.Error()
		}
		return m.sync()
	case "w":
		m.form = waterForm()
		return nil
	}

	switch m.nav.View {
	case models.ViewExercise:
		if key == "a" {
			m.form = exerciseForm()
		}
	case models.ViewNutrition:
		if key == "a" {
			m.form = mealForm()
		}
	case models.ViewProgress:
		return m.handleProgressKey(key)
	case models.ViewSettings:
		return m.handleSettingsKey(key)
	}
	return nil
}

func (m *Model) handleProgressKey(key string) tea.Cmd {
	switch key {
	case "[":
		m.sess.PrevMonth()
	case "]":
		m.sess.NextMonth()
	case "left", "h":
		m.moveDay(-1)
	case "right", "l":
		m.moveDay(1)
	case "up", "k":
		m.moveDay(-7)
	case "down", "j":
		m.moveDay(7)
	case "enter":
		date := fmt.Sprintf("%04d-%02d-%02d", m.grid.Year, m.grid.Month, m.selDay)
		if _, err := m.sess.DayDetails(date); err != nil {
			m.err = err.Error()
		}
	default:
		return nil
	}
	return m.sync()
}

func (m *Model) handleSettingsKey(key string) tea.Cmd {
	switch key {
	case "up", "k":
		if m.selField > 0 {
			m.selField--
		}
		return nil
	case "down", "j":
		if m.selField < len(m.fields)-1 {
			m.selField++
		}
		return nil
	case "enter", " ":
		f := m.fields[m.selField]
		switch f.Kind {
		case "toggle":
			next := "true"
			if f.Value == "true" {
				next = "false"
			}
			if err := m.sess.ChangeSetting(f.Key, next); err != nil {
				m.err = err.Error()
			}
		case "choice":
			if _, err := m.sess.ToggleTheme(); err != nil {
				m.err = err.Error()
			}
		default:
			m.form = settingForm(f.Key, f.Label, f.Value)
			return nil
		}
	case "s":
		if err := m.sess.SaveSettings(); err != nil {
			m.err = err.Error()
		}
	case "r":
		m.sess.RequestReset()
	case "d":
		m.sess.RequestRestoreDefaults()
	default:
		return nil
	}
	return m.sync()
}

func (m *Model) handlePrompt(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "enter":
		if err := m.sess.Confirm(m.prompt); err != nil {
			m.err = err.Error()
		}
	case "n", "esc":
		m.sess.Dismiss(m.prompt)
	default:
		if !m.prompt.Informational() {
			return nil
		}
		m.sess.Dismiss(m.prompt)
	}
	m.prompt = nil
	return m.sync()
}

func (m *Model) handleForm(msg tea.KeyMsg) tea.Cmd {
	f := m.form
	switch msg.String() {
	case "esc":
		m.form = nil
		m.err = ""
		return nil
	case "tab", "down":
		f.move(1)
		return nil
	case "shift+tab", "up":
		f.move(-1)
		return nil
	case "enter":
		if f.focus < len(f.inputs)-1 {
			f.move(1)
			return nil
		}
		if err := m.submit(f); err != nil {
			m.err = err.Error()
			return nil
		}
		m.form = nil
		m.err = ""
		return m.sync()
	}
	return f.update(msg)
}

func (m *Model) submit(f *form) error {
	switch f.kind {
	case formExercise:
		duration, err := parseInt("duration", f.value(1))
		if err != nil {
			return err
		}
		calories, err := parseInt("calories", f.value(2))
		if err != nil {
			return err
		}
		_, err = m.sess.AddExercise(tracker.ExerciseInput{
			Name:     f.value(0),
			Duration: duration,
			Calories: calories,
			Time:     f.value(3),
		})
		return err
	case formMeal:
		calories, err := parseInt("calories", f.value(2))
		if err != nil {
			return err
		}
		_, err = m.sess.AddMeal(tracker.MealInput{Name: f.value(0), Type: f.value(1), Calories: calories})
		return err
	case formWater:
		liters, err := strconv.ParseFloat(f.value(0), 64)
		if err != nil {
			return fmt.Errorf("liters must be a number")
		}
		_, err = m.sess.AddWater(liters)
		return err
	case formSetting:
		return m.sess.ChangeSetting(f.key, f.value(0))
	}
	return nil
}

// sync applies everything the session queued since the last intent.
func (m *Model) sync() tea.Cmd {
	dirty, notices, prompt := m.box.drain()
	m.refresh(dirty)
	if prompt != nil {
		m.prompt = prompt
	}
	if len(notices) == 0 {
		return nil
	}
	m.toast = notices[len(notices)-1]
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (m *Model) refresh(dirty map[session.Surface]bool) {
	m.sess.Read(func(snap session.Snapshot) {
		st := snap.State
		m.nav = snap.Nav
		m.now = snap.Now
		m.today = snap.Today
		if dirty[session.SurfaceDashboard] {
			m.dash = views.StatsSummary(st, snap.Now)
		}
		if dirty[session.SurfaceExercises] {
			m.todayEx = views.TodayExercises(st, snap.Today)
			m.historyEx = views.ExerciseHistory(st)
		}
		if dirty[session.SurfaceMeals] {
			m.todayMeals = views.TodayMeals(st, snap.Today)
			m.historyMeals = views.NutritionHistory(st)
		}
		if dirty[session.SurfaceChart] {
			m.chart = views.WeeklyChart(st)
		}
		if dirty[session.SurfaceCalendar] {
			m.grid = views.Calendar(st, snap.Nav, snap.Today)
		}
		if dirty[session.SurfaceSettings] {
			m.fields = views.SettingsForm(st)
		}
		if dirty[session.SurfaceTheme] {
			m.theme = st.Settings.Theme
			m.styles = newStyles(m.theme)
		}
	})
	m.moveDay(0)
}

// moveDay shifts the selected calendar day, clamped to the month.
func (m *Model) moveDay(delta int) {
	days := calendar.DaysIn(m.grid.Year, m.grid.Month)
	m.selDay += delta
	if m.selDay < 1 {
		m.selDay = 1
	}
	if m.selDay > days {
		m.selDay = days
	}
}

func (m *Model) stepView(delta int) models.View {
	n := len(models.AllViews)
	for i, v := range models.AllViews {
		if v == m.nav.View {
			return models.AllViews[(i+delta+n)%n]
		}
	}
	return models.ViewDashboard
}

func parseInt(field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", field)
	}
	return n, nil
}
