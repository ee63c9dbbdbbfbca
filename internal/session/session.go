// ABOUTME: Session is the interaction controller shared by every surface.
// ABOUTME: Serialises intents, routes redraws and notifications, and persists state.
package session

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/harperreed/fittrack/internal/calendar"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/harperreed/fittrack/internal/tracker"
)

// Notification texts.
const (
	MsgExerciseAdded    = "Exercise added successfully!"
	MsgMealAdded        = "Meal added successfully!"
	MsgWaterAdded       = "Water added successfully!"
	MsgSettingsSaved    = "Settings saved successfully!"
	MsgExported         = "Data exported successfully!"
	MsgImported         = "Data imported successfully!"
	MsgBackedUp         = "Data backed up successfully!"
	MsgReset            = "All data reset successfully!"
	MsgDefaultsRestored = "Default settings restored!"
)

// Session owns the state, navigation, persister and active prompt.
// Every exported method is safe for concurrent use.
type Session struct {
	mu        sync.Mutex
	tracker   *tracker.Tracker
	nav       models.Navigation
	persister *storage.Persister
	display   Display
	prompt    *Prompt
	log       *log.Logger
	lastSaved time.Time
}

// Options configures a Session. Zero values pick defaults.
type Options struct {
	Display Display
	Logger  *log.Logger
	Clock   tracker.Clock
}

// New loads state through the persister and starts on the dashboard.
func New(p *storage.Persister, opts Options) (*Session, error) {
	if opts.Display == nil {
		opts.Display = NopDisplay{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	st, err := p.Load()
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	t := tracker.New(st, opts.Clock)

	return &Session{
		tracker:   t,
		nav:       models.NewNavigation(t.Now()),
		persister: p,
		display:   opts.Display,
		log:       opts.Logger,
	}, nil
}

// SetDisplay swaps the display collaborator.
func (s *Session) SetDisplay(d Display) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d == nil {
		d = NopDisplay{}
	}
	s.display = d
}

// Snapshot is a read-only view handed to Read callbacks.
type Snapshot struct {
	State *models.State
	Nav   models.Navigation
	Now   time.Time
	Today string
}

// Read runs fn with the state locked and aggregates current for now.
// fn must not retain the state or call back into the Session.
func (s *Session) Read(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracker.Refresh()
	now := s.tracker.Now()
	fn(Snapshot{
		State: s.tracker.State(),
		Nav:   s.nav,
		Now:   now,
		Today: models.DateKey(now),
	})
}

// Now returns the session clock's current time.
func (s *Session) Now() time.Time {
	return s.tracker.Now()
}

// Recovered lists blobs that were corrupt at load time.
func (s *Session) Recovered() []string {
	return s.persister.Recovered()
}

// LastSaved returns when the data blob was last written by this session.
func (s *Session) LastSaved() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaved
}

// Navigate switches the active view. Entering progress redraws the chart.
func (s *Session) Navigate(v models.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.View = v
	s.display.Redraw(SurfaceView)
	if v == models.ViewProgress {
		s.display.Redraw(SurfaceChart, SurfaceCalendar)
	}
}

// PrevMonth moves the calendar cursor back one month.
func (s *Session) PrevMonth() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.PrevMonth()
	s.display.Redraw(SurfaceCalendar)
}

// NextMonth moves the calendar cursor forward one month.
func (s *Session) NextMonth() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.NextMonth()
	s.display.Redraw(SurfaceCalendar)
}

// SetMonth points the calendar cursor at year/month.
func (s *Session) SetMonth(year int, month time.Month) error {
	if month < time.January || month > time.December {
		return fmt.Errorf("%w: month %d out of range", tracker.ErrInvalidInput, month)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.Year = year
	s.nav.Month = month
	s.display.Redraw(SurfaceCalendar)
	return nil
}

// AddExercise logs an exercise for today.
func (s *Session) AddExercise(in tracker.ExerciseInput) (*models.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.tracker.AddExercise(in)
	if err != nil {
		return nil, err
	}
	s.log.Debug("exercise added", "id", e.ID, "name", e.Name)
	s.display.Redraw(SurfaceExercises, SurfaceDashboard, SurfaceCalendar, SurfaceChart)
	s.display.Notify(MsgExerciseAdded)
	return e, nil
}

// AddMeal logs a meal for today.
func (s *Session) AddMeal(in tracker.MealInput) (*models.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.tracker.AddMeal(in)
	if err != nil {
		return nil, err
	}
	s.log.Debug("meal added", "id", m.ID, "name", m.Name, "type", m.Type)
	s.display.Redraw(SurfaceMeals, SurfaceDashboard, SurfaceCalendar)
	s.display.Notify(MsgMealAdded)
	return m, nil
}

// AddWater adds liters to today's total and returns the new total.
func (s *Session) AddWater(liters float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	total, err := s.tracker.AddWater(liters)
	if err != nil {
		return 0, err
	}
	s.display.Redraw(SurfaceDashboard, SurfaceCalendar)
	s.display.Notify(MsgWaterAdded)
	return total, nil
}

// ChangeSetting edits one setting in memory. Theme changes also write the
// theme key so the preference survives without a settings save.
func (s *Session) ChangeSetting(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.tracker.ChangeSetting(key, value); err != nil {
		return err
	}
	if key == "theme" {
		if err := s.persister.SaveTheme(s.tracker.State().Settings.Theme); err != nil {
			return err
		}
		s.display.Redraw(SurfaceTheme)
	}
	s.display.Redraw(SurfaceSettings, SurfaceDashboard)
	return nil
}

// SetTheme applies and persists a theme.
func (s *Session) SetTheme(theme string) error {
	return s.ChangeSetting("theme", theme)
}

// ToggleTheme flips between light and dark and returns the new theme.
func (s *Session) ToggleTheme() (string, error) {
	s.mu.Lock()
	next := models.ThemeDark
	if s.tracker.State().Settings.Theme == models.ThemeDark {
		next = models.ThemeLight
	}
	s.mu.Unlock()
	return next, s.SetTheme(next)
}

// SaveSettings writes the settings blob.
func (s *Session) SaveSettings() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persister.SaveSettings(s.tracker.State()); err != nil {
		return err
	}
	s.display.Notify(MsgSettingsSaved)
	return nil
}

// RequestReset opens a confirmation prompt that clears every log when
// confirmed. Settings survive.
func (s *Session) RequestReset() *Prompt {
	return s.open(NewPrompt(
		"Reset All Data",
		"Are you sure you want to reset all data? This action cannot be undone.",
		func() error {
			s.tracker.ResetAllData()
			if err := s.saveLocked(); err != nil {
				return err
			}
			s.log.Info("all data reset")
			s.display.Redraw(AllSurfaces...)
			s.display.Notify(MsgReset)
			return nil
		},
	))
}

// RequestRestoreDefaults opens a confirmation prompt that restores the
// factory settings when confirmed.
func (s *Session) RequestRestoreDefaults() *Prompt {
	return s.open(NewPrompt(
		"Restore Default Settings",
		"Are you sure you want to restore default settings?",
		func() error {
			s.tracker.RestoreDefaultSettings()
			st := s.tracker.State()
			if err := s.persister.SaveSettings(st); err != nil {
				return err
			}
			if err := s.persister.SaveTheme(st.Settings.Theme); err != nil {
				return err
			}
			s.display.Redraw(SurfaceSettings, SurfaceTheme, SurfaceDashboard)
			s.display.Notify(MsgDefaultsRestored)
			return nil
		},
	))
}

// DayDetails opens an informational prompt describing date.
func (s *Session) DayDetails(date string) (calendar.Details, error) {
	s.mu.Lock()
	d, err := calendar.Day(s.tracker.State(), date)
	s.mu.Unlock()
	if err != nil {
		return calendar.Details{}, fmt.Errorf("%w: %v", tracker.ErrInvalidInput, err)
	}
	s.open(NewPrompt(d.Title, d.Message(), nil))
	return d, nil
}

// ActivePrompt returns the open prompt, or nil.
func (s *Session) ActivePrompt() *Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prompt
}

// Confirm runs p's action once and dismisses it. p must still be the open
// prompt; a prompt replaced by a later request returns ErrPromptClosed.
func (s *Session) Confirm(p *Prompt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p == nil || s.prompt != p {
		return ErrPromptClosed
	}
	s.prompt = nil
	return p.run()
}

// Dismiss closes p without running its action. Other prompts stay open.
func (s *Session) Dismiss(p *Prompt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.prompt == p {
		s.prompt = nil
	}
}

func (s *Session) open(p *Prompt) *Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompt = p
	s.display.ShowPrompt(p)
	return p
}

// Save writes the primary data blob.
func (s *Session) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Session) saveLocked() error {
	if err := s.persister.SaveData(s.tracker.State()); err != nil {
		return err
	}
	s.lastSaved = s.tracker.Now()
	return nil
}

// Backup writes the backup blob.
func (s *Session) Backup() (*storage.Backup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := s.persister.Backup(s.tracker.State(), s.tracker.Now())
	if err != nil {
		return nil, err
	}
	s.log.Info("backup written", "id", b.ID)
	s.display.Notify(MsgBackedUp)
	return b, nil
}

// LastBackup reads the most recent backup blob, if any.
func (s *Session) LastBackup() (*storage.Backup, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persister.LastBackup()
}

// Export renders the export bundle and returns it with its file name.
func (s *Session) Export(format string) ([]byte, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.tracker.Now()
	data, err := storage.NewExport(s.tracker.State()).Render(format, now)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", tracker.ErrInvalidInput, err)
	}
	s.display.Notify(MsgExported)
	return data, storage.ExportFileName(now, format), nil
}

// Import replaces logs, overrides and settings with a JSON export bundle
// and saves everything.
func (s *Session) Import(data []byte) error {
	e, err := storage.ParseExport(data)
	if err != nil {
		return fmt.Errorf("%w: %v", tracker.ErrInvalidInput, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.tracker.State()
	e.Apply(st)
	s.tracker.Refresh()
	if err := s.saveLocked(); err != nil {
		return err
	}
	if err := s.persister.SaveSettings(st); err != nil {
		return err
	}
	if err := s.persister.SaveTheme(st.Settings.Theme); err != nil {
		return err
	}
	s.display.Redraw(AllSurfaces...)
	s.display.Notify(MsgImported)
	return nil
}

// Close saves the data blob and closes the store.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	saveErr := s.saveLocked()
	if err := s.persister.Store().Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	return saveErr
}
