// ABOUTME: Persistence adapter between State and the blob store.
// ABOUTME: Serializes bundles as JSON and recovers from corrupt blobs with defaults.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/harperreed/fittrack/internal/models"
)

// ErrCorruptState marks a persisted blob that could not be decoded.
var ErrCorruptState = errors.New("corrupt persisted state")

// DataBundle is the primary data blob.
type DataBundle struct {
	Exercises     []models.Exercise    `json:"exercises"`
	Meals         []models.Meal        `json:"meals"`
	Stats         models.Stats         `json:"stats"`
	WeeklyData    models.WeeklyData    `json:"weeklyData"`
	CalendarTasks models.CalendarTasks `json:"calendarTasks"`
	Water         map[string]float64   `json:"water,omitempty"`
}

// BundleFrom captures the persisted parts of a state.
func BundleFrom(st *models.State) DataBundle {
	return DataBundle{
		Exercises:     st.Exercises,
		Meals:         st.Meals,
		Stats:         st.Stats,
		WeeklyData:    st.WeeklyData,
		CalendarTasks: st.CalendarTasks,
		Water:         st.Water,
	}
}

// Apply copies the bundle into st. Missing collections become empty.
func (b DataBundle) Apply(st *models.State) {
	st.Exercises = b.Exercises
	if st.Exercises == nil {
		st.Exercises = []models.Exercise{}
	}
	st.Meals = b.Meals
	if st.Meals == nil {
		st.Meals = []models.Meal{}
	}
	st.Stats = b.Stats
	st.WeeklyData = b.WeeklyData
	st.WeeklyData.Labels = models.WeekdayLabels
	st.CalendarTasks = b.CalendarTasks
	if st.CalendarTasks == nil {
		st.CalendarTasks = models.CalendarTasks{}
	}
	st.Water = b.Water
	if st.Water == nil {
		st.Water = map[string]float64{}
	}
}

// EncodeData serializes a bundle.
func EncodeData(b DataBundle) (string, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return "", fmt.Errorf("marshal data: %w", err)
	}
	return string(data), nil
}

// DecodeData parses a serialized bundle.
func DecodeData(s string) (DataBundle, error) {
	var b DataBundle
	if err := json.Unmarshal([]byte(s), &b); err != nil {
		return DataBundle{}, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return b, nil
}

// Backup is the backup blob: the data bundle plus when it was taken.
type Backup struct {
	ID string `json:"id"`
	DataBundle
	Timestamp time.Time `json:"timestamp"`
}

// Persister loads and saves State through a Store.
type Persister struct {
	store     Store
	log       *log.Logger
	recovered []string
}

// NewPersister creates a Persister. A nil logger discards output.
func NewPersister(store Store, logger *log.Logger) *Persister {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Persister{store: store, log: logger}
}

// Store returns the underlying blob store.
func (p *Persister) Store() Store {
	return p.store
}

// Recovered lists keys whose blobs were corrupt during the last Load.
func (p *Persister) Recovered() []string {
	return p.recovered
}

// Load builds a State from the store. Absent blobs yield defaults; corrupt
// blobs are set aside under "<key>.corrupt" and replaced by defaults.
// Only store failures are returned as errors.
func (p *Persister) Load() (*models.State, error) {
	p.recovered = nil
	st := models.NewState()

	raw, ok, err := p.store.Get(KeyData)
	if err != nil {
		return nil, fmt.Errorf("load data: %w", err)
	}
	if ok {
		b, err := DecodeData(raw)
		if err != nil {
			if err := p.setAside(KeyData, raw, err); err != nil {
				return nil, err
			}
		} else {
			b.Apply(st)
		}
	}

	raw, ok, err = p.store.Get(KeySettings)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if ok {
		s, err := models.DecodeSettings([]byte(raw))
		if err != nil {
			if err := p.setAside(KeySettings, raw, fmt.Errorf("%w: %v", ErrCorruptState, err)); err != nil {
				return nil, err
			}
		} else {
			st.Settings = s
		}
	}

	theme, ok, err := p.store.Get(KeyTheme)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	if ok && models.IsValidTheme(theme) {
		st.Settings.Theme = theme
	}

	st.SyncIDs()
	p.log.Debug("state loaded", "exercises", len(st.Exercises), "meals", len(st.Meals), "overrides", len(st.CalendarTasks))
	return st, nil
}

func (p *Persister) setAside(key, raw string, cause error) error {
	p.log.Warn("corrupt blob replaced with defaults", "key", key, "err", cause)
	p.recovered = append(p.recovered, key)
	if err := p.store.Set(key+".corrupt", raw); err != nil {
		return fmt.Errorf("set aside %s: %w", key, err)
	}
	return nil
}

// SaveData writes the primary data blob.
func (p *Persister) SaveData(st *models.State) error {
	s, err := EncodeData(BundleFrom(st))
	if err != nil {
		return err
	}
	if err := p.store.Set(KeyData, s); err != nil {
		return fmt.Errorf("save data: %w", err)
	}
	return nil
}

// SaveSettings writes the settings blob.
func (p *Persister) SaveSettings(st *models.State) error {
	data, err := json.Marshal(st.Settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := p.store.Set(KeySettings, string(data)); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SaveTheme writes the theme token.
func (p *Persister) SaveTheme(theme string) error {
	if err := p.store.Set(KeyTheme, theme); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// Backup writes the backup blob. It is never read back automatically.
func (p *Persister) Backup(st *models.State, now time.Time) (*Backup, error) {
	b := &Backup{
		ID:         uuid.New().String(),
		DataBundle: BundleFrom(st),
		Timestamp:  now,
	}
	data, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("marshal backup: %w", err)
	}
	if err := p.store.Set(KeyBackup, string(data)); err != nil {
		return nil, fmt.Errorf("save backup: %w", err)
	}
	return b, nil
}

// LastBackup reads the backup blob on explicit request.
func (p *Persister) LastBackup() (*Backup, bool, error) {
	raw, ok, err := p.store.Get(KeyBackup)
	if err != nil || !ok {
		return nil, false, err
	}
	var b Backup
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return &b, true, nil
}
