// ABOUTME: Periodic autosave of the primary data blob.
// ABOUTME: Scheduled with robfig/cron; a final save runs on Stop.
package session

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/robfig/cron/v3"
)

// DefaultAutosaveInterval is how often data is saved when unset.
const DefaultAutosaveInterval = 30 * time.Second

// Autosaver saves a Session on a fixed interval.
type Autosaver struct {
	cron    *cron.Cron
	session *Session
	log     *log.Logger
}

// NewAutosaver schedules saves every interval.
func NewAutosaver(s *Session, interval time.Duration, logger *log.Logger) (*Autosaver, error) {
	if interval <= 0 {
		interval = DefaultAutosaveInterval
	}
	if logger == nil {
		logger = s.log
	}

	a := &Autosaver{cron: cron.New(), session: s, log: logger}
	if _, err := a.cron.AddFunc(fmt.Sprintf("@every %s", interval), a.tick); err != nil {
		return nil, fmt.Errorf("schedule autosave: %w", err)
	}
	return a, nil
}

// Start begins the schedule in the background.
func (a *Autosaver) Start() {
	a.cron.Start()
}

// Stop waits for a running save to finish, then saves once more.
func (a *Autosaver) Stop() error {
	<-a.cron.Stop().Done()
	return a.session.Save()
}

func (a *Autosaver) tick() {
	if err := a.session.Save(); err != nil {
		a.log.Error("autosave failed", "err", err)
		return
	}
	a.log.Debug("autosaved")
}
