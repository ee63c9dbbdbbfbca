// ABOUTME: Autosave wiring shared by the long-running commands.
// ABOUTME: Starts the interval saver and returns its stop function.
package main

import (
	"fmt"

	"github.com/harperreed/fittrack/internal/session"
)

// startAutosave saves the session on the configured interval until the
// returned function is called.
func startAutosave() (func(), error) {
	a, err := session.NewAutosaver(sess, appConfig.GetAutosaveInterval(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to start autosave: %w", err)
	}
	a.Start()
	logger.Debug("autosave started", "interval", appConfig.GetAutosaveInterval())

	return func() {
		if err := a.Stop(); err != nil {
			logger.Error("final save failed", "err", err)
		}
	}, nil
}
