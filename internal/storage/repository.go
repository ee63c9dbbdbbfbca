// ABOUTME: Store interface for the opaque string-keyed blob store.
// ABOUTME: Defines the fixed keys and the default XDG data directory.
package storage

import (
	"os"
	"path/filepath"
)

// Fixed keys of the persisted blobs.
const (
	KeyTheme    = "fitTrackTheme"
	KeySettings = "fitTrackSettings"
	KeyData     = "fitTrackData"
	KeyBackup   = "fitTrackBackup"
)

// AllKeys lists every key the application writes.
var AllKeys = []string{KeyTheme, KeySettings, KeyData, KeyBackup}

// Store is a string-keyed blob store. No transactional or partial-write
// guarantees are assumed.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Close() error
}

// DataDir returns the default data directory following the XDG base directory layout.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "fittrack")
}
