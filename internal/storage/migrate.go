// ABOUTME: Data migration between fittrack storage backends.
// ABOUTME: Copies every known blob from source to destination.

package storage

import (
	"fmt"
	"os"
)

// MigrateSummary holds counts of migrated blobs.
type MigrateSummary struct {
	Copied  int
	Skipped int
}

// MigrateData copies all known blobs from src to dst, overwriting any
// values already in dst. Keys absent from src are skipped.
func MigrateData(src, dst Store) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	for _, key := range AllKeys {
		value, ok, err := src.Get(key)
		if err != nil {
			return nil, fmt.Errorf("read source %s: %w", key, err)
		}
		if !ok {
			summary.Skipped++
			continue
		}
		if err := dst.Set(key, value); err != nil {
			return nil, fmt.Errorf("write destination %s: %w", key, err)
		}
		summary.Copied++
	}

	return summary, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or subdirectories.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}
