// ABOUTME: Tests for the Store implementations.
// ABOUTME: Runs the same get/set contract against memory, SQLite, and Badger.
package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreContract(t *testing.T) {
	stores := map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store { return NewMemoryStore() },
		"sqlite": func(t *testing.T) Store { return setupTestDB(t) },
		"badger": func(t *testing.T) Store { return setupTestBadger(t) },
	}

	for name, open := range stores {
		t.Run(name, func(t *testing.T) {
			s := open(t)

			_, ok, err := s.Get(KeyData)
			if err != nil {
				t.Fatalf("Get on empty store failed: %v", err)
			}
			if ok {
				t.Error("Expected absent key on empty store")
			}

			if err := s.Set(KeyTheme, "dark"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			got, ok, err := s.Get(KeyTheme)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if !ok || got != "dark" {
				t.Errorf("Get = %q, %v; want dark, true", got, ok)
			}

			if err := s.Set(KeyTheme, "light"); err != nil {
				t.Fatalf("Set overwrite failed: %v", err)
			}
			got, _, _ = s.Get(KeyTheme)
			if got != "light" {
				t.Errorf("Expected overwritten value light, got %q", got)
			}
		})
	}
}

func TestSQLitePersistsAcrossOpen(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "fittrack.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := db.Set(KeySettings, `{"theme":"dark"}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	db.Close()

	db, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer db.Close()

	got, ok, err := db.Get(KeySettings)
	if err != nil || !ok {
		t.Fatalf("Get after reopen: %q, %v, %v", got, ok, err)
	}
	if got != `{"theme":"dark"}` {
		t.Errorf("Unexpected value after reopen: %q", got)
	}
	if db.Path() != dbPath {
		t.Errorf("Path = %q, want %q", db.Path(), dbPath)
	}
}

func TestDataDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	if got := DataDir(); got != "/tmp/xdg-data/fittrack" {
		t.Errorf("DataDir = %q", got)
	}
	if got := DefaultDBPath(); got != "/tmp/xdg-data/fittrack/fittrack.db" {
		t.Errorf("DefaultDBPath = %q", got)
	}
}

func TestIsDirNonEmpty(t *testing.T) {
	tmpDir := t.TempDir()

	nonEmpty, err := IsDirNonEmpty(filepath.Join(tmpDir, "missing"))
	if err != nil || nonEmpty {
		t.Errorf("missing dir: got %v, %v", nonEmpty, err)
	}

	nonEmpty, err = IsDirNonEmpty(tmpDir)
	if err != nil || nonEmpty {
		t.Errorf("empty dir: got %v, %v", nonEmpty, err)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "x"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	nonEmpty, err = IsDirNonEmpty(tmpDir)
	if err != nil || !nonEmpty {
		t.Errorf("non-empty dir: got %v, %v", nonEmpty, err)
	}
}

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "fittrack.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestBadger(t *testing.T) *BadgerStore {
	t.Helper()

	s, err := OpenBadger(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Failed to open badger: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}
