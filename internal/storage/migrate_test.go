// ABOUTME: Tests for data migration between storage backends.
// ABOUTME: Covers memory-to-sqlite and sqlite-to-badger copies.
package storage

import "testing"

func TestMigrateDataMemoryToSQLite(t *testing.T) {
	src := NewMemoryStore()
	src.Set(KeyTheme, "dark")
	src.Set(KeyData, `{"exercises":[]}`)

	dst := setupTestDB(t)
	dst.Set(KeyTheme, "light")

	summary, err := MigrateData(src, dst)
	if err != nil {
		t.Fatalf("MigrateData failed: %v", err)
	}
	if summary.Copied != 2 || summary.Skipped != 2 {
		t.Errorf("Summary = %+v, want 2 copied, 2 skipped", summary)
	}

	got, _, _ := dst.Get(KeyTheme)
	if got != "dark" {
		t.Errorf("Destination theme = %q, want dark", got)
	}
	got, _, _ = dst.Get(KeyData)
	if got != `{"exercises":[]}` {
		t.Errorf("Destination data = %q", got)
	}
}

func TestMigrateDataSQLiteToBadger(t *testing.T) {
	src := setupTestDB(t)
	for _, key := range AllKeys {
		if err := src.Set(key, "v-"+key); err != nil {
			t.Fatal(err)
		}
	}
	dst := setupTestBadger(t)

	summary, err := MigrateData(src, dst)
	if err != nil {
		t.Fatalf("MigrateData failed: %v", err)
	}
	if summary.Copied != len(AllKeys) {
		t.Errorf("Copied = %d, want %d", summary.Copied, len(AllKeys))
	}
	for _, key := range AllKeys {
		got, ok, _ := dst.Get(key)
		if !ok || got != "v-"+key {
			t.Errorf("%s = %q, %v", key, got, ok)
		}
	}
}
