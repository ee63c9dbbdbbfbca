// ABOUTME: Tests for fittrack configuration management.
// ABOUTME: Covers load, save, env overlay, defaults, backend selection, and path expansion.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/harperreed/fittrack/internal/storage"
)

func TestDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	cfg := &Config{}

	if got := cfg.GetBackend(); got != "badger" {
		t.Errorf("GetBackend() = %q, want %q", got, "badger")
	}
	if got := cfg.GetLogLevel(); got != "warn" {
		t.Errorf("GetLogLevel() = %q, want %q", got, "warn")
	}
	if got := cfg.GetAutosaveInterval(); got != 30*time.Second {
		t.Errorf("GetAutosaveInterval() = %v, want 30s", got)
	}
	if got := cfg.GetListenAddr(); got != ":8080" {
		t.Errorf("GetListenAddr() = %q, want %q", got, ":8080")
	}
	if got := cfg.GetDataDir(); got == "" {
		t.Error("GetDataDir() returned empty string")
	}
}

func TestExplicitValues(t *testing.T) {
	t.Setenv("PORT", "")
	cfg := &Config{
		Backend:         "sqlite",
		DataDir:         "/tmp/fittrack-test",
		LogLevel:        "debug",
		AutosaveSeconds: 5,
		ListenAddr:      "127.0.0.1:9000",
	}

	if got := cfg.GetBackend(); got != "sqlite" {
		t.Errorf("GetBackend() = %q", got)
	}
	if got := cfg.GetDataDir(); got != "/tmp/fittrack-test" {
		t.Errorf("GetDataDir() = %q", got)
	}
	if got := cfg.GetAutosaveInterval(); got != 5*time.Second {
		t.Errorf("GetAutosaveInterval() = %v", got)
	}
	if got := cfg.GetListenAddr(); got != "127.0.0.1:9000" {
		t.Errorf("GetListenAddr() = %q", got)
	}
}

func TestPortOverridesListenAddr(t *testing.T) {
	t.Setenv("PORT", "3001")
	cfg := &Config{ListenAddr: ":9000"}
	if got := cfg.GetListenAddr(); got != ":3001" {
		t.Errorf("GetListenAddr() = %q, want %q", got, ":3001")
	}
}

func TestGetSkillDir(t *testing.T) {
	home, _ := os.UserHomeDir()

	t.Setenv("CLAUDE_CONFIG_DIR", "")
	cfg := &Config{}
	if got, want := cfg.GetSkillDir(), filepath.Join(home, ".claude", "skills", "fittrack"); got != want {
		t.Errorf("GetSkillDir() = %q, want %q", got, want)
	}

	t.Setenv("CLAUDE_CONFIG_DIR", "/opt/claude")
	if got, want := cfg.GetSkillDir(), filepath.Join("/opt/claude", "skills", "fittrack"); got != want {
		t.Errorf("GetSkillDir() with CLAUDE_CONFIG_DIR = %q, want %q", got, want)
	}

	cfg.SkillDir = "~/agents/fittrack"
	if got, want := cfg.GetSkillDir(), filepath.Join(home, "agents", "fittrack"); got != want {
		t.Errorf("GetSkillDir() with SkillDir = %q, want %q", got, want)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/tmp/foo", "/tmp/foo"},
		{"~", home},
		{"~/data/fittrack", filepath.Join(home, "data/fittrack")},
		{"data/fittrack", "data/fittrack"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetDataDirExpandsTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	cfg := &Config{DataDir: "~/fittrack-data"}
	want := filepath.Join(home, "fittrack-data")
	if got := cfg.GetDataDir(); got != want {
		t.Errorf("GetDataDir() = %q, want %q", got, want)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg.Backend != "" || cfg.DataDir != "" {
		t.Errorf("Expected empty config, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{
		Backend:         "sqlite",
		DataDir:         "/tmp/fittrack-data",
		AutosaveSeconds: 60,
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.Backend != "sqlite" {
		t.Errorf("Backend mismatch: got %q", loaded.Backend)
	}
	if loaded.DataDir != "/tmp/fittrack-data" {
		t.Errorf("DataDir mismatch: got %q", loaded.DataDir)
	}
	if loaded.AutosaveSeconds != 60 {
		t.Errorf("AutosaveSeconds mismatch: got %d", loaded.AutosaveSeconds)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if err := (&Config{Backend: "sqlite", LogLevel: "info"}).Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	t.Setenv("FITTRACK_BACKEND", "memory")
	t.Setenv("FITTRACK_AUTOSAVE_SECONDS", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Backend != "memory" {
		t.Errorf("Backend = %q, want env value memory", cfg.Backend)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want file value info", cfg.LogLevel)
	}
	if cfg.AutosaveSeconds != 10 {
		t.Errorf("AutosaveSeconds = %d, want 10", cfg.AutosaveSeconds)
	}
}

func TestLoadInvalidEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("FITTRACK_AUTOSAVE_SECONDS", "soon")

	if _, err := Load(); err == nil {
		t.Error("Expected error for non-numeric FITTRACK_AUTOSAVE_SECONDS")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "nonexistent"))

	if err := (&Config{Backend: "badger"}).Save(); err != nil {
		t.Fatalf("Save() should create directory: %v", err)
	}
	configDir := filepath.Join(tmpDir, "nonexistent", "fittrack")
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		t.Error("Expected config directory to be created")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	configDir := filepath.Join(tmpDir, "fittrack")
	if err := os.MkdirAll(configDir, 0750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte("{invalid"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestConfigJSONOmitsEmpty(t *testing.T) {
	data, err := json.Marshal(&Config{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Expected empty JSON object, got %s", string(data))
	}
}

func TestOpenStoreBackends(t *testing.T) {
	for _, backend := range Backends {
		t.Run(backend, func(t *testing.T) {
			cfg := &Config{Backend: backend, DataDir: t.TempDir()}
			store, err := cfg.OpenStore(nil)
			if err != nil {
				t.Fatalf("OpenStore() failed: %v", err)
			}
			defer store.Close()

			if err := store.Set(storage.KeyTheme, "dark"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
		})
	}
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "postgres", DataDir: t.TempDir()}
	if _, err := cfg.OpenStore(nil); err == nil {
		t.Error("Expected error for unknown backend")
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := (&Config{LogLevel: "debug"}).NewLogger()
	if err != nil {
		t.Fatalf("NewLogger() failed: %v", err)
	}
	if logger.GetLevel() != log.DebugLevel {
		t.Errorf("Level = %v, want debug", logger.GetLevel())
	}

	if _, err := (&Config{LogLevel: "loud"}).NewLogger(); err == nil {
		t.Error("Expected error for unknown log level")
	}
}
