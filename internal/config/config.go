// ABOUTME: FitTrack configuration management with backend selection.
// ABOUTME: Reads the JSON config file, overlays FITTRACK_* env vars, and opens the store.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/charmbracelet/log"
	"github.com/harperreed/fittrack/internal/storage"
)

// Backends lists the supported storage backends.
var Backends = []string{"badger", "sqlite", "memory"}

// Config stores fittrack configuration.
type Config struct {
	// Backend selects the storage backend: "badger" (default), "sqlite" or "memory".
	Backend string `json:"backend,omitempty" env:"FITTRACK_BACKEND"`

	// DataDir is the root directory for data storage.
	// Badger keeps its files under kv/. SQLite puts fittrack.db here.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/fittrack.
	DataDir string `json:"data_dir,omitempty" env:"FITTRACK_DATA_DIR"`

	// LogLevel is one of debug, info, warn, error. Defaults to warn.
	LogLevel string `json:"log_level,omitempty" env:"FITTRACK_LOG_LEVEL"`

	// AutosaveSeconds is the autosave interval for long-running surfaces.
	AutosaveSeconds int `json:"autosave_seconds,omitempty" env:"FITTRACK_AUTOSAVE_SECONDS"`

	// ListenAddr is the HTTP API address. PORT overrides the port.
	ListenAddr string `json:"listen_addr,omitempty" env:"FITTRACK_LISTEN_ADDR"`

	// SkillDir is where install-skill writes SKILL.md. Supports ~ expansion.
	SkillDir string `json:"skill_dir,omitempty" env:"FITTRACK_SKILL_DIR"`
}

// GetBackend returns the configured backend, defaulting to "badger".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "badger"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetLogLevel returns the configured log level, defaulting to "warn".
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "warn"
	}
	return c.LogLevel
}

// GetAutosaveInterval returns the autosave interval, defaulting to 30s.
func (c *Config) GetAutosaveInterval() time.Duration {
	if c.AutosaveSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.AutosaveSeconds) * time.Second
}

// GetListenAddr returns the HTTP listen address. A PORT variable wins
// over the configured port, defaulting to :8080.
func (c *Config) GetListenAddr() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	if c.ListenAddr == "" {
		return ":8080"
	}
	return c.ListenAddr
}

// GetSkillDir returns the skill install directory. Without a configured
// value it uses skills/fittrack under CLAUDE_CONFIG_DIR, or ~/.claude.
func (c *Config) GetSkillDir() string {
	if c.SkillDir != "" {
		return ExpandPath(c.SkillDir)
	}
	base := os.Getenv("CLAUDE_CONFIG_DIR")
	if base == "" {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".claude")
	}
	return filepath.Join(ExpandPath(base), "skills", "fittrack")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStore creates a Store implementation based on the configured backend.
func (c *Config) OpenStore(logger *log.Logger) (storage.Store, error) {
	backend := c.GetBackend()
	dataDir := c.GetDataDir()

	if logger != nil {
		logger.Debug("opening store", "backend", backend, "data_dir", dataDir)
	}

	switch backend {
	case "badger":
		return storage.OpenBadger(filepath.Join(dataDir, "kv"), logger)
	case "sqlite":
		return storage.Open(filepath.Join(dataDir, "fittrack.db"))
	case "memory":
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// NewLogger builds the application logger at the configured level.
func (c *Config) NewLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(c.GetLogLevel())
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "fittrack",
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	}), nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fittrack", "config.json")
}

// Load reads config from disk, then overlays environment variables.
func Load() (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(GetConfigPath())
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
