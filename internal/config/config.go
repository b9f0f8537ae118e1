// Package config loads bosun runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the bosun runtime configuration. Values come from BOSUN_*
// environment variables; a .env file in the working directory is loaded
// first when present.
type Config struct {
	// DBPath is the ledger file. Defaults to <DataDir>/bosun.db.
	DBPath string `envconfig:"DB_PATH"`

	// DataDir holds the ledger and journal. Defaults to ~/.bosun.
	DataDir string `envconfig:"DATA_DIR"`

	// Agent is the default actor recorded on lifecycle events.
	Agent string `envconfig:"AGENT" default:"Code Agent"`

	// SessionPrefix names tmux mission sessions: <prefix>-<mission-id>.
	SessionPrefix string `envconfig:"SESSION_PREFIX" default:"bosun"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	// Missing .env is fine; env vars and defaults still apply.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("BOSUN", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".bosun")
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "bosun.db")
	}

	return &cfg, nil
}

// JournalDir returns the directory holding per-mission journal files.
func (c *Config) JournalDir() string {
	return filepath.Join(c.DataDir, "journal")
}

// SessionName returns the tmux session name for a mission.
func (c *Config) SessionName(missionID string) string {
	return c.SessionPrefix + "-" + missionID
}
