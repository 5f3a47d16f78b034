// ABOUTME: Configuration loader for the alumni-connect CLI
// ABOUTME: Loads settings from a .env file and environment variables

package config

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config holds runtime configuration for the CLI.
type Config struct {
	APIBaseURL  string        `env:"ALUMNI_API_URL,default=http://localhost:5000"`
	HTTPTimeout time.Duration `env:"ALUMNI_HTTP_TIMEOUT,default=30s"`
	StateDir    string        `env:"ALUMNI_STATE_DIR"`
}

// Load reads an optional .env file and then the environment.
// A missing .env file is not an error.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	if cfg.StateDir == "" {
		cfg.StateDir = DefaultStateDir()
	}
	return &cfg, nil
}

// DefaultStateDir returns the directory for persisted client state,
// following the XDG base directory spec.
func DefaultStateDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "alumni-connect")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "alumni-connect")
}
