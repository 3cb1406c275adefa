package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings resolved from the environment. Flags may
// override individual fields after parsing (flag > env > default).
type Config struct {
	// DBPath is the preference database location. Empty means the default
	// under ~/.local/share/vitrine.
	DBPath string `env:"VITRINE_DB"`

	// SummaryURL is the base endpoint for encyclopedia summaries.
	SummaryURL string `env:"VITRINE_SUMMARY_URL" envDefault:"https://en.wikipedia.org/api/rest_v1/page/summary"`

	// Model is the chat model used by the draft assistant.
	Model string `env:"VITRINE_MODEL" envDefault:"gpt-4o-mini"`

	// APIKey, when set, overrides the stored draft-assistant credential.
	APIKey string `env:"OPENAI_API_KEY"`

	// LogDir enables the application log when non-empty.
	LogDir string `env:"VITRINE_LOG_DIR"`
}

// Load parses the environment and fills in path defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("get home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".local", "share", "vitrine", "vitrine.db")
	}
	return cfg, nil
}
