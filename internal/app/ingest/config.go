package ingest

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds ingest settings.
type Config struct {
	// Actor is recorded as CreatedBy on every ingested record.
	Actor        string `yaml:"actor"          env:"INGEST_ACTOR"          env-default:"ingest"`
	DryRun       bool   `yaml:"dry_run"        env:"INGEST_DRY_RUN"`
	MaxLineBytes int    `yaml:"max_line_bytes" env:"INGEST_MAX_LINE_BYTES" env-default:"1048576"`
}

// LoadConfig reads config from a YAML file or environment variables.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("ingest config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("ingest config: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("ingest config: read env: %w", err)
	}

	if cfg.Actor == "" {
		return nil, fmt.Errorf("ingest config: actor is required")
	}
	if cfg.MaxLineBytes < 1024 {
		return nil, fmt.Errorf("ingest config: max_line_bytes must be >= 1024 (got %d)", cfg.MaxLineBytes)
	}
	return &cfg, nil
}
