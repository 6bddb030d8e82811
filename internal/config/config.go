package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// DevelopmentEnvironment selects verbose, human-readable logging.
	DevelopmentEnvironment = "development"
	// ProductionEnvironment selects quiet JSON logging.
	ProductionEnvironment = "production"
)

// Config carries the few knobs the catalog has. The defaults reproduce the
// stock behavior, so nothing needs to be set for a normal run.
type Config struct {
	// Environment selects the logger configuration (development or production).
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// StorePath is the SQLite file holding the catalog between runs.
	StorePath string `env:"STORE_PATH" env-default:"library_data/library.db" yaml:"storePath"`
}

// Load fills a Config from the yaml file at configPath when one exists,
// otherwise from environment variables and defaults. A missing file is not
// an error.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
				return nil, fmt.Errorf("could not read config: %w", err)
			}
			return &cfg, nil
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read environment: %w", err)
	}
	return &cfg, nil
}
