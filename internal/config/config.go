package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all runtime settings, populated from the environment.
type Config struct {
	Port         string `env:"LARDER_PORT" env-default:"8080"`
	DBPath       string `env:"LARDER_DB_PATH" env-default:"larder.db"`
	LegacyDBPath string `env:"LARDER_LEGACY_DB_PATH" env-default:""`
	LogLevel     string `env:"LARDER_LOG_LEVEL" env-default:"info"`
	Seed         bool   `env:"LARDER_SEED" env-default:"false"`
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}
