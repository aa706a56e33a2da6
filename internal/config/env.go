package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadDotEnv loads KEY=VALUE pairs from the given files (default ".env")
// into the process environment. Missing files are not an error and
// variables already set are left alone.
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: load dotenv: %w", err)
	}
	return nil
}

// ApplyEnv overrides advisor settings from environment variables.
// Unset variables keep the values already in cfg.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(&cfg.Advisor); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}
