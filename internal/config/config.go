// Package config provides YAML-based configuration loading for the board
// and the AI advisor, with environment overrides for credentials.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tiles/internal/board"
)

// Config is the full application configuration.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Advisor AdvisorConfig `yaml:"advisor"`
}

// BoardConfig defines the engine parameters.
type BoardConfig struct {
	Size         int `yaml:"size"`
	WinNumber    int `yaml:"win_number"` // 0 disables win detection
	InitialTiles int `yaml:"initial_tiles"`
	NewTiles     int `yaml:"new_tiles"`
}

// AdvisorConfig defines how the AI hint endpoint is reached.
// The API key is never read from YAML.
type AdvisorConfig struct {
	APIKey  string        `yaml:"-" env:"OPENAI_API_KEY"`
	BaseURL string        `yaml:"base_url" env:"TILES_AI_BASE_URL"`
	Model   string        `yaml:"model" env:"TILES_AI_MODEL"`
	Timeout time.Duration `yaml:"timeout" env:"TILES_AI_TIMEOUT"`
}

// Validation errors.
var (
	ErrBoardSize    = errors.New("board size must be at least 2")
	ErrTileCount    = errors.New("tile counts must not be negative")
	ErrWinNumber    = errors.New("win number must be 0 or a power of two")
	ErrAdvisorModel = errors.New("advisor model must not be empty")
)

// Validate checks that the board parameters describe a playable board.
func (c BoardConfig) Validate() error {
	if c.Size < 2 {
		return fmt.Errorf("config: %w (got %d)", ErrBoardSize, c.Size)
	}
	if c.InitialTiles < 0 || c.NewTiles < 0 {
		return fmt.Errorf("config: %w", ErrTileCount)
	}
	if c.WinNumber != 0 && !isPowerOfTwo(c.WinNumber) {
		return fmt.Errorf("config: %w (got %d)", ErrWinNumber, c.WinNumber)
	}
	return nil
}

// Settings maps the config onto engine settings without callbacks.
func (c BoardConfig) Settings() board.Settings {
	return board.Settings{
		Size:         c.Size,
		WinNumber:    c.WinNumber,
		InitialTiles: c.InitialTiles,
		NewTiles:     c.NewTiles,
	}
}

// Validate checks the whole configuration.
func (c Config) Validate() error {
	if err := c.Board.Validate(); err != nil {
		return err
	}
	if c.Advisor.Model == "" {
		return fmt.Errorf("config: %w", ErrAdvisorModel)
	}
	return nil
}

func isPowerOfTwo(n int) bool {
	return n >= 2 && n&(n-1) == 0
}
