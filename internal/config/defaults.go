package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-tiles/internal/board"
)

//go:embed defaults/tiles.yaml
var defaultTilesYAML []byte

// DefaultConfig returns the hardcoded configuration.
func DefaultConfig() Config {
	return Config{
		Board: DefaultBoardConfig(),
		Advisor: AdvisorConfig{
			BaseURL: "https://api.openai.com/v1",
			Model:   "gpt-4.1-nano",
			Timeout: 30 * time.Second,
		},
	}
}

// playNewTiles is how many tiles the game spawns per move. The engine
// default is two.
const playNewTiles = 1

// DefaultBoardConfig returns the classic 4x4 board parameters.
func DefaultBoardConfig() BoardConfig {
	return BoardConfig{
		Size:         board.DefaultSize,
		WinNumber:    board.DefaultWinNumber,
		InitialTiles: board.DefaultInitialTiles,
		NewTiles:     playNewTiles,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTilesYAML
}
