package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/games/t2048"
	"github.com/vovakirdan/tui-tiles/internal/platform/tui"
	"github.com/vovakirdan/tui-tiles/internal/registry"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode. Without a mode a picker is shown first.

Controls:
  Arrows/WASD/hjkl  - Slide the tiles
  ?                 - Ask the AI for a move
  M                 - Cycle the AI model
  P/Space           - Pause
  R                 - New game (saves the current run)
  Q/Ctrl+C          - Quit

Examples:
  tiles play
  tiles play 2048
  tiles play 2048_campaign --level 4
  tiles play 2048_endless --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start at (1-indexed)")
}

func runPlay(_ *cobra.Command, args []string) error {
	a, err := setup(io.Discard)
	if err != nil {
		return err
	}
	defer a.close()

	cfg := a.runtimeConfig()
	gameID := t2048.IDClassic
	startLevel := flagLevel

	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown mode %q (run 'tiles list' to see available modes)", gameID)
		}
	} else {
		result, err := pickMode(a, cfg)
		if err != nil {
			return err
		}
		if result.Quit || result.GameID == "" {
			return nil
		}
		cfg = result.Config
		gameID = result.GameID
		startLevel = result.StartLevel
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	if g, ok := game.(*t2048.Game); ok && startLevel > 0 {
		g.StartAt(startLevel)
	}

	a.openStore()
	a.logger.Info("game started", "game", gameID, "level", startLevel)
	return tui.Run(game, cfg, a.deps())
}

// pickMode shows the menu until a mode is chosen or the user quits.
// The scoreboard opened from the menu returns to it on back.
func pickMode(a *app, cfg core.RuntimeConfig) (tui.MenuResult, error) {
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil || !result.WantsScoreboard {
			return result, err
		}
		cfg = result.Config

		a.openStore()
		if a.store == nil {
			return result, fmt.Errorf("scoreboard unavailable: cannot open %s", flagDBPath)
		}
		goBack, err := tui.RunScoreboard(a.store, cfg.ScreenW, cfg.ScreenH)
		if err != nil {
			return result, err
		}
		if !goBack {
			return tui.MenuResult{Config: cfg, Quit: true}, nil
		}
	}
}
