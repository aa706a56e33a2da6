package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tiles/internal/advisor"
	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/games/t2048"
	"github.com/vovakirdan/tui-tiles/internal/platform/tui"
	"github.com/vovakirdan/tui-tiles/internal/storage"
)

// app holds what every command builds from flags, env and config.
type app struct {
	cfg     config.Config
	logger  *log.Logger
	logFile *os.File
	store   *storage.Store
	advisor advisor.Advisor
}

// setup loads .env, the config file and env overrides, then builds the
// logger and the advisor. logOut is used when --log is not set.
func setup(logOut io.Writer) (*app, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	t2048.SetBoardConfig(cfg.Board)

	a := &app{cfg: cfg}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		a.logFile = f
		logOut = f
	}
	a.logger = log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Prefix:          "tiles",
	})

	client, err := advisor.New(advisor.Config{
		APIKey:  cfg.Advisor.APIKey,
		BaseURL: cfg.Advisor.BaseURL,
		Timeout: cfg.Advisor.Timeout,
		Logger:  a.logger.WithPrefix("advisor"),
	})
	switch {
	case errors.Is(err, advisor.ErrNoAPIKey):
		a.logger.Warn("AI hints disabled", "reason", err)
	case err != nil:
		return nil, err
	default:
		a.advisor = client
	}

	return a, nil
}

// openStore opens the score database. Failure is a warning; play goes on.
func (a *app) openStore() {
	if a.store != nil {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return
	}
	a.store = store
}

func (a *app) deps() tui.Deps {
	return tui.Deps{
		Store:   a.store,
		Advisor: a.advisor,
		AIModel: a.cfg.Advisor.Model,
		Logger:  a.logger,
	}
}

// runtimeConfig sizes the game to the current terminal.
func (a *app) runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func (a *app) close() {
	if a.store != nil {
		a.store.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}
