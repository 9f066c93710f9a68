package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/settings"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// openStore opens the database. Games still run without one, so a failure
// only warns.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// loadOptions reads the game config, applies --difficulty and loads the
// player's settings from store.
func loadOptions(store *storage.Store) (registry.Options, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return registry.Options{}, err
	}
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return registry.Options{}, err
	}
	config.ApplyTetrisPreset(&cfg, preset)

	s := settings.Defaults()
	if store != nil {
		if s, err = settings.Load(store); err != nil {
			logger.Warn("could not load settings, using defaults", "error", err)
			s = settings.Defaults()
		}
	}
	if preset != "" {
		s.StartLevel = 0
	}

	logger.Debug("options loaded",
		"width", cfg.Board.Width,
		"height", cfg.Board.Height,
		"start_level", cfg.Level.Start,
		"progression", cfg.Level.Progression,
		"preview", cfg.Preview.Count,
		"settings_start_level", s.StartLevel,
	)
	return registry.Options{Config: cfg, Settings: s}, nil
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func modeInfos() []registry.GameInfo {
	ids := make([]string, len(tetris.Modes))
	for i, m := range tetris.Modes {
		ids[i] = m.ID
	}
	return tui.ModeInfos(ids)
}

// uiLogger returns a logger for code running inside the full-screen UI,
// where stderr would corrupt the display. With --verbose it appends to
// ~/.arcade/tetris.log; otherwise it is nil.
func uiLogger() (*log.Logger, func(), error) {
	if !flagVerbose {
		return nil, func() {}, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	path := filepath.Join(home, ".arcade", "tetris.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	l := log.NewWithOptions(f, log.Options{ReportTimestamp: true, Prefix: "tetris", Level: log.DebugLevel})
	return l, func() { f.Close() }, nil
}
