package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode, the endless marathon by default.

Default controls (change them with "tetris settings set"):
  Left/A, Right/D  - Move
  Up/W             - Rotate
  Down/S           - Soft drop (1 point per row)
  Space            - Hard drop
  H                - Hold
  Esc/P            - Pause
  N                - New game
  Q/Ctrl+C         - Quit

Difficulty presets:
  easy   - Start at level 1
  normal - Start at level 5
  hard   - Start at level 10
  fixed  - Keep the configured start level for the whole game

Examples:
  tetris play
  tetris play tetris_5m
  tetris play --difficulty hard
  tetris play --config ./my-tetris.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	mode := tetris.DefaultModeID
	if len(args) == 1 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q, run 'tetris list' to see the modes", mode)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts, err := loadOptions(store)
	if err != nil {
		return err
	}
	game, err := registry.Create(mode, opts)
	if err != nil {
		return err
	}

	uiLog, closeLog, err := uiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Debug("starting game", "mode", mode, "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(game, store, runtimeConfig(), opts.Settings, uiLog); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
