package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick modes from a menu",
	Long: `Start with a mode picker. After a game you can go back to the menu
with B (while paused or after game over) and pick again, or open the
scoreboard with Tab.

Examples:
  tetris menu
  tetris menu --fps 30
  tetris menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts, err := loadOptions(store)
	if err != nil {
		return err
	}

	uiLog, closeLog, err := uiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	env := tui.SessionEnv{
		Store:   store,
		Logger:  uiLog,
		Options: opts,
		Modes:   modeInfos(),
	}
	if err := tui.RunSession(env, runtimeConfig()); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
