package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/settings"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change preferences",
	Long: `Show every preference, or get, set and reset them.

Keys:
  display.ghost, display.next, display.hold, display.controls  (true/false)
  game.start_level  (1-20, 0 for the configured level)
  keys.left, keys.right, keys.down, keys.rotate, keys.hold,
  keys.hard_drop, keys.pause, keys.restart  (comma-separated key names)

Examples:
  tetris settings
  tetris settings get keys.rotate
  tetris settings set keys.rotate "up,x"
  tetris settings set display.ghost false
  tetris settings reset`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withSettings(func(_ *storage.Store, s settings.Settings) error {
			for _, name := range settings.Names() {
				v, err := s.Get(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", name, v)
			}
			return nil
		})
	},
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one preference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSettings(func(_ *storage.Store, s settings.Settings) error {
			v, err := s.Get(args[0])
			if err != nil {
				return hintUnknown(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		})
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one preference",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return withSettings(func(store *storage.Store, s settings.Settings) error {
			if err := s.Set(args[0], args[1]); err != nil {
				return hintUnknown(err)
			}
			if err := settings.Save(store, s); err != nil {
				return err
			}
			logger.Info("setting saved", "key", args[0], "value", args[1])
			return nil
		})
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default preferences",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		// Stored values are not loaded, so an unreadable row can still be cleared.
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.ClearSettings(); err != nil {
			return err
		}
		logger.Info("settings reset to defaults")
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd, settingsSetCmd, settingsResetCmd)
}

// withSettings opens the store, loads the settings and runs fn.
func withSettings(fn func(*storage.Store, settings.Settings) error) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	s, err := settings.Load(store)
	if err != nil {
		return err
	}
	return fn(store, s)
}

func hintUnknown(err error) error {
	if errors.Is(err, settings.ErrUnknownKey) {
		return fmt.Errorf("%w, run 'tetris settings' to see the keys", err)
	}
	return err
}
