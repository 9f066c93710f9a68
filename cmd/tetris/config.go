package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the game config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default config file",
	Long: `Write the built-in configuration as YAML so it can be edited.
Without a path the file goes to ~/.arcade/configs/tetris.yaml, which is
read automatically. An existing file is never overwritten.

Environment variables override the file, e.g. TETRIS_BOARD_WIDTH=12 or
TETRIS_LEVEL_START=5.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path := config.DefaultUserPath()
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		logger.Info("config written", "path", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadTetris(flagConfig)
		if err != nil {
			return err
		}
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyTetrisPreset(&cfg, preset)
		return config.Encode(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	configCmd.AddCommand(configInitCmd, configShowCmd)
}
