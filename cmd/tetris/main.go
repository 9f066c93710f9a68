// tetris is a falling-block puzzle game for the terminal, playable locally
// or over SSH.
//
// Usage:
//
//	tetris list                   - List game modes
//	tetris play [mode]            - Play a mode (default: marathon)
//	tetris menu                   - Pick modes from a menu
//	tetris serve                  - Start the SSH server
//	tetris scores [mode]          - Show high scores
//	tetris settings [get|set|reset] - Show or change preferences
//	tetris config init [path]     - Write the default config file
//
// Global flags:
//
//	--fps <rate>          - Tick rate (default: 60)
//	--seed <value>        - RNG seed for reproducible games
//	--db <path>           - Database path (default: ~/.arcade/scores.db)
//	--config <path>       - Game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--verbose             - Debug logging
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "tetris"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `A falling-block puzzle game for the terminal.

Clear rows by filling them completely. Every cleared row scores, clearing
several at once scores more, and the pieces fall faster as the level rises.

Examples:
  tetris play
  tetris play tetris_5m --difficulty hard
  tetris menu
  tetris serve --ssh :2222
  tetris scores tetris_10m`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
			logger.SetReportTimestamp(true)
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(listCmd, playCmd, menuCmd, serveCmd, scoresCmd, settingsCmd, configCmd)
}
