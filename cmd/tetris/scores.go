package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the best games of a mode, or a summary of every mode when
no mode is given.

Examples:
  tetris scores
  tetris scores tetris_5m
  tetris scores tetris --limit 20
  tetris scores tetris_10m --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every score of the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		return printSummary(out, store)
	}

	mode := args[0]
	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q, run 'tetris list' to see the modes", mode)
	}
	if flagScoresClear {
		if err := store.ClearScores(mode); err != nil {
			return err
		}
		logger.Info("scores cleared", "mode", mode)
		return nil
	}
	return printScores(out, store, mode)
}

func printScores(out io.Writer, store *storage.Store, mode string) error {
	scores, err := store.TopScores(mode, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", modeTitle(mode))
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintf(out, "\nPlay 'tetris play %s' to set the first high score!\n", mode)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-6s  %-6s  %s\n", "Rank", "Score", "Lines", "Level", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-6s  %-6s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %-6d  %-6d  %s\n",
			i+1, e.Score, e.Lines, e.Level, e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func printSummary(out io.Writer, store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "  %-16s  %6s  %10s  %10s  %6s  %s\n", "Mode", "Games", "Best", "Average", "Level", "Last played")
	for _, m := range tetris.Modes {
		st, ok := stats[m.ID]
		if !ok {
			fmt.Fprintf(out, "  %-16s  %6d  %10s  %10s  %6s  %s\n", m.Title, 0, "-", "-", "-", "never")
			continue
		}
		fmt.Fprintf(out, "  %-16s  %6d  %10d  %10.0f  %6d  %s\n",
			m.Title, st.GamesCount, st.HighScore, st.AvgScore, st.BestLevel, st.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func modeTitle(id string) string {
	for _, m := range tetris.Modes {
		if m.ID == id {
			return m.Title
		}
	}
	return id
}
