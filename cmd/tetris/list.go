package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()

	maxIDLen := len("ID")
	for _, m := range tetris.Modes {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Fprintf(out, "  %-*s  %-16s  %s\n", maxIDLen, "ID", "Title", "Time limit")
	fmt.Fprintf(out, "  %-*s  %-16s  %s\n", maxIDLen, "--", "-----", "----------")
	for _, m := range tetris.Modes {
		limit := "none"
		if m.Timed() {
			limit = m.TimeLimit.String()
		}
		fmt.Fprintf(out, "  %-*s  %-16s  %s\n", maxIDLen, m.ID, m.Title, limit)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'tetris play <id>' to play a mode.")
}
