// Package tui runs games in a terminal with Bubble Tea, locally or over SSH.
// It owns the tick loop, key mapping and the menu, scoreboard and session
// screens around a game.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation step of the game model whose loop
// scheduled it.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var loopIDs atomic.Uint64

// nextLoop returns a fresh tick loop id. A tick left over from a game the
// player already left carries a stale id and is dropped.
func nextLoop() uint64 {
	return loopIDs.Add(1)
}

// tickCmd schedules the next tick at tickRate per second.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
