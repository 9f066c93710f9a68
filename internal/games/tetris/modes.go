package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode is a registered game variant. Each has its own score table.
type Mode struct {
	ID        string
	Title     string
	TimeLimit time.Duration // Zero means play until top-out
}

// Timed reports whether the mode ends on a countdown.
func (m Mode) Timed() bool {
	return m.TimeLimit > 0
}

// Modes lists the marathon and the timed variants.
var Modes = []Mode{
	{ID: "tetris", Title: "Tetris"},
	{ID: "tetris_5m", Title: "Tetris (5 min)", TimeLimit: 5 * time.Minute},
	{ID: "tetris_10m", Title: "Tetris (10 min)", TimeLimit: 10 * time.Minute},
	{ID: "tetris_15m", Title: "Tetris (15 min)", TimeLimit: 15 * time.Minute},
	{ID: "tetris_20m", Title: "Tetris (20 min)", TimeLimit: 20 * time.Minute},
}

// DefaultModeID is the mode played when none is named.
const DefaultModeID = "tetris"

func init() {
	for _, m := range Modes {
		registry.Register(m.ID, func(opts registry.Options) registry.Game {
			return New(m, opts)
		})
	}
}
