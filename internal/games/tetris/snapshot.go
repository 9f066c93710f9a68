package tetris

import "github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"

// Snapshot captures the game for determinism tests.
type Snapshot struct {
	Tick     uint64
	Mode     string
	Score    int
	Lines    int
	Level    int
	Pieces   int
	Active   engine.Piece
	Held     engine.Kind
	Next     engine.Kind
	Filled   int // Locked cells on the grid
	TimeLeft int // Ticks, timed modes only
	GameOver bool
	TimeUp   bool
	Paused   bool
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	st := g.eng.Stats()
	v := g.eng.SnapshotView()

	filled := 0
	for _, row := range g.eng.SnapshotGrid() {
		for _, c := range row {
			if c != engine.Empty {
				filled++
			}
		}
	}

	return Snapshot{
		Tick:     g.tick,
		Mode:     g.mode.ID,
		Score:    st.Score,
		Lines:    st.Lines,
		Level:    st.Level,
		Pieces:   st.Pieces,
		Active:   v.Active,
		Held:     v.Held,
		Next:     v.Next,
		Filled:   filled,
		TimeLeft: g.timeLeft,
		GameOver: g.gameOver,
		TimeUp:   g.timeUp,
		Paused:   g.paused,
	}
}
