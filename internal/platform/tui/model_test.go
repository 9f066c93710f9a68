package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/settings"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func newTestModel(g *stubGame, store *storage.Store, record *playRecord) GameModel {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	m := NewGameModel(g, store, cfg, settings.Defaults(), nil, record)
	m.Init()
	return m
}

func send(m GameModel, msg tea.Msg) GameModel {
	next, _ := m.Update(msg)
	return next.(GameModel)
}

func tick(m GameModel) GameModel {
	return send(m, TickMsg{Loop: m.loop})
}

func TestGameModelFeedsKeysIntoNextTick(t *testing.T) {
	g := &stubGame{id: "stub"}
	m := newTestModel(g, nil, nil)
	require.Equal(t, 1, g.resets)

	m = send(m, runes("a"))
	m = send(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = tick(m)
	m = tick(m)

	require.Len(t, g.steps, 2)
	assert.True(t, g.steps[0].Has(core.ActionLeft))
	assert.True(t, g.steps[0].Has(core.ActionHardDrop))
	assert.True(t, g.steps[1].Empty(), "input is cleared after each tick")
}

func TestGameModelDropsStaleTicks(t *testing.T) {
	g := &stubGame{id: "stub"}
	m := newTestModel(g, nil, nil)

	m = send(m, TickMsg{Loop: m.loop + 1})

	assert.Empty(t, g.steps)
}

func TestGameModelBackOnlyWhenPausedOrOver(t *testing.T) {
	g := &stubGame{id: "stub"}
	m := newTestModel(g, nil, nil)

	m = send(m, runes("b"))
	assert.False(t, m.BackToMenu())

	g.state.Paused = true
	m = tick(m)
	m = send(m, runes("b"))
	assert.True(t, m.BackToMenu())

	m = tick(m)
	assert.Len(t, g.steps, 1, "no ticks after leaving")
}

func TestGameModelQuit(t *testing.T) {
	m := newTestModel(&stubGame{id: "stub"}, nil, nil)

	next, cmd := m.Update(runes("q"))

	assert.True(t, next.(GameModel).IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, next.(GameModel).View())
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	g := &stubGame{id: "stub"}
	m := newTestModel(g, nil, nil)

	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, []int{100, 40}, g.resized)
	assert.Equal(t, 1, g.resets)
	assert.Equal(t, 100, m.screen.Width())
}

func TestGameModelSavesFinishedGameOnce(t *testing.T) {
	store := openStore(t)
	record := &playRecord{}
	g := &stubGame{id: "stub"}
	m := newTestModel(g, store, record)

	g.state = core.GameState{Score: 1200, Lines: 14, Level: 3, GameOver: true}
	m = tick(m)
	m = tick(m)

	scores, err := store.TopScores("stub", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 1200, scores[0].Score)
	assert.Equal(t, 14, scores[0].Lines)
	assert.Equal(t, 3, scores[0].Level)
	assert.EqualValues(t, 1, record.games.Load())

	m = send(m, runes("n"))
	m = tick(m)
	scores, err = store.TopScores("stub", 10)
	require.NoError(t, err)
	assert.Len(t, scores, 2, "a restarted game is recorded again")
	assert.EqualValues(t, 2, record.games.Load())
	assert.True(t, m.State().GameOver)
}

func TestGameModelSkipsZeroScores(t *testing.T) {
	store := openStore(t)
	record := &playRecord{}
	g := &stubGame{id: "stub", state: core.GameState{GameOver: true}}
	m := newTestModel(g, store, record)

	tick(m)

	scores, err := store.TopScores("stub", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)
	assert.EqualValues(t, 1, record.games.Load())
}

func TestGameModelView(t *testing.T) {
	m := newTestModel(&stubGame{id: "stub"}, nil, nil)
	out := m.View()
	assert.Contains(t, out, "STUB")
	assert.Len(t, strings.Split(out, "\n"), 24)
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorDarkGray)
	s.DrawText(0, 1, "ef")

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, out, "ab")
	assert.Contains(t, out, "cd")
	assert.Contains(t, lines[1], "ef")
}
