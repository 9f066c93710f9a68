package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var scoreModes = []registry.GameInfo{
	{ID: "m1", Title: "Mode 1"},
	{ID: "m2", Title: "Mode 2"},
	{ID: "m3", Title: "Mode 3"},
}

func sendScores(m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	next, _ := m.Update(msg)
	return next.(ScoreboardModel)
}

func TestScoreboardCyclesModes(t *testing.T) {
	store := openStore(t)
	for _, s := range []int{100, 300, 200} {
		_, err := store.SaveScore("m1", s, s/100, 1)
		require.NoError(t, err)
	}
	_, err := store.SaveScore("m2", 50, 0, 1)
	require.NoError(t, err)

	m := NewScoreboardModel(store, scoreModes, 100, 30)
	assert.Equal(t, "m1", m.Selected())
	require.Len(t, m.Scores(), 3)
	assert.Equal(t, 300, m.Scores()[0].Score)
	assert.Contains(t, m.View(), "HIGH SCORES - Mode 1")

	m = sendScores(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "m2", m.Selected())
	assert.Len(t, m.Scores(), 1)

	m = sendScores(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = sendScores(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "m3", m.Selected(), "wraps around")
	assert.Empty(t, m.Scores())
	assert.Contains(t, m.View(), "No scores recorded yet")
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, scoreModes, 60, 20)
	assert.Empty(t, m.Scores())
	assert.Contains(t, m.View(), "< Mode 1 >")
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, scoreModes, 100, 30)

	back := sendScores(m, runes("b"))
	assert.True(t, back.IsGoingBack())

	next, cmd := m.Update(runes("q"))
	assert.True(t, next.(ScoreboardModel).IsQuitting())
	assert.NotNil(t, cmd)
}
