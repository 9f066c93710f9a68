package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func menuEnv(t *testing.T) SessionEnv {
	store := openStore(t)
	_, err := store.SaveScore("m1", 500, 5, 2)
	require.NoError(t, err)
	return SessionEnv{
		Store:   store,
		Options: registry.DefaultOptions(),
		Modes: []registry.GameInfo{
			{ID: "m1", Title: "Mode 1"},
			{ID: "m2", Title: "Mode 2"},
		},
	}
}

func sendMenu(m MenuModel, msg tea.Msg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuListsModesWithHighScores(t *testing.T) {
	m := NewMenuModel(menuEnv(t), 80, 24)

	items := m.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 500, items[0].HighScore)
	assert.Zero(t, items[1].HighScore)

	out := m.View()
	assert.Contains(t, out, "Mode 1")
	assert.Contains(t, out, "best 500")
	assert.Contains(t, out, "High Scores")
	assert.Contains(t, out, "hard drop")
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(menuEnv(t), 80, 24)

	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor, "stays at the top")

	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyDown})
	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.Selected())
	assert.Equal(t, "m2", m.Selected().ID)
}

func TestMenuLastRowOpensScoreboard(t *testing.T) {
	m := NewMenuModel(menuEnv(t), 80, 24)

	for range 5 {
		m = sendMenu(m, runes("j"))
	}
	assert.Equal(t, 2, m.cursor, "cursor stops on the scoreboard row")

	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.WantsScoreboard())
	assert.Nil(t, m.Selected())
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(menuEnv(t), 80, 24)
	next, cmd := m.Update(runes("q"))
	assert.True(t, next.(MenuModel).IsQuitting())
	assert.NotNil(t, cmd)
}
