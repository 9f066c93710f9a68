package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// lastStub is the game most recently created by the stub factory.
var lastStub *stubGame

const stubModeID = "tui_stub"

func stubEnv(t *testing.T) SessionEnv {
	t.Helper()
	if !registry.Exists(stubModeID) {
		registry.Register(stubModeID, func(registry.Options) registry.Game {
			lastStub = &stubGame{id: stubModeID}
			return lastStub
		})
	}
	return SessionEnv{
		Options: registry.DefaultOptions(),
		Modes:   ModeInfos([]string{stubModeID, "missing"}),
	}
}

func sendSession(m SessionModel, msg tea.Msg) SessionModel {
	next, _ := m.Update(msg)
	return next.(SessionModel)
}

func TestModeInfosKeepsOrderAndSkipsUnknown(t *testing.T) {
	env := stubEnv(t)
	require.Len(t, env.Modes, 1)
	assert.Equal(t, stubModeID, env.Modes[0].ID)
	assert.Equal(t, "Stub", env.Modes[0].Title)
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(stubEnv(t), core.DefaultConfig(), &playRecord{})
	assert.Contains(t, m.View(), "T E T R I S")

	m = sendSession(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, viewGame, m.view)
	require.NotNil(t, lastStub)
	assert.Equal(t, 1, lastStub.resets)
	assert.Contains(t, m.View(), "STUB")

	lastStub.state.GameOver = true
	m = sendSession(m, TickMsg{Loop: m.game.loop})
	m = sendSession(m, runes("b"))

	assert.Equal(t, viewMenu, m.view)
	assert.Nil(t, m.menu.Selected(), "menu starts fresh")
	assert.EqualValues(t, 1, m.record.games.Load())
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := NewSessionModel(stubEnv(t), core.DefaultConfig(), &playRecord{})

	m = sendSession(m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, viewScores, m.view)
	assert.Contains(t, m.View(), "HIGH SCORES")

	m = sendSession(m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.Equal(t, viewMenu, m.view)
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(stubEnv(t), core.DefaultConfig(), &playRecord{})

	next, cmd := m.Update(runes("q"))

	assert.True(t, next.(SessionModel).quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, next.(SessionModel).View())
}

func TestSessionTracksWindowSize(t *testing.T) {
	m := NewSessionModel(stubEnv(t), core.DefaultConfig(), &playRecord{})

	m = sendSession(m, tea.WindowSizeMsg{Width: 120, Height: 50})
	m = sendSession(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 120, m.game.config.ScreenW)
	assert.Equal(t, 50, m.game.screen.Height())
}

func TestPlayRecordWithoutStore(t *testing.T) {
	r := startRecord(nil, "local", "tester", nil)
	r.games.Add(2)
	r.finish(nil, nil)
	assert.Empty(t, r.id)
}

func TestPlayRecordPersists(t *testing.T) {
	store := openStore(t)

	r := startRecord(store, "ssh", "alice", nil)
	require.NotEmpty(t, r.id)
	r.games.Add(3)
	r.finish(store, nil)

	sessions, err := store.RecentSessions(5)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, r.id, sessions[0].ID)
	assert.Equal(t, 3, sessions[0].GamesPlayed)
}
