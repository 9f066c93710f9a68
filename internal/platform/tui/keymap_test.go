package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/settings"
)

func TestGameKeysDefaults(t *testing.T) {
	keys := NewGameKeys(settings.Defaults().Keys)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runes("a"), core.ActionLeft},
		{"d", runes("d"), core.ActionRight},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionSoftDrop},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionHardDrop},
		{"h", runes("h"), core.ActionHold},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause},
		{"p", runes("p"), core.ActionPause},
		{"n", runes("n"), core.ActionRestart},
		{"unbound", runes("x"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, keys.Map(tc.msg))
		})
	}
}

func TestGameKeysFollowSettings(t *testing.T) {
	s := settings.Defaults()
	require.NoError(t, s.Set("keys.hard_drop", "x, enter"))

	keys := NewGameKeys(s.Keys)

	assert.Equal(t, core.ActionHardDrop, keys.Map(runes("x")))
	assert.Equal(t, core.ActionHardDrop, keys.Map(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, core.ActionNone, keys.Map(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}))

	b, ok := keys.Binding(core.ActionHardDrop)
	require.True(t, ok)
	assert.Equal(t, "x/enter", b.Help().Key)
	assert.Equal(t, "hard drop", b.Help().Desc)
}

func TestGameKeysSkipUnboundActions(t *testing.T) {
	b := settings.Defaults().Keys
	delete(b, core.ActionHold)

	keys := NewGameKeys(b)

	_, ok := keys.Binding(core.ActionHold)
	assert.False(t, ok)
	assert.Equal(t, core.ActionNone, keys.Map(runes("h")))
}

func TestGameKeysQuit(t *testing.T) {
	keys := NewGameKeys(settings.Defaults().Keys)
	assert.True(t, key.Matches(runes("q"), keys.Quit))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, keys.Quit))
	assert.False(t, key.Matches(runes("a"), keys.Quit))
}

func TestGameKeysHelp(t *testing.T) {
	keys := NewGameKeys(settings.Defaults().Keys)

	full := keys.FullHelp()
	require.Len(t, full, 3)
	assert.Len(t, full[0], 4, "movement")
	assert.Len(t, full[1], 4, "hold, hard drop, pause, restart")

	var descs []string
	for _, b := range keys.ShortHelp() {
		descs = append(descs, b.Help().Desc)
	}
	assert.Equal(t, []string{"pause", "new game", "menu", "quit"}, descs)
}

func TestMenuKeys(t *testing.T) {
	keys := DefaultMenuKeys()
	assert.True(t, key.Matches(runes("k"), keys.Up))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyDown}, keys.Down))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, keys.Select))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyTab}, keys.Scores))
	assert.Len(t, keys.ShortHelp(), 5)
}
