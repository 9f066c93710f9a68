package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/settings"
)

var actionHelp = map[core.Action]string{
	core.ActionLeft:     "left",
	core.ActionRight:    "right",
	core.ActionSoftDrop: "soft drop",
	core.ActionHardDrop: "hard drop",
	core.ActionRotate:   "rotate",
	core.ActionHold:     "hold",
	core.ActionPause:    "pause",
	core.ActionRestart:  "new game",
}

type actionBinding struct {
	action  core.Action
	binding key.Binding
}

// GameKeys maps key presses to gameplay actions using the player's bindings.
// It implements help.KeyMap.
type GameKeys struct {
	actions []actionBinding
	Back    key.Binding // Leave to the menu while paused or after game over
	Quit    key.Binding
}

// NewGameKeys builds bindings from settings. Actions with no keys are left out.
func NewGameKeys(b settings.Bindings) GameKeys {
	k := GameKeys{
		Back: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "menu")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	for _, a := range core.GameplayActions() {
		names := b[a]
		if len(names) == 0 {
			continue
		}
		keys := make([]string, len(names))
		for i, n := range names {
			keys[i] = teaKey(n)
		}
		k.actions = append(k.actions, actionBinding{
			action:  a,
			binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(strings.Join(names, "/"), actionHelp[a])),
		})
	}
	return k
}

// teaKey converts a stored key name to the string Bubble Tea reports.
func teaKey(name string) string {
	if name == "space" {
		return " "
	}
	return name
}

// Map returns the action bound to msg, or ActionNone.
func (k GameKeys) Map(msg tea.KeyMsg) core.Action {
	for _, ab := range k.actions {
		if key.Matches(msg, ab.binding) {
			return ab.action
		}
	}
	return core.ActionNone
}

// Binding returns the binding of one action.
func (k GameKeys) Binding(a core.Action) (key.Binding, bool) {
	for _, ab := range k.actions {
		if ab.action == a {
			return ab.binding, true
		}
	}
	return key.Binding{}, false
}

// ShortHelp returns the bindings shown in the one-line help.
func (k GameKeys) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, a := range []core.Action{core.ActionPause, core.ActionRestart} {
		if b, ok := k.Binding(a); ok {
			out = append(out, b)
		}
	}
	return append(out, k.Back, k.Quit)
}

// FullHelp returns movement bindings and the rest in two columns.
func (k GameKeys) FullHelp() [][]key.Binding {
	var move, other []key.Binding
	for _, ab := range k.actions {
		switch ab.action {
		case core.ActionLeft, core.ActionRight, core.ActionSoftDrop, core.ActionRotate:
			move = append(move, ab.binding)
		default:
			other = append(other, ab.binding)
		}
	}
	return [][]key.Binding{move, other, {k.Back, k.Quit}}
}

// MenuKeys are the fixed bindings of the menu screen.
type MenuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// DefaultMenuKeys returns the menu bindings.
func DefaultMenuKeys() MenuKeys {
	return MenuKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
		Scores: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the one-line help.
func (k MenuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

// FullHelp returns the expanded help.
func (k MenuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Scores, k.Quit}}
}
