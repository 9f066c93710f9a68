package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuItem is one selectable mode with its best score.
type MenuItem struct {
	ID        string
	Title     string
	HighScore int
}

// MenuModel is the mode picker. The last row opens the scoreboard.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	keys           MenuKeys
	gameKeys       GameKeys
	help           help.Model
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel creates a menu listing env.Modes.
func NewMenuModel(env SessionEnv, width, height int) MenuModel {
	items := make([]MenuItem, 0, len(env.Modes))
	for _, g := range env.Modes {
		item := MenuItem{ID: g.ID, Title: g.Title}
		if env.Store != nil {
			// A failed lookup shows no best score.
			item.HighScore, _ = env.Store.HighScore(g.ID)
		}
		items = append(items, item)
	}

	h := help.New()
	h.Width = width
	return MenuModel{
		items:    items,
		width:    width,
		height:   height,
		keys:     DefaultMenuKeys(),
		gameKeys: NewGameKeys(env.Options.Settings.Keys),
		help:     h,
	}
}

// Init initializes the menu.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items) {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Scores):
		m.openScoreboard = true

	case key.Matches(msg, m.keys.Select):
		if m.cursor == len(m.items) {
			m.openScoreboard = true
			break
		}
		selected := m.items[m.cursor]
		m.selected = &selected
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("T E T R I S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render("Select a mode"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("%-18s", item.Title)
		if item.HighScore > 0 {
			line += fmt.Sprintf(" best %d", item.HighScore)
		}
		b.WriteString(centerText(m.row(i, line), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(m.row(len(m.items), "High Scores"), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(menuDimStyle.Render("Controls"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.help.FullHelpView(m.gameKeys.FullHelp()), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m MenuModel) row(i int, text string) string {
	if i == m.cursor {
		return menuCursorStyle.Render("> " + text)
	}
	return "  " + text
}

// Selected returns the chosen mode, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the player quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the scoreboard was requested.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Items returns the listed modes.
func (m MenuModel) Items() []MenuItem {
	return m.items
}

// ModeInfos returns registered modes in the order of ids.
func ModeInfos(ids []string) []registry.GameInfo {
	all := registry.List()
	out := make([]registry.GameInfo, 0, len(ids))
	for _, id := range ids {
		for _, g := range all {
			if g.ID == id {
				out = append(out, g)
			}
		}
	}
	return out
}
