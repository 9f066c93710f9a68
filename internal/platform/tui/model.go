package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/settings"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// resizer is implemented by games that can adapt to a new screen size
// without starting over.
type resizer interface {
	Resize(w, h int)
}

// GameModel is the Bubble Tea model that drives one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	record     *playRecord
	config     core.RuntimeConfig
	loop       uint64
	keys       GameKeys
	input      core.InputFrame
	state      core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Set once the finished game has been recorded
}

// NewGameModel creates a model for game. store, logger and record may be nil.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, s settings.Settings, logger *log.Logger, record *playRecord) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return GameModel{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		logger: logger,
		record: record,
		config: cfg,
		loop:   nextLoop(),
		keys:   NewGameKeys(s.Keys),
		input:  core.NewInputFrame(),
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Back) && (m.state.GameOver || m.state.Paused):
		m.backToMenu = true
		return m, nil
	}

	if a := m.keys.Map(msg); a != core.ActionNone {
		m.input.Set(a)
	}
	return m, nil
}

func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.state.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}
	if m.input.Has(core.ActionRestart) {
		m.scoreSaved = false
	}

	m.state = m.game.Step(m.input).State
	if m.state.GameOver && !m.scoreSaved {
		m.finishGame()
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate, m.loop)
}

// finishGame records a finished game once.
func (m *GameModel) finishGame() {
	m.scoreSaved = true
	if m.record != nil {
		m.record.games.Add(1)
	}
	if m.store == nil || m.state.Score == 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.state.Score, m.state.Lines, m.state.Level); err != nil && m.logger != nil {
		m.logger.Warn("could not save score", "mode", m.game.ID(), "error", err)
	}
}

// saveScreenshot writes the current screen as plain text under ~/.arcade/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, the game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the state after the last tick.
func (m GameModel) State() core.GameState {
	return m.state
}

// IsQuitting reports whether the player asked to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player asked for the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game in the terminal until the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, s settings.Settings, logger *log.Logger) error {
	record := startRecord(store, "local", localUser(), logger)
	defer record.finish(store, logger)

	model := NewGameModel(game, store, cfg, s, logger, record)
	model.keys.Back.SetEnabled(false)

	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
