package tui

import (
	"os"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// playRecord counts finished games for one stored play session.
// The count is read from another goroutine when an SSH connection closes.
type playRecord struct {
	id    string
	games atomic.Int64
}

// startRecord opens a session row. It returns a record even without a
// store so callers can count games unconditionally.
func startRecord(store *storage.Store, origin, user string, logger *log.Logger) *playRecord {
	r := &playRecord{}
	if store == nil {
		return r
	}
	id, err := store.StartSession(origin, user)
	if err != nil {
		if logger != nil {
			logger.Warn("could not start session", "user", user, "error", err)
		}
		return r
	}
	r.id = id
	return r
}

// finish closes the session row with the number of finished games.
func (r *playRecord) finish(store *storage.Store, logger *log.Logger) {
	if store == nil || r.id == "" {
		return
	}
	if err := store.EndSession(r.id, int(r.games.Load())); err != nil && logger != nil {
		logger.Warn("could not end session", "session", r.id, "error", err)
	}
}

func localUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

// SessionEnv is what a session needs from the process hosting it.
type SessionEnv struct {
	Store   *storage.Store // May be nil: nothing is persisted
	Logger  *log.Logger    // May be nil
	Options registry.Options
	Modes   []registry.GameInfo // Menu entries in display order
}

type screenView int

const (
	viewMenu screenView = iota
	viewGame
	viewScores
)

// SessionModel runs the menu, game and scoreboard screens in turn.
// It is the top-level model for both local and SSH play.
type SessionModel struct {
	env      SessionEnv
	config   core.RuntimeConfig
	record   *playRecord
	view     screenView
	menu     MenuModel
	game     GameModel
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a session starting at the menu.
func NewSessionModel(env SessionEnv, cfg core.RuntimeConfig, record *playRecord) SessionModel {
	return SessionModel{
		env:    env,
		config: cfg,
		record: record,
		menu:   NewMenuModel(env, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.env.Store, m.env.Modes, m.config.ScreenW, m.config.ScreenH)
		m.view = viewScores
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		game, err := registry.Create(m.menu.Selected().ID, m.env.Options)
		if err != nil {
			if m.env.Logger != nil {
				m.env.Logger.Error("could not create game", "mode", m.menu.Selected().ID, "error", err)
			}
			m.menu = NewMenuModel(m.env, m.config.ScreenW, m.config.ScreenH)
			return m, nil
		}
		cfg := m.config
		cfg.Seed = 0
		m.game = NewGameModel(game, m.env.Store, cfg, m.env.Options.Settings, m.env.Logger, m.record)
		m.view = viewGame
		return m, m.game.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(GameModel)

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.view = viewMenu
	m.menu = NewMenuModel(m.env, m.config.ScreenW, m.config.ScreenH)
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(env SessionEnv, cfg core.RuntimeConfig) error {
	record := startRecord(env.Store, "local", localUser(), env.Logger)
	defer record.finish(env.Store, env.Logger)

	_, err := tea.NewProgram(NewSessionModel(env, cfg, record), tea.WithAltScreen()).Run()
	return err
}
