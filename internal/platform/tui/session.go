package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/rush-arcade/internal/core"
	"github.com/vovakirdan/rush-arcade/internal/registry"
)

// SessionModel manages the full arcade session flow: menu -> game -> menu.
// Each session owns its own games, so concurrent sessions share nothing.
type SessionModel struct {
	config    core.RuntimeConfig
	username  string
	sessionID string
	logger    *log.Logger
	menu      MenuModel
	gameModel *GameModel
	quitting  bool
}

// NewSessionModel creates a new session model with a fresh session ID.
func NewSessionModel(cfg core.RuntimeConfig, username string, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.Default()
	}
	sessionID := uuid.NewString()

	return SessionModel{
		config:    cfg,
		username:  username,
		sessionID: sessionID,
		logger:    logger.With("session", sessionID),
		menu:      NewMenuModel(cfg),
	}
}

// ID returns the session identifier.
func (m SessionModel) ID() string {
	return m.sessionID
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	game, err := registry.Create(selected.GameID)
	if err != nil {
		m.logger.Error("cannot start game", "game", selected.GameID, "error", err)
		m.menu = NewMenuModel(m.config)
		return m, nil
	}

	m.config = m.menu.Config()
	gameModel := NewGameModel(game, m.config, m.logger.With("user", m.username))
	m.gameModel = &gameModel

	// The menu quit the program when selecting; swallow that and start the game.
	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		m.menu = NewMenuModel(m.config)
		return m, m.menu.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.gameModel != nil {
		return m.gameModel.View()
	}
	return m.menu.View()
}

// InGame reports whether a game is currently running in this session.
func (m SessionModel) InGame() bool {
	return m.gameModel != nil
}

// RunSession runs the menu -> game -> menu flow in the local terminal.
func RunSession(cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(NewSessionModel(cfg, "local", logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: run session: %w", err)
	}
	return nil
}
