package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rush-arcade/internal/core"
	"github.com/vovakirdan/rush-arcade/internal/registry"
)

// GameModel is the Bubble Tea model that drives one game.
//
// Every tick loop carries a generation number. Starting a new loop takes a
// fresh generation, so any tick still in flight from an earlier loop is
// dropped on arrival. When the game reports Halted the model stops
// scheduling ticks until a restart or confirm key arrives.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	logger     *log.Logger

	gen     uint64
	ticking bool

	standalone bool // Back quits instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given game. A nil logger falls back
// to the default charmbracelet logger.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.Default()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		logger:     logger.With("game", game.ID()),
		gen:        nextGeneration(),
		ticking:    true,
	}
}

// Init resets the game and starts the first tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "seed", m.config.Seed, "tickRate", m.config.TickRate)
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Games draw in world units scaled to the screen, so a resize
		// keeps the session running.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	var (
		action core.Action
		text   []rune
		quit   bool
	)
	textMode := m.acceptsText()
	if textMode {
		action, text, quit = m.keyMapper.MapTextKey(msg)
	} else {
		action, quit = m.keyMapper.MapKey(msg)
	}

	if quit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack && (textMode || m.gameState.GameOver || m.gameState.Paused) {
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	}

	if !m.ticking {
		if action == core.ActionRestart || action == core.ActionConfirm {
			m.inputFrame.Clear()
			m.inputFrame.Set(action)
			return m.rearm()
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	if len(text) > 0 {
		m.inputFrame.Type(text...)
	}
	return m, nil
}

// rearm starts a fresh tick loop, invalidating any tick still in flight.
func (m GameModel) rearm() (tea.Model, tea.Cmd) {
	m.gen = nextGeneration()
	m.ticking = true
	m.logger.Debug("tick loop re-armed", "gen", m.gen)
	return m, tickCmd(m.config.TickRate, m.gen)
}

// handleTick processes one simulation tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if o, ok := m.game.(registry.Observer); ok {
		if fields := o.LogFields(); len(fields) > 0 {
			m.logger.Debug("tick", fields...)
		}
	}
	if m.gameState.GameOver && !wasOver {
		m.logger.Info("game over", "score", m.gameState.Score)
	}

	if h, ok := m.game.(registry.Halter); ok && h.Halted() {
		m.ticking = false
		return m, nil
	}

	return m, tickCmd(m.config.TickRate, m.gen)
}

func (m GameModel) acceptsText() bool {
	tg, ok := m.game.(registry.TextGame)
	return ok && tg.AcceptsText()
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Ticking reports whether a tick loop is currently scheduled.
func (m GameModel) Ticking() bool {
	return m.ticking
}

// Generation returns the current tick loop generation.
func (m GameModel) Generation() uint64 {
	return m.gen
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal until the user quits.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, cfg, logger)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: run %s: %w", game.ID(), err)
	}
	return nil
}
