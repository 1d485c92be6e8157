// Package typing implements Typing Rush: type the word on screen before its
// countdown runs out. Every correct word scores a point and resets the clock.
package typing

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/rush-arcade/internal/config"
	"github.com/vovakirdan/rush-arcade/internal/core"
	"github.com/vovakirdan/rush-arcade/internal/registry"
)

// maxInputLen caps the input buffer so a stuck key cannot grow it forever.
const maxInputLen = 64

// Game adapts a Session to the platform's tick loop.
type Game struct {
	session   *Session
	countdown Countdown
	input     []rune
	cfg       config.TypingConfig
	runtime   core.RuntimeConfig
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Typing Rush game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "typing"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Typing Rush"
}

// AcceptsText tells the platform to forward printable keys as text.
func (g *Game) AcceptsText() bool {
	return true
}

// Reset prepares an idle session. The round starts on Confirm.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg := config.LoadTypingOrDefault(configPath)
	g.cfg = cfg

	g.session = NewSession(cfg, runtime.Seed)
	g.countdown = NewCountdown(runtime.TickRate)
	g.input = g.input[:0]
}

// Step applies typed text, then advances the countdown by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.session.Running {
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.start()
		}
		return core.StepResult{State: g.State()}
	}

	if !in.Empty() {
		g.applyInput(in)
	}

	if g.session.Running && g.countdown.Advance() {
		g.session.TickSecond()
	}

	return core.StepResult{State: g.State()}
}

// applyInput edits the buffer. Every keystroke is checked on its own, so a
// match in the middle of a burst moves on before the remaining keys apply.
func (g *Game) applyInput(in core.InputFrame) {
	if in.Has(core.ActionBackspace) && len(g.input) > 0 {
		g.input = g.input[:len(g.input)-1]
		g.submit()
	}

	for _, r := range in.Text {
		if len(g.input) >= maxInputLen {
			break
		}
		g.input = append(g.input, r)
		g.submit()
	}
}

func (g *Game) start() {
	g.session.Start()
	g.countdown.Restart()
	g.input = g.input[:0]
}

// submit hands the current input to the session and clears it on a match.
func (g *Game) submit() {
	if g.session.OnInput(string(g.input)) {
		g.input = g.input[:0]
		g.countdown.Restart()
	}
}

// Halted reports that no round is running, so ticks can stop.
func (g *Game) Halted() bool {
	return g.session != nil && !g.session.Running
}

// Session exposes the underlying round.
func (g *Game) Session() *Session {
	return g.session
}

// Input returns the text typed so far for the current word.
func (g *Game) Input() string {
	return string(g.input)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	mid := dst.Height() / 2
	s := g.session

	dst.DrawTextCentered(1, "T Y P I N G   R U S H", core.ColorCyan)
	dst.DrawText(2, 3, fmt.Sprintf(" Score: %d ", s.Score))
	timeText := fmt.Sprintf(" Time: %ds ", s.SecondsRemaining)
	timeColor := core.ColorDefault
	if s.Running && s.SecondsRemaining <= 3 {
		timeColor = core.ColorBrightRed
	}
	dst.DrawTextColor(dst.Width()-len(timeText)-2, 3, timeText, timeColor)

	switch {
	case s.Running:
		dst.DrawTextCentered(mid-2, s.TargetWord, core.ColorBrightYellow)
		g.drawInput(dst, mid)
		dst.DrawTextCentered(dst.Height()-2, "Type the word  |  Esc: menu", core.ColorGray)
	case s.Ended():
		dst.DrawMessageBox(
			fmt.Sprintf("Game over! Your score was %d.", s.Score),
			"Press Enter to play again",
			core.ColorBrightRed,
		)
	default:
		dst.DrawMessageBox("TYPING RUSH", "Press Enter to start", core.ColorCyan)
	}
}

// drawInput draws the typed text, green while it is a prefix of the target.
func (g *Game) drawInput(dst *core.Screen, y int) {
	typed := string(g.input)
	color := core.ColorBrightGreen
	if !strings.HasPrefix(g.session.TargetWord, normalize(typed)) {
		color = core.ColorRed
	}

	field := "> " + typed + "_"
	x := core.Clamp((dst.Width()-utf8.RuneCountInString(field))/2, 0, dst.Width())
	dst.DrawText(x, y, "> ")
	dst.DrawTextColor(x+2, y, typed, color)
	dst.Set(x+2+len(g.input), y, '_')
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score,
		GameOver: g.session.Ended(),
	}
}

// Register the game with the registry
func init() {
	registry.Register("typing", func() registry.Game {
		return New()
	})
}
