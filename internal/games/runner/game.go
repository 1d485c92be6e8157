// Package runner implements Blaster Runner, a side-scrolling endless runner
// where the player jumps over obstacles or shoots them for bonus points.
package runner

import (
	"fmt"

	"github.com/vovakirdan/rush-arcade/internal/config"
	"github.com/vovakirdan/rush-arcade/internal/core"
	"github.com/vovakirdan/rush-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar     = '█'
	ObstacleChar   = '▓'
	ProjectileChar = '━'
	GroundChar     = '▒'
	GroundTopChar  = '═'
)

// Game adapts a World to the platform: it maps input to commands and
// draws the world onto the terminal screen.
type Game struct {
	world   *World
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
	paused  bool
	last    StepEvents
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Blaster Runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Blaster Runner"
}

// Reset creates a fresh world and starts it immediately.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg := config.LoadRunnerOrDefault(configPath)
	g.cfg = cfg

	g.world = NewWorld(cfg, runtime.Seed)
	g.world.Start()
	g.paused = false
	g.last = StepEvents{}
}

// Step applies this tick's input and advances the world by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.last = StepEvents{}
	if in.Has(core.ActionRestart) {
		g.world.Restart()
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if !g.world.Running() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionJump) {
		g.world.Jump()
	}
	if in.Has(core.ActionShoot) {
		g.world.Shoot()
	}

	g.last = g.world.Step()

	return core.StepResult{State: g.State()}
}

// Halted reports that the loop has reached its terminal state.
func (g *Game) Halted() bool {
	return g.world != nil && g.world.Phase() == PhaseGameOver
}

// LogFields describes the last tick's notable events.
func (g *Game) LogFields() []any {
	ev := g.last
	if ev.Hits == 0 && !ev.GameOver {
		return nil
	}
	return []any{
		"hits", ev.Hits,
		"destroyed", ev.ObstaclesDestroyed,
		"spent", ev.ProjectilesSpent,
		"gameOver", ev.GameOver,
		"score", g.world.Score(),
	}
}

// World exposes the underlying simulation.
func (g *Game) World() *World {
	return g.world
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	sx := float64(dst.Width()) / g.cfg.World.Width
	sy := float64(dst.Height()) / g.cfg.World.Height

	g.drawGround(dst, sx, sy)

	for _, o := range g.world.Obstacles() {
		dst.DrawRectColor(o.Box().ToRect(sx, sy), ObstacleChar, core.ColorGreen)
	}
	for _, p := range g.world.Projectiles() {
		dst.DrawRectColor(p.Box().ToRect(sx, sy), ProjectileChar, core.ColorOrange)
	}
	dst.DrawRectColor(g.world.Player().Box().ToRect(sx, sy), PlayerChar, core.ColorWhite)

	g.drawHUD(dst)

	if g.paused {
		dst.DrawMessageBox("PAUSED", "Press P to resume", core.ColorYellow)
	}
	if g.world.Phase() == PhaseGameOver {
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.world.Score()), core.ColorBrightRed)
	}
}

// drawGround fills everything below the ground line.
func (g *Game) drawGround(dst *core.Screen, sx, sy float64) {
	ground := core.Box{
		X: 0,
		Y: g.cfg.World.GroundY(),
		W: g.cfg.World.Width,
		H: g.cfg.World.GroundHeight,
	}.ToRect(sx, sy)

	dst.DrawRectColor(ground, GroundChar, core.ColorGray)
	dst.DrawHLine(0, ground.Y, dst.Width(), GroundTopChar, core.ColorGray)
}

// drawHUD draws the score and the shot status.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.world.Score()))

	status, color := " Shot ready! ", core.ColorBrightGreen
	if cd := g.world.ShootCooldown(); cd > 0 {
		status, color = fmt.Sprintf(" Reloading... %.1fs ", g.cooldownSeconds(cd)), core.ColorRed
	}
	dst.DrawTextColor(dst.Width()-len(status)-2, 0, status, color)
}

// cooldownSeconds converts cooldown ticks to seconds at the current tick rate.
func (g *Game) cooldownSeconds(ticks int) float64 {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return float64(ticks) / float64(rate)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: g.world.Phase() == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
}
