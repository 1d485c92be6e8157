package runner

import (
	"math/rand"

	"github.com/vovakirdan/rush-arcade/internal/config"
	"github.com/vovakirdan/rush-arcade/internal/core"
)

// Phase is the state of the simulation loop.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Player is the runner. X never changes; Y is the top edge.
type Player struct {
	X, Y     float64
	W, H     float64
	VelY     float64
	OnGround bool
}

// Box returns the player's collision box.
func (p Player) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// SizeClass identifies which of the two obstacle sizes was spawned.
type SizeClass int

const (
	SizeSmall SizeClass = iota
	SizeLarge
)

// Obstacle scrolls from the right edge towards the player.
type Obstacle struct {
	X, Y  float64
	W, H  float64
	Speed float64
	Class SizeClass
}

// Box returns the obstacle's collision box.
func (o Obstacle) Box() core.Box {
	return core.Box{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// Projectile travels from the player towards the right edge.
type Projectile struct {
	X, Y  float64
	W, H  float64
	Speed float64
}

// Box returns the projectile's collision box.
func (p Projectile) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// newObstacle creates an obstacle at the right edge of the world, resting on
// the ground, with a size class picked by the RNG.
func newObstacle(rng *rand.Rand, cfg *config.RunnerConfig) Obstacle {
	class := SizeSmall
	size := cfg.Obstacles.Small
	if rng.Intn(2) == 1 {
		class = SizeLarge
		size = cfg.Obstacles.Large
	}

	return Obstacle{
		X:     cfg.World.Width,
		Y:     cfg.World.GroundY() - size.Height,
		W:     size.Width,
		H:     size.Height,
		Speed: cfg.Obstacles.Speed,
		Class: class,
	}
}

// newProjectile creates a projectile centered on the player.
func newProjectile(p Player, cfg *config.RunnerConfig) Projectile {
	return Projectile{
		X:     p.X + p.W/2,
		Y:     p.Y + p.H/2,
		W:     cfg.Projectile.Width,
		H:     cfg.Projectile.Height,
		Speed: cfg.Projectile.Speed,
	}
}
