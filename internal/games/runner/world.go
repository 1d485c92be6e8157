package runner

import (
	"math/rand"

	"github.com/vovakirdan/rush-arcade/internal/config"
)

// StepEvents reports what happened during one tick.
type StepEvents struct {
	Spawned            bool // An obstacle entered at the right edge
	Hits               int  // Projectile-obstacle overlaps this tick (each paid a bonus)
	ObstaclesDestroyed int
	ProjectilesSpent   int
	ObstaclesPassed    int // Scrolled off the left edge untouched
	GameOver           bool
}

// World is one self-contained runner session. Nothing is shared between
// worlds, so independent sessions can run side by side.
type World struct {
	cfg config.RunnerConfig
	rng *rand.Rand

	phase       Phase
	player      Player
	obstacles   []Obstacle
	projectiles []Projectile

	score         int
	elapsedTicks  int
	shootCooldown int
}

// NewWorld creates an idle world. Call Start to begin a session.
func NewWorld(cfg config.RunnerConfig, seed int64) *World {
	return &World{
		cfg:         cfg,
		rng:         rand.New(rand.NewSource(seed)),
		obstacles:   make([]Obstacle, 0, 8),
		projectiles: make([]Projectile, 0, 4),
	}
}

// Start clears all entities, puts the player back on the ground and enters
// the Running phase. It is valid from any phase.
func (w *World) Start() {
	w.obstacles = w.obstacles[:0]
	w.projectiles = w.projectiles[:0]

	w.player = Player{
		X:        w.cfg.Player.X,
		Y:        w.cfg.Player.StartY,
		W:        w.cfg.Player.Width,
		H:        w.cfg.Player.Height,
		VelY:     0,
		OnGround: true,
	}

	w.score = 0
	w.elapsedTicks = 0
	w.shootCooldown = 0
	w.phase = PhaseRunning
}

// Restart begins a new session, discarding the current one even mid-run.
func (w *World) Restart() {
	w.Start()
}

// Jump launches the player if it is standing on the ground.
// There is no double jump: an airborne player ignores the command.
func (w *World) Jump() {
	if w.phase != PhaseRunning || !w.player.OnGround {
		return
	}
	w.player.VelY = w.cfg.Physics.JumpImpulse
	w.player.OnGround = false
}

// Shoot fires a projectile from the player's center when the cooldown has
// expired, and re-arms the cooldown. It reports whether a shot was fired.
func (w *World) Shoot() bool {
	if w.phase != PhaseRunning || w.shootCooldown > 0 {
		return false
	}
	w.projectiles = append(w.projectiles, newProjectile(w.player, &w.cfg))
	w.shootCooldown = w.cfg.Projectile.Cooldown
	return true
}

// Step advances the world by one tick. Outside the Running phase it does
// nothing. The order of the stages below is part of the game's rules.
func (w *World) Step() StepEvents {
	var ev StepEvents
	if w.phase != PhaseRunning {
		return ev
	}

	w.applyGravity()

	if w.elapsedTicks%w.cfg.Obstacles.SpawnInterval == 0 {
		w.obstacles = append(w.obstacles, newObstacle(w.rng, &w.cfg))
		ev.Spawned = true
	}

	for i := range w.obstacles {
		w.obstacles[i].X -= w.obstacles[i].Speed
	}
	for i := range w.projectiles {
		w.projectiles[i].X += w.projectiles[i].Speed
	}

	if w.shootCooldown > 0 {
		w.shootCooldown--
	}

	// Any contact with the player ends the session, but the tick still runs
	// to completion so the final frame shows a consistent world.
	playerBox := w.player.Box()
	for _, o := range w.obstacles {
		if playerBox.Overlaps(o.Box()) {
			w.phase = PhaseGameOver
			ev.GameOver = true
		}
	}

	w.resolveHits(&ev)

	if w.elapsedTicks%w.cfg.Scoring.PassiveEvery == 0 {
		w.score++
	}
	w.elapsedTicks++

	return ev
}

// applyGravity integrates vertical motion and lands the player on the ground.
func (w *World) applyGravity() {
	p := &w.player
	p.VelY += w.cfg.Physics.Gravity
	p.Y += p.VelY

	groundY := w.cfg.World.GroundY()
	if p.Y+p.H > groundY {
		p.Y = groundY - p.H
		p.VelY = 0
		p.OnGround = true
	}
}

// resolveHits checks every projectile against every obstacle, then prunes
// everything that was hit or has left the world.
//
// Each overlapping pair pays the bonus, so one obstacle struck by two
// projectiles in the same tick scores twice while being removed once.
// Existing high scores were earned under this rule; keep it.
func (w *World) resolveHits(ev *StepEvents) {
	obstacleHit := make([]bool, len(w.obstacles))
	projectileHit := make([]bool, len(w.projectiles))

	for i, o := range w.obstacles {
		ob := o.Box()
		for j, p := range w.projectiles {
			if ob.Overlaps(p.Box()) {
				obstacleHit[i] = true
				projectileHit[j] = true
				w.score += w.cfg.Scoring.HitBonus
				ev.Hits++
			}
		}
	}

	keptObstacles := w.obstacles[:0]
	for i, o := range w.obstacles {
		switch {
		case obstacleHit[i]:
			ev.ObstaclesDestroyed++
		case o.X+o.W <= 0:
			ev.ObstaclesPassed++
		default:
			keptObstacles = append(keptObstacles, o)
		}
	}
	w.obstacles = keptObstacles

	keptProjectiles := w.projectiles[:0]
	for j, p := range w.projectiles {
		if projectileHit[j] {
			ev.ProjectilesSpent++
			continue
		}
		if p.X >= w.cfg.World.Width {
			continue
		}
		keptProjectiles = append(keptProjectiles, p)
	}
	w.projectiles = keptProjectiles
}

// Phase returns the current phase.
func (w *World) Phase() Phase {
	return w.phase
}

// Running reports whether the tick loop should keep going.
func (w *World) Running() bool {
	return w.phase == PhaseRunning
}

// Player returns a copy of the player.
func (w *World) Player() Player {
	return w.player
}

// Obstacles returns the live obstacles. The slice must not be modified.
func (w *World) Obstacles() []Obstacle {
	return w.obstacles
}

// Projectiles returns the live projectiles. The slice must not be modified.
func (w *World) Projectiles() []Projectile {
	return w.projectiles
}

// Score returns the current score.
func (w *World) Score() int {
	return w.score
}

// ElapsedTicks returns the number of ticks simulated in this session.
func (w *World) ElapsedTicks() int {
	return w.elapsedTicks
}

// ShootCooldown returns the ticks left before the player may shoot again.
func (w *World) ShootCooldown() int {
	return w.shootCooldown
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.RunnerConfig {
	return w.cfg
}
