// Package config provides YAML-based game configuration loading for the arcade.
// Every value here is a fixed constant for the lifetime of a session.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a config fails validation.
var ErrInvalid = errors.New("config: invalid value")

// RunnerConfig contains all configuration for the Blaster Runner game.
// Distances are in world units, times in ticks.
type RunnerConfig struct {
	World      RunnerWorld      `yaml:"world"`
	Physics    RunnerPhysics    `yaml:"physics"`
	Player     RunnerPlayer     `yaml:"player"`
	Obstacles  RunnerObstacles  `yaml:"obstacles"`
	Projectile RunnerProjectile `yaml:"projectile"`
	Scoring    RunnerScoring    `yaml:"scoring"`
}

// RunnerWorld defines the size of the simulated play field.
type RunnerWorld struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// GroundY returns the y-coordinate of the ground line.
func (w RunnerWorld) GroundY() float64 {
	return w.Height - w.GroundHeight
}

// RunnerPhysics defines vertical motion parameters.
type RunnerPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"` // negative = up
}

// RunnerPlayer defines the player's box and start position.
type RunnerPlayer struct {
	X      float64 `yaml:"x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RunnerObstacles defines spawning and movement of obstacles.
type RunnerObstacles struct {
	Speed         float64   `yaml:"speed"`
	SpawnInterval int       `yaml:"spawn_interval"`
	Small         SizeClass `yaml:"small"`
	Large         SizeClass `yaml:"large"`
}

// SizeClass is one of the discrete obstacle sizes.
type SizeClass struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RunnerProjectile defines the player's shots.
type RunnerProjectile struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`
	Cooldown int     `yaml:"cooldown"`
}

// RunnerScoring defines how points are awarded.
type RunnerScoring struct {
	HitBonus     int `yaml:"hit_bonus"`
	PassiveEvery int `yaml:"passive_every"` // +1 point every N ticks
}

// TypingConfig contains all configuration for the Typing Rush game.
type TypingConfig struct {
	RoundSeconds int      `yaml:"round_seconds"`
	Words        []string `yaml:"words"`
}

// Validate checks that the runner config describes a playable world.
func (c RunnerConfig) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"world.width", c.World.Width > 0},
		{"world.height", c.World.Height > 0},
		{"world.ground_height", c.World.GroundHeight >= 0 && c.World.GroundHeight < c.World.Height},
		{"physics.gravity", c.Physics.Gravity > 0},
		{"physics.jump_impulse", c.Physics.JumpImpulse < 0},
		{"player.width", c.Player.Width > 0},
		{"player.height", c.Player.Height > 0},
		{"obstacles.speed", c.Obstacles.Speed > 0},
		{"obstacles.spawn_interval", c.Obstacles.SpawnInterval > 0},
		{"obstacles.small", c.Obstacles.Small.Width > 0 && c.Obstacles.Small.Height > 0},
		{"obstacles.large", c.Obstacles.Large.Width > 0 && c.Obstacles.Large.Height > 0},
		{"projectile.size", c.Projectile.Width > 0 && c.Projectile.Height > 0},
		{"projectile.speed", c.Projectile.Speed > 0},
		{"projectile.cooldown", c.Projectile.Cooldown >= 0},
		{"scoring.hit_bonus", c.Scoring.HitBonus >= 0},
		{"scoring.passive_every", c.Scoring.PassiveEvery > 0},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: runner %s", ErrInvalid, chk.name)
		}
	}
	return nil
}

// Validate checks that the typing config can run a round.
func (c TypingConfig) Validate() error {
	if c.RoundSeconds <= 0 {
		return fmt.Errorf("%w: typing round_seconds must be positive", ErrInvalid)
	}
	if len(c.Words) == 0 {
		return fmt.Errorf("%w: typing words must not be empty", ErrInvalid)
	}
	for i, w := range c.Words {
		if w == "" {
			return fmt.Errorf("%w: typing words[%d] is empty", ErrInvalid, i)
		}
	}
	return nil
}
