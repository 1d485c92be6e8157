package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

//go:embed defaults/typing.yaml
var defaultTypingYAML []byte

// DefaultRunnerConfig returns the built-in Blaster Runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded YAML is unusable.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: RunnerWorld{
			Width:        800,
			Height:       300,
			GroundHeight: 50,
		},
		Physics: RunnerPhysics{
			Gravity:     0.5,
			JumpImpulse: -12,
		},
		Player: RunnerPlayer{
			X:      50,
			StartY: 200,
			Width:  30,
			Height: 50,
		},
		Obstacles: RunnerObstacles{
			Speed:         5,
			SpawnInterval: 120,
			Small:         SizeClass{Width: 20, Height: 40},
			Large:         SizeClass{Width: 40, Height: 60},
		},
		Projectile: RunnerProjectile{
			Width:    10,
			Height:   5,
			Speed:    10,
			Cooldown: 180, // ~3 seconds at 60 ticks/s
		},
		Scoring: RunnerScoring{
			HitBonus:     50,
			PassiveEvery: 10,
		},
	}
}

// DefaultTypingConfig returns the built-in Typing Rush configuration.
func DefaultTypingConfig() TypingConfig {
	return TypingConfig{
		RoundSeconds: 10,
		Words: []string{
			"JAVASCRIPT", "PROGRAMACAO", "TECNOLOGIA", "COMPUTADOR", "DESENVOLVEDOR",
			"FRONTEND", "BACKEND", "ALGORITMO", "APLICACAO", "CODIGO", "VELOCIDADE",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "runner":
		return defaultRunnerYAML
	case "typing":
		return defaultTypingYAML
	default:
		return nil
	}
}
