package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultConfig returns the default runner configuration.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			Width:        800,
			Height:       240,
			GroundOffset: 2,
		},
		Player: PlayerConfig{
			X:      60,
			Width:  30,
			Height: 30,
		},
		Physics: PhysicsConfig{
			Gravity:      0.8,
			JumpPower:    13,
			MaxFallSpeed: 16,
			CoyoteTicks:  6,
		},
		Obstacles: ObstaclesConfig{
			MinWidth:    10,
			MaxWidth:    30,
			MinHeight:   20,
			MaxHeight:   40,
			BaseSpeed:   6,
			OffscreenAt: -50,
			Capacity:    16,
		},
		Spawn: SpawnConfig{
			InitialIntervalMs: 2000,
			MinIntervalMs:     800,
			ShrinkDivisor:     5,
			RandomBaseMs:      500,
			MinGapMs:          900,
		},
		Score: ScoreConfig{
			RatePerSecond:   50,
			LevelEvery:      1000,
			SpeedIncrement:  1,
			LeaderboardSize: 5,
		},
		Sim: SimConfig{
			MaxStepMs: 100,
		},
	}
}
