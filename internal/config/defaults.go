package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Player: RunnerPlayer{
			RunAcceleration:  5,
			JumpSpeed:        20,
			Gravity:          30,
			BottomOfTheWorld: -60,
			StartX:           0,
			StartY:           5,
			StartVelocityX:   10,
			ColliderWidth:    1,
			ColliderHeight:   1,
		},
		Platforms: RunnerPlatforms{
			SpawnDistance:   50,
			RecycleDistance: 50,
			MinWidth:        20,
			MaxWidth:        30,
			MinXSpacing:     35,
			MaxXSpacing:     45,
			MinYSpacing:     -8,
			MaxYSpacing:     8,
			FirstX:          0,
			FirstY:          -6.5,
		},
		Camera: RunnerCamera{
			StartX:    15,
			StartY:    0,
			Smoothing: 5,
			OrthoSize: 20,
			ZoomStep:  1,
		},
		Score: RunnerScore{
			PerLanding:   100,
			ZoomEvery:    500,
			GameOverText: "Game Over!",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
