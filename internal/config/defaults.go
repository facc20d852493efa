package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the default snake configuration.
func Default() SnakeConfig {
	return SnakeConfig{
		Speed: SpeedConfig{
			InitialMs: 300,
			StepMs:    20,
			MinMs:     140,
		},
		Scoring: ScoringConfig{
			FoodPoints: 10,
		},
		Food: FoodConfig{
			Inset: 1,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
