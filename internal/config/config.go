// Package config provides YAML-based game configuration loading and
// difficulty management for the snake game.
package config

import (
	"errors"
	"fmt"
)

// MaxFoodInset is the largest food inset that still leaves free cells on
// the 60x20 field.
const MaxFoodInset = 8

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// SnakeConfig contains all tunables of the snake game.
type SnakeConfig struct {
	Speed   SpeedConfig   `yaml:"speed"`
	Scoring ScoringConfig `yaml:"scoring"`
	Food    FoodConfig    `yaml:"food"`
}

// SpeedConfig defines the tick interval progression in milliseconds.
type SpeedConfig struct {
	InitialMs int `yaml:"initial_ms"`
	StepMs    int `yaml:"step_ms"`
	MinMs     int `yaml:"min_ms"`
}

// ScoringConfig defines score increments.
type ScoringConfig struct {
	FoodPoints int `yaml:"food_points"`
}

// FoodConfig defines food placement.
type FoodConfig struct {
	Inset int `yaml:"inset"`
}

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Speed.InitialMs <= 0:
		return fmt.Errorf("%w: speed.initial_ms must be positive, got %d", ErrInvalid, c.Speed.InitialMs)
	case c.Speed.MinMs <= 0:
		return fmt.Errorf("%w: speed.min_ms must be positive, got %d", ErrInvalid, c.Speed.MinMs)
	case c.Speed.MinMs > c.Speed.InitialMs:
		return fmt.Errorf("%w: speed.min_ms (%d) exceeds speed.initial_ms (%d)", ErrInvalid, c.Speed.MinMs, c.Speed.InitialMs)
	case c.Speed.StepMs < 0:
		return fmt.Errorf("%w: speed.step_ms must not be negative, got %d", ErrInvalid, c.Speed.StepMs)
	case c.Scoring.FoodPoints <= 0:
		return fmt.Errorf("%w: scoring.food_points must be positive, got %d", ErrInvalid, c.Scoring.FoodPoints)
	case c.Food.Inset < 0 || c.Food.Inset > MaxFoodInset:
		return fmt.Errorf("%w: food.inset must be in [0, %d], got %d", ErrInvalid, MaxFoodInset, c.Food.Inset)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string means "keep the
// loaded config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalid, s)
	}
}

// InitialIntervalForPreset returns the starting tick interval in
// milliseconds for a difficulty preset, or 0 for no override.
func InitialIntervalForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 300
	case DifficultyNormal:
		return 240
	case DifficultyHard:
		return 180
	default:
		return 0
	}
}
