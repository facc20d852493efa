package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults %+v differ from Default() %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("speed:\n  initial_ms: 200\n  min_ms: 100\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Speed.InitialMs != 200 || cfg.Speed.MinMs != 100 {
		t.Errorf("custom values not applied: %+v", cfg.Speed)
	}
	// Unset fields keep their defaults
	if cfg.Speed.StepMs != 20 || cfg.Scoring.FoodPoints != 10 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("speed:\n  initial_ms: 100\n  min_ms: 200\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() should return ErrInvalid, got %v", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, expected defaults", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".snake")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("scoring:\n  food_points: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Scoring.FoodPoints != 5 {
		t.Errorf("user config not applied, food_points = %d", cfg.Scoring.FoodPoints)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		ok     bool
	}{
		{"defaults", func(*SnakeConfig) {}, true},
		{"zero initial", func(c *SnakeConfig) { c.Speed.InitialMs = 0 }, false},
		{"zero floor", func(c *SnakeConfig) { c.Speed.MinMs = 0 }, false},
		{"floor above initial", func(c *SnakeConfig) { c.Speed.MinMs = 400 }, false},
		{"negative step", func(c *SnakeConfig) { c.Speed.StepMs = -1 }, false},
		{"zero step", func(c *SnakeConfig) { c.Speed.StepMs = 0 }, true},
		{"zero points", func(c *SnakeConfig) { c.Scoring.FoodPoints = 0 }, false},
		{"negative inset", func(c *SnakeConfig) { c.Food.Inset = -1 }, false},
		{"inset too large", func(c *SnakeConfig) { c.Food.Inset = MaxFoodInset + 1 }, false},
		{"zero inset", func(c *SnakeConfig) { c.Food.Inset = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", name, err)
		}
	}
	if _, err := ParsePreset("insane"); !errors.Is(err, ErrInvalid) {
		t.Errorf("ParsePreset(insane) = %v, expected ErrInvalid", err)
	}

	cfg := Default()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Speed.InitialMs != 180 {
		t.Errorf("hard preset initial = %d, expected 180", cfg.Speed.InitialMs)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset config should stay valid: %v", err)
	}

	cfg = Default()
	cfg.Speed.MinMs = 250
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Speed.MinMs != 180 {
		t.Errorf("floor should follow a faster preset, got %d", cfg.Speed.MinMs)
	}

	cfg = Default()
	ApplyPreset(&cfg, "")
	if cfg != Default() {
		t.Error("empty preset should not change the config")
	}
}

func TestSpeedCurve(t *testing.T) {
	curve := NewSpeedCurve(Default())

	if curve.Initial() != 300*time.Millisecond {
		t.Errorf("Initial() = %v, expected 300ms", curve.Initial())
	}
	if curve.Interval(0) != 300*time.Millisecond {
		t.Errorf("Interval(0) = %v, expected 300ms", curve.Interval(0))
	}
	if curve.Interval(10) != 280*time.Millisecond {
		t.Errorf("Interval(10) = %v, expected 280ms", curve.Interval(10))
	}

	prev := curve.Interval(0)
	for score := 10; score <= 500; score += 10 {
		got := curve.Interval(score)
		if got > prev {
			t.Fatalf("interval increased at score %d: %v > %v", score, got, prev)
		}
		if got < curve.Floor() {
			t.Fatalf("interval %v below floor %v at score %d", got, curve.Floor(), score)
		}
		prev = got
	}
	if prev != 140*time.Millisecond {
		t.Errorf("interval should settle on the floor, got %v", prev)
	}
}
