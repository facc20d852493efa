package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score      int           // Current score
	HighScore  int           // Best score seen by this process
	GameOver   bool          // Whether the round has ended
	Terminated bool          // Whether the player asked to quit
	Interval   time.Duration // Current tick interval
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State     GameState
	Ate       bool // Food was consumed this tick
	Restarted bool // A new round started this tick
}
