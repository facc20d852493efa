package config

import "time"

// SpeedCurve maps a score to the tick interval.
// The interval shrinks by one step per food eaten and never drops below
// the configured floor.
type SpeedCurve struct {
	cfg    SpeedConfig
	points int
}

// NewSpeedCurve creates a speed curve from a validated configuration.
func NewSpeedCurve(cfg SnakeConfig) SpeedCurve {
	return SpeedCurve{
		cfg:    cfg.Speed,
		points: max(1, cfg.Scoring.FoodPoints),
	}
}

// Initial returns the interval at score 0.
func (c SpeedCurve) Initial() time.Duration {
	return time.Duration(c.cfg.InitialMs) * time.Millisecond
}

// Floor returns the minimum interval.
func (c SpeedCurve) Floor() time.Duration {
	return time.Duration(c.cfg.MinMs) * time.Millisecond
}

// Interval returns the tick interval for the given score.
func (c SpeedCurve) Interval(score int) time.Duration {
	eaten := max(0, score/c.points)
	ms := c.cfg.InitialMs - eaten*c.cfg.StepMs
	return time.Duration(max(ms, c.cfg.MinMs)) * time.Millisecond
}
