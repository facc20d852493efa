package snake

// Snapshot captures the complete game state for determinism testing and
// debug logging.
type Snapshot struct {
	Tick       uint64
	Round      int
	Score      int
	HighScore  int
	SnakeLen   int
	HeadX      int
	HeadY      int
	Dir        Direction
	FoodX      int
	FoodY      int
	IntervalMs int64
	Phase      Phase
	Reason     EndReason
	TooSmall   bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.snake.Head()
	return Snapshot{
		Tick:       g.tick,
		Round:      g.round,
		Score:      g.score,
		HighScore:  g.highScore,
		SnakeLen:   g.snake.Len(),
		HeadX:      head.Pos.X,
		HeadY:      head.Pos.Y,
		Dir:        head.Heading,
		FoodX:      g.food.X,
		FoodY:      g.food.Y,
		IntervalMs: g.Interval().Milliseconds(),
		Phase:      g.phase,
		Reason:     g.reason,
		TooSmall:   g.tooSmall,
	}
}
