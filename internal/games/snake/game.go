package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Phase is the lifecycle state of a game.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// EndReason explains why a round ended.
type EndReason string

const (
	EndNone EndReason = ""
	EndWall EndReason = "wall"
	EndSelf EndReason = "self"
	EndQuit EndReason = "quit"
)

// startHeading is the heading of a fresh snake.
const startHeading = DirLeft

// Game implements the Snake game. It owns the field, the snake, the food
// and all scoring state; it is not safe for concurrent use.
type Game struct {
	cfg   config.SnakeConfig
	curve config.SpeedCurve
	rng   *rand.Rand

	field *Field
	snake *Snake
	food  core.Point

	score     int
	highScore int // Best score of this process, survives restarts
	round     int // 1-based round number
	tick      uint64

	phase  Phase
	reason EndReason

	tooSmall bool // Screen cannot hold the field and HUD; play is suspended
}

// New creates a game with the given tunables. cfg must be valid.
// Call Reset before the first Step.
func New(cfg config.SnakeConfig) *Game {
	return &Game{
		cfg:   cfg,
		curve: config.NewSpeedCurve(cfg),
	}
}

// Reset initializes the game from scratch, clearing the highscore, and
// starts round 1.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.highScore = 0
	g.round = 0
	g.restart()
	g.Resize(rc.ScreenW, rc.ScreenH)
}

// Resize records the screen size. A zero dimension is treated as large
// enough. While the screen is smaller than ScreenWidth x ScreenHeight the
// snake does not move and only Quit is honoured.
func (g *Game) Resize(w, h int) {
	g.tooSmall = (w > 0 && w < ScreenWidth) || (h > 0 && h < ScreenHeight)
}

// TooSmall reports whether play is suspended by an undersized screen.
func (g *Game) TooSmall() bool { return g.tooSmall }

// restart begins a new round, keeping the highscore.
func (g *Game) restart() {
	g.field = NewField()
	g.snake = NewSnake(g.field.Center(), startHeading)
	g.score = 0
	g.tick = 0
	g.round++
	g.phase = PhasePlaying
	g.reason = EndNone
	g.spawnFood()
}

// foodRegion is the area food may appear in: the field interior inset by
// the configured margin.
func (g *Game) foodRegion() core.Rect {
	return g.field.Interior().Inset(g.cfg.Food.Inset)
}

func (g *Game) spawnFood() {
	g.food = placeFood(g.rng, g.field, g.foodRegion(), g.snake)
}

// Step advances the game by one tick.
//
// While playing, Quit ends the game immediately; otherwise the snake steers
// (reversals are ignored), moves, eats and is checked for collisions.
// After a game over only Restart and Quit are honoured.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	switch g.phase {
	case PhaseTerminated:
		return core.StepResult{State: g.State()}

	case PhaseGameOver:
		switch {
		case input.Has(core.ActionQuit):
			g.phase = PhaseTerminated
		case input.Has(core.ActionRestart):
			g.restart()
			return core.StepResult{State: g.State(), Restarted: true}
		}
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionQuit) {
		g.phase = PhaseTerminated
		g.reason = EndQuit
		return core.StepResult{State: g.State()}
	}
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.snake.Move(g.processInput(input), g.field.Bounds())
	ate := g.checkFood()
	g.checkGameOver()

	return core.StepResult{State: g.State(), Ate: ate}
}

// processInput picks the heading for this tick.
func (g *Game) processInput(input core.InputFrame) Direction {
	heading := g.snake.Heading()
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if input.Has(a) {
			return Steer(a, heading)
		}
	}
	return heading
}

// checkFood grows the snake when the head is on the food.
// The snake grows before the food moves so the new tail segment is never
// chosen as the food cell.
func (g *Game) checkFood() bool {
	if g.snake.Head().Pos != g.food {
		return false
	}
	g.snake.Grow(g.field.Bounds())
	g.score += g.cfg.Scoring.FoodPoints
	g.highScore = max(g.highScore, g.score)
	g.spawnFood()
	return true
}

// checkGameOver ends the round on a wall or self collision.
func (g *Game) checkGameOver() {
	switch {
	case g.field.IsWall(g.snake.Head().Pos):
		g.phase = PhaseGameOver
		g.reason = EndWall
	case g.snake.HitsSelf():
		g.phase = PhaseGameOver
		g.reason = EndSelf
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.score,
		HighScore:  g.highScore,
		GameOver:   g.phase == PhaseGameOver,
		Terminated: g.phase == PhaseTerminated,
		Interval:   g.Interval(),
	}
}

// Interval is the tick duration for the current score.
func (g *Game) Interval() time.Duration {
	return g.curve.Interval(g.score)
}

// Phase returns the lifecycle state.
func (g *Game) Phase() Phase { return g.phase }

// Reason returns why the last round ended, or EndNone while playing.
func (g *Game) Reason() EndReason { return g.reason }

// Score returns the current round's score.
func (g *Game) Score() int { return g.score }

// HighScore returns the best score of this process.
func (g *Game) HighScore() int { return g.highScore }

// Round returns the 1-based round number.
func (g *Game) Round() int { return g.round }

// Ticks returns the number of moves made in the current round.
func (g *Game) Ticks() uint64 { return g.tick }

// Food returns the food cell.
func (g *Game) Food() core.Point { return g.food }

// Body returns a copy of the snake's segments, head first.
func (g *Game) Body() []BodyPart { return g.snake.Parts() }
