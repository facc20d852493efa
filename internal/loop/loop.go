// Package loop drives a Snake game against a raw terminal: it polls input,
// steps the game, draws frames and paces ticks. After a round ends it
// blocks for the player's decision to retry or quit.
package loop

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Input delivers player actions.
type Input interface {
	// Poll returns the next pending action without blocking, or
	// ActionNone if nothing is pending.
	Poll() (core.Action, error)
	// Wait blocks until an action arrives or ctx is done.
	Wait(ctx context.Context) (core.Action, error)
}

// Display shows rendered frames.
type Display interface {
	Draw(s *core.Screen) error
}

// Recorder stores finished rounds.
type Recorder interface {
	SaveRound(r storage.Round) (int64, error)
}

// Options configures a Controller.
type Options struct {
	Ledger Recorder     // Optional
	Logger *log.Logger // Optional, discards by default
}

// Controller owns the game for the duration of a session.
type Controller struct {
	game   *snake.Game
	in     Input
	out    Display
	ledger Recorder
	logger *log.Logger
	screen *core.Screen

	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a controller for a game that has already been Reset.
func New(game *snake.Game, in Input, out Display, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		game:   game,
		in:     in,
		out:    out,
		ledger: opts.Ledger,
		logger: logger,
		screen: core.NewScreen(snake.ScreenWidth, snake.ScreenHeight),
		sleep:  sleepContext,
	}
}

// Run plays rounds until the player quits or ctx is cancelled. Both end the
// session cleanly and return nil; only input or display failures are
// returned as errors.
func (c *Controller) Run(ctx context.Context) error {
	c.logger.Info("round started", "round", c.game.Round())

	for {
		if err := c.play(ctx); err != nil {
			return err
		}
		if c.game.Phase() == snake.PhaseTerminated {
			return nil
		}

		if err := c.awaitDecision(ctx); err != nil {
			return err
		}
		if c.game.Phase() == snake.PhaseTerminated {
			return nil
		}
	}
}

// play runs ticks until the round ends.
func (c *Controller) play(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			c.quit("context done")
			return nil
		}

		action, err := c.in.Poll()
		if err != nil {
			return fmt.Errorf("loop: read input: %w", err)
		}

		res := c.game.Step(core.FrameOf(action))
		switch c.game.Phase() {
		case snake.PhaseTerminated:
			c.logger.Info("quit", "round", c.game.Round(), "score", c.game.Score())
			c.record()
			return nil
		case snake.PhaseGameOver:
			c.logger.Info("game over",
				"round", c.game.Round(),
				"reason", c.game.Reason(),
				"score", c.game.Score(),
				"length", c.game.Snapshot().SnakeLen,
			)
			c.record()
			return c.draw()
		}

		if res.Ate {
			c.logger.Debug("food eaten", "score", res.State.Score, "interval", res.State.Interval)
		}
		if err := c.draw(); err != nil {
			return err
		}

		if err := c.sleep(ctx, res.State.Interval); err != nil {
			c.quit("context done")
			return nil
		}
	}
}

// awaitDecision blocks on input while the game-over panel is shown.
// Keys other than Restart and Quit are ignored.
func (c *Controller) awaitDecision(ctx context.Context) error {
	for c.game.Phase() == snake.PhaseGameOver {
		action, err := c.in.Wait(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.game.Step(core.FrameOf(core.ActionQuit))
				return nil
			}
			return fmt.Errorf("loop: wait for key: %w", err)
		}

		res := c.game.Step(core.FrameOf(action))
		switch {
		case res.Restarted:
			c.logger.Info("round started", "round", c.game.Round(), "highscore", c.game.HighScore())
			if err := c.draw(); err != nil {
				return err
			}
		case c.game.Phase() == snake.PhaseTerminated:
			c.logger.Info("quit", "round", c.game.Round())
		}
	}
	return nil
}

// quit ends a round that is still in play.
func (c *Controller) quit(why string) {
	c.game.Step(core.FrameOf(core.ActionQuit))
	c.logger.Info("quit", "round", c.game.Round(), "score", c.game.Score(), "cause", why)
	c.record()
}

func (c *Controller) draw() error {
	c.game.Render(c.screen)
	if err := c.out.Draw(c.screen); err != nil {
		return fmt.Errorf("loop: draw: %w", err)
	}
	return nil
}

// record stores the round that just ended. Failures are logged only.
func (c *Controller) record() {
	if c.ledger == nil {
		return
	}
	if _, err := c.ledger.SaveRound(RoundOf(c.game)); err != nil {
		c.logger.Warn("cannot record round", "round", c.game.Round(), "err", err)
	}
}

// RoundOf summarizes the game's current round for the ledger.
func RoundOf(g *snake.Game) storage.Round {
	snap := g.Snapshot()
	return storage.Round{
		Round:  snap.Round,
		Score:  snap.Score,
		Length: snap.SnakeLen,
		Ticks:  snap.Tick,
		Reason: string(snap.Reason),
	}
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
