package loop

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// scriptInput replays scripted actions. An exhausted poll script yields
// ActionNone; an exhausted wait script calls onIdle.
type scriptInput struct {
	polls   []core.Action
	waits   []core.Action
	pollErr error
	onIdle  func() error
}

func (s *scriptInput) Poll() (core.Action, error) {
	if s.pollErr != nil {
		return core.ActionNone, s.pollErr
	}
	if len(s.polls) == 0 {
		return core.ActionNone, nil
	}
	a := s.polls[0]
	s.polls = s.polls[1:]
	return a, nil
}

func (s *scriptInput) Wait(ctx context.Context) (core.Action, error) {
	if len(s.waits) == 0 {
		if s.onIdle != nil {
			return core.ActionNone, s.onIdle()
		}
		return core.ActionNone, io.EOF
	}
	a := s.waits[0]
	s.waits = s.waits[1:]
	return a, nil
}

type recordingDisplay struct {
	frames []string
	err    error
}

func (d *recordingDisplay) Draw(s *core.Screen) error {
	if d.err != nil {
		return d.err
	}
	d.frames = append(d.frames, s.String())
	return nil
}

func (d *recordingDisplay) last() string {
	if len(d.frames) == 0 {
		return ""
	}
	return d.frames[len(d.frames)-1]
}

type failingLedger struct{ calls int }

func (f *failingLedger) SaveRound(storage.Round) (int64, error) {
	f.calls++
	return 0, errors.New("disk on fire")
}

func newGame(t *testing.T) *snake.Game {
	t.Helper()
	g := snake.New(config.Default())
	g.Reset(core.RuntimeConfig{Seed: 1})
	return g
}

func newLedger(t *testing.T) *storage.Ledger {
	t.Helper()
	l, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

// noSleep records requested intervals instead of waiting.
func noSleep(intervals *[]time.Duration) func(context.Context, time.Duration) error {
	return func(_ context.Context, d time.Duration) error {
		*intervals = append(*intervals, d)
		return nil
	}
}

func TestRunQuitWhilePlaying(t *testing.T) {
	g := newGame(t)
	in := &scriptInput{polls: []core.Action{core.ActionNone, core.ActionNone, core.ActionQuit}}
	out := &recordingDisplay{}
	ledger := newLedger(t)

	c := New(g, in, out, Options{Ledger: ledger})
	var slept []time.Duration
	c.sleep = noSleep(&slept)

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	if g.Phase() != snake.PhaseTerminated {
		t.Errorf("game should be terminated, got %v", g.Phase())
	}
	if len(out.frames) != 2 {
		t.Errorf("expected 2 frames, got %d", len(out.frames))
	}
	if len(slept) != 2 || slept[0] != 300*time.Millisecond {
		t.Errorf("expected two 300ms sleeps, got %v", slept)
	}

	rounds, err := ledger.Rounds()
	if err != nil {
		t.Fatalf("Rounds() failed: %v", err)
	}
	if len(rounds) != 1 || rounds[0].Reason != "quit" || rounds[0].Ticks != 2 {
		t.Errorf("expected one quit round after 2 ticks, got %+v", rounds)
	}
}

func TestRunGameOverRestartQuit(t *testing.T) {
	g := newGame(t)
	in := &scriptInput{
		polls: []core.Action{core.ActionUp},
		waits: []core.Action{core.ActionUp, core.ActionLeft, core.ActionRestart, core.ActionQuit},
	}
	out := &recordingDisplay{}
	ledger := newLedger(t)

	c := New(g, in, out, Options{Ledger: ledger})
	var slept []time.Duration
	c.sleep = noSleep(&slept)

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	if g.Phase() != snake.PhaseTerminated {
		t.Errorf("game should be terminated, got %v", g.Phase())
	}
	if g.Round() != 2 {
		t.Errorf("expected 2 rounds, got %d", g.Round())
	}
	if !strings.Contains(out.last(), "Game Over!") {
		t.Error("last frame should show the game over panel")
	}

	rounds, err := ledger.Rounds()
	if err != nil {
		t.Fatalf("Rounds() failed: %v", err)
	}
	if len(rounds) != 2 {
		t.Fatalf("expected 2 recorded rounds, got %d", len(rounds))
	}
	for i, r := range rounds {
		if r.Round != i+1 || r.Reason != "wall" {
			t.Errorf("round %d = %+v, expected a wall game over", i, r)
		}
	}

	// Every sleep follows the speed curve
	for _, d := range slept {
		if d < 140*time.Millisecond || d > 300*time.Millisecond {
			t.Errorf("sleep interval %v outside the speed curve", d)
		}
	}
}

func TestRunIgnoresOtherKeysAfterGameOver(t *testing.T) {
	g := newGame(t)
	in := &scriptInput{
		polls: []core.Action{core.ActionUp},
		waits: []core.Action{core.ActionDown, core.ActionNone, core.ActionRight},
	}
	out := &recordingDisplay{}

	c := New(g, in, out, Options{})
	var slept []time.Duration
	c.sleep = noSleep(&slept)

	err := c.Run(context.Background())
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF once keys ran out, got %v", err)
	}
	if g.Phase() != snake.PhaseGameOver || g.Round() != 1 {
		t.Errorf("ignored keys changed the game: phase %v round %d", g.Phase(), g.Round())
	}
}

func TestRunContextCancelledWhilePlaying(t *testing.T) {
	g := newGame(t)
	in := &scriptInput{}
	out := &recordingDisplay{}
	ledger := newLedger(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := New(g, in, out, Options{Ledger: ledger})
	ticks := 0
	c.sleep = func(ctx context.Context, _ time.Duration) error {
		ticks++
		if ticks == 3 {
			cancel()
			return ctx.Err()
		}
		return nil
	}

	if err := c.Run(ctx); err != nil {
		t.Fatalf("cancellation should end cleanly, got %v", err)
	}
	if g.Phase() != snake.PhaseTerminated || g.Reason() != snake.EndQuit {
		t.Errorf("expected quit, got %v/%q", g.Phase(), g.Reason())
	}

	stats, err := ledger.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 1 {
		t.Errorf("expected the interrupted round to be recorded, got %d", stats.Rounds)
	}
}

func TestRunContextCancelledWhileWaiting(t *testing.T) {
	g := newGame(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := &scriptInput{
		polls: []core.Action{core.ActionUp},
		onIdle: func() error {
			cancel()
			return ctx.Err()
		},
	}

	c := New(g, in, &recordingDisplay{}, Options{})
	var slept []time.Duration
	c.sleep = noSleep(&slept)

	if err := c.Run(ctx); err != nil {
		t.Fatalf("cancellation should end cleanly, got %v", err)
	}
	if g.Phase() != snake.PhaseTerminated {
		t.Errorf("expected termination, got %v", g.Phase())
	}
	if g.Reason() != snake.EndWall {
		t.Errorf("reason should stay wall, got %q", g.Reason())
	}
}

func TestRunInputError(t *testing.T) {
	g := newGame(t)
	in := &scriptInput{pollErr: io.ErrUnexpectedEOF}

	c := New(g, in, &recordingDisplay{}, Options{})

	err := c.Run(context.Background())
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected wrapped input error, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "loop: ") {
		t.Errorf("error should carry the package prefix: %v", err)
	}
}

func TestRunDrawError(t *testing.T) {
	g := newGame(t)
	drawErr := errors.New("broken pipe")

	c := New(g, &scriptInput{}, &recordingDisplay{err: drawErr}, Options{})

	if err := c.Run(context.Background()); !errors.Is(err, drawErr) {
		t.Fatalf("expected wrapped draw error, got %v", err)
	}
}

func TestLedgerFailureDoesNotEndPlay(t *testing.T) {
	g := newGame(t)
	in := &scriptInput{
		polls: []core.Action{core.ActionUp},
		waits: []core.Action{core.ActionRestart, core.ActionQuit},
	}
	ledger := &failingLedger{}

	c := New(g, in, &recordingDisplay{}, Options{Ledger: ledger})
	var slept []time.Duration
	c.sleep = noSleep(&slept)

	// Round 2 runs left into the wall, then quits from game over
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("ledger failures must not surface, got %v", err)
	}
	if ledger.calls != 2 {
		t.Errorf("expected 2 save attempts, got %d", ledger.calls)
	}
}

func TestRoundOf(t *testing.T) {
	g := newGame(t)
	g.Step(core.FrameOf(core.ActionUp))
	g.Step(core.FrameOf(core.ActionQuit))

	r := RoundOf(g)
	if r.Round != 1 || r.Ticks != 1 || r.Length != 2 || r.Reason != "quit" {
		t.Errorf("unexpected round summary %+v", r)
	}
}

func TestSleepContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	if err := sleepContext(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("cancelled sleep should return promptly")
	}

	if err := sleepContext(context.Background(), time.Millisecond); err != nil {
		t.Errorf("short sleep returned %v", err)
	}
}
