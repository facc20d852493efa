package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/loop"
	"github.com/vovakirdan/tui-snake/internal/platform/term"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Frontends selectable with --ui.
const (
	uiRaw = "raw"
	uiTea = "tea"
)

func runPlay(cmd *cobra.Command, _ []string) error {
	if flagUI != uiRaw && flagUI != uiTea {
		return fmt.Errorf("unknown frontend %q (want %s or %s)", flagUI, uiRaw, uiTea)
	}

	if flagUI == uiTea && flagDifficulty == "" {
		width, _, err := term.Size(int(os.Stdout.Fd()))
		if err != nil {
			width = snake.ScreenWidth
		}
		preset, ok, err := tui.RunDifficultyMenu(width)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		flagDifficulty = string(preset)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLog, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game := snake.New(cfg)
	game.Reset(core.RuntimeConfig{
		ScreenW: snake.ScreenWidth,
		ScreenH: snake.ScreenHeight,
		Seed:    seed,
	})
	logger.Info("session started", "seed", seed, "ui", flagUI, "interval", game.Interval())

	// The ledger is a nicety; play goes on without it
	var recorder loop.Recorder
	ledger, err := storage.Open()
	if err != nil {
		logger.Warn("round ledger unavailable", "err", err)
		ledger = nil
	} else {
		defer ledger.Close()
		recorder = ledger
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch flagUI {
	case uiTea:
		err = tui.Run(ctx, game, recorder, logger)
	default:
		err = playRaw(ctx, game, recorder, logger)
	}
	if err != nil {
		logger.Error("session failed", "err", err)
		return err
	}

	logger.Info("session ended", "rounds", game.Round(), "highscore", game.HighScore())
	if ledger != nil {
		printSummary(cmd.OutOrStdout(), ledger, logger)
	}
	return nil
}

// loadConfig resolves tunables from --config and --difficulty.
func loadConfig() (config.SnakeConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SnakeConfig{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.SnakeConfig{}, err
	}
	return cfg, nil
}

// playRaw runs the game on the raw terminal. The terminal is restored
// before returning, whatever the outcome.
func playRaw(ctx context.Context, game *snake.Game, recorder loop.Recorder, logger *log.Logger) (err error) {
	if err := term.CheckSize(int(os.Stdout.Fd()), snake.ScreenWidth, snake.ScreenHeight); err != nil {
		return err
	}

	raw, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}
	defer func() {
		if rerr := raw.Restore(); err == nil {
			err = rerr
		}
	}()

	renderer := term.NewRenderer(os.Stdout)
	if err := renderer.Start(); err != nil {
		return err
	}
	defer func() {
		if cerr := renderer.Close(); err == nil {
			err = cerr
		}
	}()

	c := loop.New(game, term.StartStream(os.Stdin), renderer, loop.Options{
		Ledger: recorder,
		Logger: logger,
	})
	return c.Run(ctx)
}

// newLogger returns a file logger, or a discarding one when path is empty.
// stdout belongs to the game display.
func newLogger(path, level string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           lvl,
	})
	return logger, func() { f.Close() }, nil
}
