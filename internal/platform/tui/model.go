package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/loop"
)

// Model is the Bubble Tea model for a game of Snake. The game itself is
// shared by pointer; the model only carries presentation state.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	ledger   loop.Recorder
	logger   *log.Logger
	pending  core.Action // Latest key since the last tick
	quitting bool
}

// NewModel creates a model for a game that has already been Reset.
// ledger and logger may be nil.
func NewModel(game *snake.Game, ledger loop.Recorder, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:   game,
		screen: core.NewScreen(snake.ScreenWidth, snake.ScreenHeight),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		ledger: ledger,
		logger: logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("round started", "round", m.game.Round())
	return tickCmd(m.game.Round(), m.game.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick(msg)

	case tea.WindowSizeMsg:
		m.game.Resize(msg.Width, msg.Height)
	}

	return m, nil
}

// handleKey processes keyboard input. Movement keys are held until the
// next tick; Quit and Restart act at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		playing := m.game.Phase() == snake.PhasePlaying
		m.game.Step(core.FrameOf(core.ActionQuit))
		if playing {
			m.record()
		}
		m.logger.Info("quit", "round", m.game.Round(), "score", m.game.Score())
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.Phase() == snake.PhaseGameOver {
		res := m.game.Step(core.FrameOf(action))
		if !res.Restarted {
			return m, nil
		}
		m.pending = core.ActionNone
		m.logger.Info("round started", "round", m.game.Round(), "highscore", m.game.HighScore())
		return m, tickCmd(m.game.Round(), m.game.Interval())
	}

	if action.IsMove() {
		m.pending = action
	}
	return m, nil
}

// handleTick advances the game one step and schedules the next tick while
// the round is still in play.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Round != m.game.Round() || m.game.Phase() != snake.PhasePlaying {
		return m, nil
	}

	res := m.game.Step(core.FrameOf(m.pending))
	m.pending = core.ActionNone

	if res.Ate {
		m.logger.Debug("food eaten", "score", res.State.Score, "interval", res.State.Interval)
	}
	if res.State.GameOver {
		m.logger.Info("game over",
			"round", m.game.Round(),
			"reason", m.game.Reason(),
			"score", m.game.Score(),
		)
		m.record()
		return m, nil
	}

	return m, tickCmd(m.game.Round(), res.State.Interval)
}

func (m Model) record() {
	if m.ledger == nil {
		return
	}
	if _, err := m.ledger.SaveRound(loop.RoundOf(m.game)); err != nil {
		m.logger.Warn("cannot record round", "round", m.game.Round(), "err", err)
	}
}

// View renders the game and the key help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n\n" + m.help.View(m.keys)
}

// Run plays the game in a Bubble Tea program on the alternate screen until
// the player quits or ctx is cancelled.
func Run(ctx context.Context, game *snake.Game, ledger loop.Recorder, logger *log.Logger) error {
	model := NewModel(game, ledger, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}
	if game.Phase() == snake.PhasePlaying {
		game.Step(core.FrameOf(core.ActionQuit))
		model.record()
	}
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
