// Package tui runs Snake as a Bubble Tea program, an alternative to the
// raw-terminal frontend.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one game step. Round tags the round that scheduled it so
// a tick outliving its round is dropped.
type TickMsg struct {
	Round int
}

// tickCmd schedules the next step after interval.
func tickCmd(round int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TickMsg{Round: round}
	})
}
