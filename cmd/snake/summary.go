package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

var summaryHeader = lipgloss.NewStyle().Bold(true).Padding(0, 1)

// printSummary writes the session's rounds once the terminal is back in
// cooked mode.
func printSummary(w io.Writer, ledger *storage.Ledger, logger *log.Logger) {
	rounds, err := ledger.Rounds()
	if err != nil {
		logger.Warn("cannot read round ledger", "err", err)
		return
	}
	stats, err := ledger.Stats()
	if err != nil {
		logger.Warn("cannot read round ledger", "err", err)
		return
	}
	writeSummary(w, rounds, stats)
}

func writeSummary(w io.Writer, rounds []storage.Round, stats storage.Stats) {
	if stats.Rounds == 0 {
		return
	}

	rows := make([][]string, 0, len(rounds))
	for _, r := range rounds {
		rows = append(rows, []string{
			strconv.Itoa(r.Round),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Length),
			strconv.FormatUint(r.Ticks, 10),
			r.Reason,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return summaryHeader
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("Round", "Score", "Length", "Ticks", "End").
		Rows(rows...)

	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "Rounds: %d  Best: %d  Average: %.1f  Longest: %d\n",
		stats.Rounds, stats.HighScore, stats.AvgScore, stats.MaxLength)
}
