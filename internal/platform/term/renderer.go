package term

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ANSI control sequences.
const (
	seqHideCursor  = "\033[?25l"
	seqShowCursor  = "\033[?25h"
	seqClearScreen = "\033[H\033[2J"
	seqResetStyle  = "\033[0m"
)

// allColors lists every core.Color the renderer styles.
var allColors = []core.Color{
	core.ColorDefault,
	core.ColorRed,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorWhite,
	core.ColorBrightRed,
	core.ColorBrightGreen,
	core.ColorGray,
}

// Renderer paints screen buffers onto a terminal. Each frame is compared
// with the previous one and only changed cells are written, each reached
// by an absolute cursor move. Screen cell (x, y) is terminal position
// (x+1, y+1).
type Renderer struct {
	out    *bufio.Writer
	buf    bytes.Buffer
	numBuf [20]byte // Scratch space for integer formatting
	styles map[core.Color]lipgloss.Style
	prev   *core.Screen // What the terminal currently shows; nil before Start
}

// NewRenderer creates a renderer writing to w. Colour support is detected
// from w.
func NewRenderer(w io.Writer) *Renderer {
	lr := lipgloss.NewRenderer(w)
	styles := make(map[core.Color]lipgloss.Style, len(allColors))
	for _, c := range allColors {
		style := lr.NewStyle()
		if code := c.ANSI(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		styles[c] = style
	}

	return &Renderer{
		out:    bufio.NewWriterSize(w, 8192),
		styles: styles,
	}
}

// Start hides the cursor and clears the terminal.
func (r *Renderer) Start() error {
	r.buf.WriteString(seqHideCursor)
	r.buf.WriteString(seqClearScreen)
	r.prev = nil
	return r.flush()
}

// Draw paints the cells of s that differ from the previous frame.
func (r *Renderer) Draw(s *core.Screen) error {
	if r.prev == nil || r.prev.Width() != s.Width() || r.prev.Height() != s.Height() {
		r.buf.WriteString(seqClearScreen)
		r.prev = core.NewScreen(s.Width(), s.Height())
	}

	curX, curY := -1, -1
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell == r.prev.GetCell(x, y) {
				continue
			}
			if x != curX || y != curY {
				r.moveCursor(x+1, y+1)
			}
			r.buf.WriteString(r.style(cell.Color).Render(string(cell.Rune)))
			curX, curY = x+1, y
		}
	}

	r.prev.CopyFrom(s)
	return r.flush()
}

// Close resets styles, clears the screen and shows the cursor again.
func (r *Renderer) Close() error {
	r.buf.WriteString(seqResetStyle)
	r.buf.WriteString(seqClearScreen)
	r.buf.WriteString(seqShowCursor)
	r.prev = nil
	return r.flush()
}

func (r *Renderer) style(c core.Color) lipgloss.Style {
	if st, ok := r.styles[c]; ok {
		return st
	}
	return r.styles[core.ColorDefault]
}

// moveCursor appends a 1-based cursor position sequence.
func (r *Renderer) moveCursor(col, row int) {
	r.buf.WriteString("\033[")
	r.buf.Write(strconv.AppendInt(r.numBuf[:0], int64(row), 10))
	r.buf.WriteByte(';')
	r.buf.Write(strconv.AppendInt(r.numBuf[:0], int64(col), 10))
	r.buf.WriteByte('H')
}

func (r *Renderer) flush() error {
	if r.buf.Len() == 0 {
		return nil
	}
	_, err := r.out.Write(r.buf.Bytes())
	r.buf.Reset()
	if err == nil {
		err = r.out.Flush()
	}
	if err != nil {
		return fmt.Errorf("term: write: %w", err)
	}
	return nil
}
