// Package term is the raw-terminal frontend: it switches stdin to raw mode,
// decodes key presses on a reader goroutine and paints frames with absolute
// cursor positioning.
package term

import (
	"errors"
	"fmt"

	xterm "golang.org/x/term"
)

// ErrNotTerminal is returned when stdin is not an interactive terminal.
var ErrNotTerminal = errors.New("term: not a terminal")

// Raw holds a terminal in raw mode until Restore is called.
type Raw struct {
	fd    int
	state *xterm.State
}

// MakeRaw puts the terminal behind fd into raw mode.
func MakeRaw(fd int) (*Raw, error) {
	if !xterm.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	state, err := xterm.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("term: enable raw mode: %w", err)
	}
	return &Raw{fd: fd, state: state}, nil
}

// Restore returns the terminal to the mode it had before MakeRaw.
// It is safe to call more than once.
func (r *Raw) Restore() error {
	if r == nil || r.state == nil {
		return nil
	}
	err := xterm.Restore(r.fd, r.state)
	r.state = nil
	if err != nil {
		return fmt.Errorf("term: restore: %w", err)
	}
	return nil
}

// Size returns the dimensions of the terminal behind fd.
func Size(fd int) (width, height int, err error) {
	width, height, err = xterm.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("term: get size: %w", err)
	}
	return width, height, nil
}

// CheckSize reports an error if the terminal behind fd is smaller than
// width x height cells.
func CheckSize(fd, width, height int) error {
	w, h, err := Size(fd)
	if err != nil {
		return err
	}
	if w < width || h < height {
		return fmt.Errorf("term: terminal is %dx%d, need at least %dx%d", w, h, width, height)
	}
	return nil
}
