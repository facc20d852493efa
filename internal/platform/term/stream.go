package term

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	keyEscape = 0x1b
	streamBuf = 64
)

// Stream delivers decoded key actions from a reader goroutine.
// Unmapped bytes are dropped before they reach the channel.
type Stream struct {
	ch  chan core.Action
	err error // Set before ch is closed
}

// StartStream spawns a goroutine that reads from r until it fails.
// The goroutine stays blocked in Read after the caller is done with the
// stream; it ends with the process.
func StartStream(r io.Reader) *Stream {
	s := &Stream{ch: make(chan core.Action, streamBuf)}
	br := bufio.NewReader(r)
	go func() {
		defer close(s.ch)
		for {
			a, err := decodeKey(br)
			if err != nil {
				s.err = err
				return
			}
			if a != core.ActionNone {
				s.ch <- a
			}
		}
	}()
	return s
}

// Poll returns the next pending action without blocking.
func (s *Stream) Poll() (core.Action, error) {
	select {
	case a, ok := <-s.ch:
		if !ok {
			return core.ActionNone, s.closed()
		}
		return a, nil
	default:
		return core.ActionNone, nil
	}
}

// Wait blocks until an action arrives or ctx is done.
func (s *Stream) Wait(ctx context.Context) (core.Action, error) {
	select {
	case a, ok := <-s.ch:
		if !ok {
			return core.ActionNone, s.closed()
		}
		return a, nil
	case <-ctx.Done():
		return core.ActionNone, ctx.Err()
	}
}

func (s *Stream) closed() error {
	err := s.err
	if err == nil {
		err = io.EOF
	}
	return fmt.Errorf("term: read input: %w", err)
}

// decodeKey reads one key press. CSI arrow sequences (ESC [ A..D) arrive
// in a single write from the terminal, so they are recognised only when
// already buffered; a lone ESC is unmapped.
func decodeKey(r *bufio.Reader) (core.Action, error) {
	b, err := r.ReadByte()
	if err != nil {
		return core.ActionNone, err
	}

	if b == keyEscape && r.Buffered() >= 2 {
		seq, _ := r.Peek(2)
		if seq[0] == '[' {
			if a := arrowAction(seq[1]); a != core.ActionNone {
				_, _ = r.Discard(2)
				return a, nil
			}
		}
	}

	return core.KeyAction(b), nil
}

func arrowAction(b byte) core.Action {
	switch b {
	case 'A':
		return core.ActionUp
	case 'B':
		return core.ActionDown
	case 'C':
		return core.ActionRight
	case 'D':
		return core.ActionLeft
	}
	return core.ActionNone
}
