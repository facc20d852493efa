package snake

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// BodyPart is one segment of the snake.
type BodyPart struct {
	Pos     core.Point
	Glyph   rune
	Heading Direction // Heading at the time of the last move
}

// Snake is an ordered chain of segments; index 0 is the head.
type Snake struct {
	parts []BodyPart
	prev  []BodyPart // Shift history, reused across moves
}

// NewSnake creates a two-segment snake whose head is at head, moving in
// heading, with the tail one cell behind it.
func NewSnake(head core.Point, heading Direction) *Snake {
	return &Snake{
		parts: []BodyPart{
			{Pos: head, Glyph: heading.HeadGlyph(), Heading: heading},
			{Pos: head.Sub(heading.Delta()), Glyph: heading.BodyGlyph(), Heading: heading},
		},
	}
}

// Len returns the number of segments.
func (s *Snake) Len() int { return len(s.parts) }

// Head returns the head segment.
func (s *Snake) Head() BodyPart { return s.parts[0] }

// Tail returns the last segment.
func (s *Snake) Tail() BodyPart { return s.parts[len(s.parts)-1] }

// Heading returns the head's heading.
func (s *Snake) Heading() Direction { return s.parts[0].Heading }

// Parts returns a copy of the segments, head first.
func (s *Snake) Parts() []BodyPart {
	return slices.Clone(s.parts)
}

// Occupies reports whether any segment is on p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, part := range s.parts {
		if part.Pos == p {
			return true
		}
	}
	return false
}

// HitsSelf reports whether the head shares a cell with another segment.
func (s *Snake) HitsSelf() bool {
	head := s.parts[0].Pos
	for _, part := range s.parts[1:] {
		if part.Pos == head {
			return true
		}
	}
	return false
}

// Move advances the snake one cell in dir. Every body segment takes the
// pre-move position and heading of its predecessor; the head then steps
// by dir. The head is kept inside bounds.
func (s *Snake) Move(dir Direction, bounds core.Rect) {
	s.prev = append(s.prev[:0], s.parts...)
	for i := 1; i < len(s.parts); i++ {
		p := s.prev[i-1]
		s.parts[i] = BodyPart{Pos: p.Pos, Glyph: p.Heading.BodyGlyph(), Heading: p.Heading}
	}

	head := &s.parts[0]
	head.Pos = core.ClampPoint(head.Pos.Add(dir.Delta()), bounds)
	head.Heading = dir
	head.Glyph = dir.HeadGlyph()
}

// Grow appends a segment one cell behind the tail, opposite to the tail's
// heading, so it fills the cell the tail vacates on the next move.
func (s *Snake) Grow(bounds core.Rect) {
	tail := s.Tail()
	s.parts = append(s.parts, BodyPart{
		Pos:     core.ClampPoint(tail.Pos.Sub(tail.Heading.Delta()), bounds),
		Glyph:   tail.Heading.BodyGlyph(),
		Heading: tail.Heading,
	})
}
