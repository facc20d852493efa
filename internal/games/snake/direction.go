package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction represents a heading on the field.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the one-cell offset of a move in this direction.
func (d Direction) Delta() core.Point {
	switch d {
	case DirUp:
		return core.Point{X: 0, Y: -1}
	case DirDown:
		return core.Point{X: 0, Y: 1}
	case DirLeft:
		return core.Point{X: -1, Y: 0}
	default:
		return core.Point{X: 1, Y: 0}
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Vertical reports whether the heading moves along a column.
func (d Direction) Vertical() bool {
	return d == DirUp || d == DirDown
}

// HeadGlyph is the arrow drawn for a head moving in this direction.
func (d Direction) HeadGlyph() rune {
	switch d {
	case DirUp:
		return '▲'
	case DirDown:
		return '▼'
	case DirLeft:
		return '◀'
	default:
		return '▶'
	}
}

// BodyGlyph is the connector drawn for a body segment with this heading.
func (d Direction) BodyGlyph() rune {
	if d.Vertical() {
		return '┃'
	}
	return '━'
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// directionFor maps a movement action to a heading.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}

// Steer returns the heading that results from action a while moving in
// heading. Non-movement actions and direct reversals keep the heading.
func Steer(a core.Action, heading Direction) Direction {
	d, ok := directionFor(a)
	if !ok || d == heading.Opposite() {
		return heading
	}
	return d
}
