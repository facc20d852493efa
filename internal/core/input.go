package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow
	ActionDown           // S, J, Down arrow
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action requests a heading.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}

// KeyAction maps a single raw key byte to an action.
// WASD and HJKL are synonymous sets; unmapped bytes yield ActionNone.
func KeyAction(b byte) Action {
	switch b {
	case 'w', 'W', 'k', 'K':
		return ActionUp
	case 's', 'S', 'j', 'J':
		return ActionDown
	case 'a', 'A', 'h', 'H':
		return ActionLeft
	case 'd', 'D', 'l', 'L':
		return ActionRight
	case 'r', 'R':
		return ActionRestart
	case 'q', 'Q', 0x03: // 0x03 is Ctrl+C in raw mode
		return ActionQuit
	}
	return ActionNone
}

// InputFrame represents the input state for one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds a frame holding a single action. ActionNone yields an
// empty frame.
func FrameOf(a Action) InputFrame {
	f := NewInputFrame()
	if a != ActionNone {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
