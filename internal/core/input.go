package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, K, Up arrow - move cursor up
	ActionDown            // S, J, Down arrow - move cursor down
	ActionLeft            // A, H, Left arrow - move cursor left
	ActionRight           // D, L, Right arrow - move cursor right
	ActionUncover         // Space, Enter - uncover the cell under the cursor
	ActionFlag            // F - cycle flag/question on the cell under the cursor
	ActionRestart         // R key - start a new board
	ActionQuit            // Q, Ctrl+C - exit
	ActionPause           // P - pause/unpause
	ActionClick           // Left mouse button at InputFrame.Pointer
	ActionAltClick        // Right mouse button at InputFrame.Pointer
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
	case ActionUncover:
		return "Uncover"
	case ActionFlag:
		return "Flag"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionClick:
		return "Click"
	case ActionAltClick:
		return "AltClick"
	default:
		return "Unknown"
	}
}

// InputFrame represents the player's input during one tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointer is the screen cell of the last mouse click this frame.
	// Only meaningful when ActionClick or ActionAltClick is set.
	Pointer Point
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetClick records a mouse click at screen cell (x, y).
func (f *InputFrame) SetClick(a Action, x, y int) {
	f.Set(a)
	f.Pointer = Point{X: x, Y: y}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = Point{}
}
