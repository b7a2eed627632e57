package core

// Action represents a semantic game action, abstracted from physical key presses.
// Hosts translate device state into actions so the simulation never sees keys.
type Action int

const (
	ActionNone   Action = iota
	ActionLeft          // Left arrow - accelerate paddle left
	ActionRight         // Right arrow - accelerate paddle right
	ActionEscape        // Escape - terminate the session
	ActionReset         // R - rebuild ball, paddle and level
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionEscape:
		return "Escape"
	case ActionReset:
		return "Reset"
	default:
		return "Unknown"
	}
}

// InputFrame is the key state snapshot for one simulation frame.
// An action present in the frame is held down for the whole frame.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an input frame with the given actions held.
func NewInputFrame(held ...Action) InputFrame {
	f := InputFrame{
		Actions: make(map[Action]bool, len(held)),
	}
	for _, a := range held {
		f.Set(a)
	}
	return f
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}
