package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter - start, pause, resume, back to menu
	ActionCancel         // Escape - quit from menu or game over
	ActionQuit           // Window close, Ctrl+C - ends the loop from any state
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the edge-triggered actions for a single simulation tick.
// A held key fires at most once: frontends clear the frame after every step.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Held is the level state of the movement keys for this frame.
	Held HeldKeys
}

// HeldKeys is the continuous keyboard state for paddle movement.
type HeldKeys struct {
	Left  bool
	Right bool
}

// Direction returns -1 for left, +1 for right and 0 for none.
// Right wins when both keys are down.
func (h HeldKeys) Direction() float64 {
	if h.Right {
		return 1
	}
	if h.Left {
		return -1
	}
	return 0
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

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all triggered actions for the next frame.
// Held keys are levels and are owned by the input provider, so they are kept.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
