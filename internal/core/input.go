package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left, A, H - shift ship left by one step
	ActionMoveRight        // Right, D, L - shift ship right by one step
	ActionFire             // Space, Up, K - launch a projectile
	ActionPause            // P, Escape - pause/unpause game
	ActionRestart          // R - start a fresh session
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions received during one platform frame.
// Actions are kept in arrival order and repeats are preserved, so pressing
// fire three times between frames yields three shots.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make([]Action, 0, 4)}
	f.Actions = append(f.Actions, actions...)
	return f
}

// Push appends an action to the frame. ActionNone is ignored.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Count(a) > 0
}

// Count returns how many times the given action was triggered this frame.
func (f InputFrame) Count(a Action) int {
	n := 0
	for _, got := range f.Actions {
		if got == a {
			n++
		}
	}
	return n
}

// Len returns the number of actions in the frame.
func (f InputFrame) Len() int {
	return len(f.Actions)
}

// Clear resets all actions for the next frame, keeping the backing array.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	return NewInputFrame(f.Actions...)
}
