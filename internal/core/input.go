package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform layer decides which actions are present on a given tick; the
// simulation only asks whether an action is present.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - run left (held)
	ActionRight          // Right arrow, D - run right (held)
	ActionJump           // Up arrow, W - jump / double jump (edge)
	ActionDash           // Shift, X - dash in facing direction
	ActionShoot          // Space, Z - fire a bullet
	ActionStart          // Space, Enter - leave the title screen
	ActionRestart        // R - restart after game over or win
	ActionPause          // P, Escape - pause/unpause
	ActionQuit           // Q, Ctrl+C - exit the program
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
	case ActionJump:
		return "Jump"
	case ActionDash:
		return "Dash"
	case ActionShoot:
		return "Shoot"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction maps a lower-case action name back to an Action.
// Used by the headless simulator's input scripts.
func ParseAction(name string) (Action, bool) {
	switch name {
	case "left":
		return ActionLeft, true
	case "right":
		return ActionRight, true
	case "jump":
		return ActionJump, true
	case "dash":
		return ActionDash, true
	case "shoot":
		return ActionShoot, true
	case "start":
		return ActionStart, true
	case "restart":
		return ActionRestart, true
	case "pause":
		return ActionPause, true
	}
	return ActionNone, false
}

// InputFrame represents the input state for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are present this tick.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as present for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is present this frame.
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

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
