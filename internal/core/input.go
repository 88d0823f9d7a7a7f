package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionMoveUp            // W
	ActionMoveDown          // S
	ActionMoveLeft          // A
	ActionMoveRight         // D
	ActionShootUp           // Up arrow
	ActionShootDown         // Down arrow
	ActionShootLeft         // Left arrow
	ActionShootRight        // Right arrow
	ActionPause             // P
	ActionRestart           // R, after game over
	ActionConfirm           // Enter
	ActionBack              // B, Escape when paused or over
	ActionQuit              // Escape, Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionShootUp:
		return "ShootUp"
	case ActionShootDown:
		return "ShootDown"
	case ActionShootLeft:
		return "ShootLeft"
	case ActionShootRight:
		return "ShootRight"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the snapshot of held actions for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
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

// InputSource supplies one input snapshot per frame.
type InputSource interface {
	Poll() InputFrame
}

// ScriptedInput replays a fixed sequence of frames, then empty frames.
type ScriptedInput struct {
	frames []InputFrame
	next   int
}

// NewScriptedInput creates a source that replays frames in order.
func NewScriptedInput(frames ...InputFrame) *ScriptedInput {
	return &ScriptedInput{frames: frames}
}

// Poll implements InputSource.
func (s *ScriptedInput) Poll() InputFrame {
	if s.next >= len(s.frames) {
		return NewInputFrame()
	}
	f := s.frames[s.next]
	s.next++
	return f
}
