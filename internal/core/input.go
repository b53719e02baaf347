package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - move cursor up
	ActionDown           // S, J, Down arrow - move cursor down
	ActionLeft           // A, H, Left arrow - move cursor left
	ActionRight          // D, L, Right arrow - move cursor right
	ActionConfirm        // Enter, Space - click the cell under the cursor / submit
	ActionErase          // Backspace - remove the last picked item
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	ActionPick1          // 1..9 - direct pick (cell or color), see PickAction
	ActionPick2
	ActionPick3
	ActionPick4
	ActionPick5
	ActionPick6
	ActionPick7
	ActionPick8
	ActionPick9
)

// PickAction returns the direct-pick action for n in [1, 9].
func PickAction(n int) Action {
	if n < 1 || n > 9 {
		return ActionNone
	}
	return ActionPick1 + Action(n-1)
}

// PickIndex returns the zero-based index of a direct-pick action.
func (a Action) PickIndex() (int, bool) {
	if a < ActionPick1 || a > ActionPick9 {
		return 0, false
	}
	return int(a - ActionPick1), true
}

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
	case ActionConfirm:
		return "Confirm"
	case ActionErase:
		return "Erase"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	}
	if i, ok := a.PickIndex(); ok {
		return "Pick" + string(rune('1'+i))
	}
	return "Unknown"
}

// InputFrame represents the input state for a single player during one simulation tick.
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

// Pick returns the zero-based index of the direct pick in this frame, if any.
// When several picks arrive in one frame the lowest wins.
func (f InputFrame) Pick() (int, bool) {
	for a := ActionPick1; a <= ActionPick9; a++ {
		if f.Has(a) {
			return a.PickIndex()
		}
	}
	return 0, false
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
