package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // menu navigation
	ActionDown             // menu navigation
	ActionJump             // Space - jump while grounded
	ActionShoot            // A - fire a projectile when the cooldown allows
	ActionConfirm          // Enter - confirm selection, start a typing round
	ActionBack             // Esc - go back to menu
	ActionBackspace        // Backspace - delete the last typed character
	ActionRestart          // R - restart the current session
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause
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
	case ActionJump:
		return "Jump"
	case ActionShoot:
		return "Shoot"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionBackspace:
		return "Backspace"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame collects everything the player did between two simulation ticks.
type InputFrame struct {
	Actions map[Action]bool

	// Text holds printable characters typed this frame, in order.
	// Only filled for games that accept text input.
	Text []rune
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

// Type appends typed characters to the frame.
func (f *InputFrame) Type(runes ...rune) {
	f.Text = append(f.Text, runes...)
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Text) == 0
}

// Clear resets all actions and text for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Text = f.Text[:0]
}
