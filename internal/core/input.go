package core

// Action represents a semantic session-level action, abstracted from
// physical key presses. Per-actor movement buttons are not Actions; they
// are carried as held-state in sim.Controls. Actions cover the UI layer:
// pause, reset, menu navigation.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P - push/pop a pause context
	ActionReset          // R - full reset to the initial level state
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionReset:
		return "Reset"
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
