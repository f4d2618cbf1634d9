package core

// Action represents a semantic screen action, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionRoll        // Space, Enter, R, or a click on the roll button
	ActionHelp        // ? - toggle the full help
	ActionQuit        // Q, Ctrl+C - exit the screen
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRoll:
		return "Roll"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
