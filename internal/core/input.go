package core

// Action represents a semantic host action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow - move menu cursor up
	ActionDown              // S, Down arrow - move menu cursor down
	ActionConfirm           // Enter - confirm selection or name
	ActionBack              // Escape, B - leave the leaderboard
	ActionBackspace         // Backspace - delete last name character
	ActionQuit              // Q, Ctrl+C - exit the game
	ActionScreenshot        // Ctrl+S - dump current frame to a file
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
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionBackspace:
		return "Backspace"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}
