package quest

import "github.com/vovakirdan/pharmacy-quest/internal/core"

// EventKind identifies the kind of input delivered to the engine.
type EventKind int

const (
	EventNone            EventKind = iota
	EventClick                     // Pointer press at Pos (absolute screen pixels)
	EventKey                       // Key press; see Key and Rune
	EventTick                      // One frame elapsed
	EventStartGame                 // "New game" menu action
	EventViewLeaderboard           // "Leaderboard" menu action
	EventBack                      // Back control on the leaderboard
	EventConfirm                   // Pointer press on the save control
	EventQuit                      // Window closed or quit requested
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventClick:
		return "Click"
	case EventKey:
		return "Key"
	case EventTick:
		return "Tick"
	case EventStartGame:
		return "StartGame"
	case EventViewLeaderboard:
		return "ViewLeaderboard"
	case EventBack:
		return "Back"
	case EventConfirm:
		return "Confirm"
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyCode distinguishes control keys from printable characters.
type KeyCode int

const (
	KeyRune      KeyCode = iota // Printable character in Event.Rune
	KeyConfirm                  // Enter
	KeyCancel                   // Escape
	KeyBackspace                // Backspace
)

// Event is one discrete input for the state machine.
type Event struct {
	Kind EventKind
	Pos  core.Point
	Key  KeyCode
	Rune rune
}

// On returns an event that carries no payload.
func On(kind EventKind) Event {
	return Event{Kind: kind}
}

// ClickAt returns a pointer click at absolute screen coordinates.
func ClickAt(x, y int) Event {
	return Event{Kind: EventClick, Pos: core.Pt(x, y)}
}

// TypeRune returns a key press of a character.
func TypeRune(r rune) Event {
	return Event{Kind: EventKey, Key: KeyRune, Rune: r}
}

// PressKey returns a key press of a control key.
func PressKey(code KeyCode) Event {
	return Event{Kind: EventKey, Key: code}
}
