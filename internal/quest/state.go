package quest

import "time"

// Screen is the state machine's current state tag.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenPlaying
	ScreenLevelTransition
	ScreenSessionComplete
	ScreenNameEntry
	ScreenLeaderboard
	ScreenQuit
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenPlaying:
		return "playing"
	case ScreenLevelTransition:
		return "level_transition"
	case ScreenSessionComplete:
		return "session_complete"
	case ScreenNameEntry:
		return "name_entry"
	case ScreenLeaderboard:
		return "leaderboard"
	case ScreenQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// State is everything one session owns. It is a plain value: the engine takes
// a State and returns the next one.
type State struct {
	Screen Screen

	Level     int      // Active level ordinal, 0 outside a session
	Found     FoundSet // Items found on the active level
	LastFound string   // Most recent discovery, for highlighting
	Score     int

	StartedAt      time.Time
	FinishedAt     time.Time // Set once the last level is cleared
	TransitionEnds time.Time

	Name        NameBuffer
	Leaderboard []string // Lines shown on the leaderboard screen
}

// NewState returns the initial state: the main menu with no session.
func NewState() State {
	return State{Screen: ScreenMenu}
}

// InSession reports whether a game is running or awaiting a name.
func (s State) InSession() bool {
	switch s.Screen {
	case ScreenPlaying, ScreenLevelTransition, ScreenSessionComplete, ScreenNameEntry:
		return true
	}
	return false
}

// Elapsed returns the session duration at now. It is derived from the start
// timestamp each time and frozen once the session is finished.
func (s State) Elapsed(now time.Time) time.Duration {
	if s.StartedAt.IsZero() {
		return 0
	}
	end := now
	if !s.FinishedAt.IsZero() {
		end = s.FinishedAt
	}
	if d := end.Sub(s.StartedAt); d > 0 {
		return d
	}
	return 0
}

// MinutesSeconds splits Elapsed into whole minutes and seconds.
func (s State) MinutesSeconds(now time.Time) (int, int) {
	secs := int(s.Elapsed(now) / time.Second)
	return secs / 60, secs % 60
}
