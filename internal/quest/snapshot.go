package quest

import (
	"strings"
	"time"
)

// Snapshot is the read-only view of a state that the renderer draws each frame.
type Snapshot struct {
	Screen    Screen
	Level     int
	Levels    int
	Items     []Item // Items of the active level, declaration order
	Found     []string
	LastFound string
	Score     int
	Elapsed   time.Duration
	Minutes   int
	Seconds   int

	Name          string
	CursorVisible bool

	Leaderboard []string // Lines without their trailing newline
}

// Snapshot captures s at now for rendering.
func (e *Engine) Snapshot(s State, now time.Time) Snapshot {
	mins, secs := s.MinutesSeconds(now)
	snap := Snapshot{
		Screen:        s.Screen,
		Level:         s.Level,
		Levels:        e.catalog.Count(),
		Found:         s.Found.IDs(),
		LastFound:     s.LastFound,
		Score:         s.Score,
		Elapsed:       s.Elapsed(now),
		Minutes:       mins,
		Seconds:       secs,
		Name:          s.Name.Text(),
		CursorVisible: s.Name.CursorVisible(),
	}

	if lvl, err := e.catalog.Level(s.Level); err == nil {
		snap.Items = lvl.Items
	}

	snap.Leaderboard = make([]string, len(s.Leaderboard))
	for i, line := range s.Leaderboard {
		snap.Leaderboard[i] = strings.TrimRight(line, "\r\n")
	}
	return snap
}

// IsFound reports whether id is in the snapshot's found list.
func (s Snapshot) IsFound(id string) bool {
	for _, f := range s.Found {
		if f == id {
			return true
		}
	}
	return false
}
