// Package leaderboard persists finished sessions as an append-only UTF-8 text
// file, one line per result:
//
//	NAME: SCORE UNIT, MM:SS
//
// Lines are never rewritten or reordered. Reading returns them as opaque
// text; nothing here parses a line back.
package leaderboard

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultUnitLabel is the score unit written after the score.
const DefaultUnitLabel = "очков"

// ErrInvalidEntry is returned for an entry that cannot be written.
var ErrInvalidEntry = errors.New("invalid leaderboard entry")

// Entry is one immutable leaderboard record.
type Entry struct {
	Name    string
	Score   int
	Minutes int
	Seconds int
}

// NewEntry builds an entry from a name, a score and an elapsed duration.
// The name is trimmed; sub-second remainders are dropped.
func NewEntry(name string, score int, elapsed time.Duration) Entry {
	secs := int(elapsed / time.Second)
	if secs < 0 {
		secs = 0
	}
	return Entry{
		Name:    strings.TrimSpace(name),
		Score:   score,
		Minutes: secs / 60,
		Seconds: secs % 60,
	}
}

// Validate checks the record invariants.
func (e Entry) Validate() error {
	switch {
	case strings.TrimSpace(e.Name) == "":
		return fmt.Errorf("%w: empty name", ErrInvalidEntry)
	case strings.ContainsAny(e.Name, "\r\n"):
		return fmt.Errorf("%w: name contains a line break", ErrInvalidEntry)
	case e.Score < 0:
		return fmt.Errorf("%w: negative score %d", ErrInvalidEntry, e.Score)
	case e.Minutes < 0:
		return fmt.Errorf("%w: negative minutes %d", ErrInvalidEntry, e.Minutes)
	case e.Seconds < 0 || e.Seconds > 59:
		return fmt.Errorf("%w: seconds %d out of range", ErrInvalidEntry, e.Seconds)
	}
	return nil
}

// Line formats the entry as a single newline-terminated record.
func (e Entry) Line(unit string) string {
	return fmt.Sprintf("%s: %d %s, %02d:%02d\n", strings.TrimSpace(e.Name), e.Score, unit, e.Minutes, e.Seconds)
}
