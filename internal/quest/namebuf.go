package quest

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// MaxNameLength is the name prompt capacity in characters.
const MaxNameLength = 20

// NameBuffer accumulates the player's name for the leaderboard.
// The text is a string so copies of a State never share mutable storage.
type NameBuffer struct {
	text          string
	cursorVisible bool
	lastBlink     time.Time
}

// NewNameBuffer returns an empty buffer with the cursor shown.
func NewNameBuffer(now time.Time) NameBuffer {
	return NameBuffer{cursorVisible: true, lastBlink: now}
}

// Text returns the raw, untrimmed buffer contents.
func (b NameBuffer) Text() string {
	return b.text
}

// Len returns the buffer length in characters.
func (b NameBuffer) Len() int {
	return utf8.RuneCountInString(b.text)
}

// Append adds r unless the buffer is full or r is not printable.
// Returns whether the buffer changed.
func (b *NameBuffer) Append(r rune) bool {
	if b.Len() >= MaxNameLength || !unicode.IsPrint(r) {
		return false
	}
	b.text += string(r)
	return true
}

// Backspace removes the last character. Returns whether the buffer changed.
func (b *NameBuffer) Backspace() bool {
	if b.text == "" {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(b.text)
	b.text = b.text[:len(b.text)-size]
	return true
}

// Commit returns the trimmed name, or false when nothing but whitespace
// was typed.
func (b NameBuffer) Commit() (string, bool) {
	name := strings.TrimSpace(b.text)
	if name == "" {
		return "", false
	}
	return name, true
}

// CursorVisible reports the blink phase of the text cursor.
func (b NameBuffer) CursorVisible() bool {
	return b.cursorVisible
}

// Blink flips the cursor once more than interval has passed since the last flip.
func (b *NameBuffer) Blink(now time.Time, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if now.Sub(b.lastBlink) > interval {
		b.cursorVisible = !b.cursorVisible
		b.lastBlink = now
	}
}
