package leaderboard

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "leaderboard.txt"), "")
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	return string(data)
}

func TestEntryLine(t *testing.T) {
	tests := []struct {
		name     string
		entry    Entry
		expected string
	}{
		{
			name:     "cyrillic name",
			entry:    Entry{Name: "Иван", Score: 500, Minutes: 2, Seconds: 30},
			expected: "Иван: 500 очков, 02:30\n",
		},
		{
			name:     "all zeros",
			entry:    Entry{Name: "A", Score: 0, Minutes: 0, Seconds: 0},
			expected: "A: 0 очков, 00:00\n",
		},
		{
			name:     "padded name is trimmed",
			entry:    Entry{Name: " John ", Score: 100, Minutes: 1, Seconds: 5},
			expected: "John: 100 очков, 01:05\n",
		},
		{
			name:     "colon kept verbatim",
			entry:    Entry{Name: "a:b", Score: 3000, Minutes: 12, Seconds: 59},
			expected: "a:b: 3000 очков, 12:59\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Line(DefaultUnitLabel); got != tt.expected {
				t.Errorf("Line() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewEntry(t *testing.T) {
	e := NewEntry("  Мария ", 1500, 2*time.Minute+30*time.Second+900*time.Millisecond)

	if e.Name != "Мария" || e.Score != 1500 || e.Minutes != 2 || e.Seconds != 30 {
		t.Errorf("NewEntry() = %+v, want {Мария 1500 2 30}", e)
	}

	if e := NewEntry("x", 0, -time.Second); e.Minutes != 0 || e.Seconds != 0 {
		t.Errorf("NewEntry() with negative duration = %+v, want zero time", e)
	}
}

func TestAppendRoundTrip(t *testing.T) {
	store := newTestStore(t)

	if err := store.Append(Entry{Name: "Иван", Score: 500, Minutes: 2, Seconds: 30}); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	if err := store.Append(Entry{Name: "A", Score: 0}); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}

	want := "Иван: 500 очков, 02:30\nA: 0 очков, 00:00\n"
	if got := readFile(t, store.Path()); got != want {
		t.Errorf("file contents = %q, want %q", got, want)
	}

	lines, err := store.ReadRecent(10)
	if err != nil {
		t.Fatalf("ReadRecent() failed: %v", err)
	}
	if len(lines) != 2 || lines[0] != "Иван: 500 очков, 02:30\n" || lines[1] != "A: 0 очков, 00:00\n" {
		t.Errorf("ReadRecent() = %q", lines)
	}
}

func TestAppendRejectsInvalidEntries(t *testing.T) {
	store := newTestStore(t)

	invalid := []Entry{
		{Name: "", Score: 100, Seconds: 30},
		{Name: "  ", Score: 300, Minutes: 1, Seconds: 45},
		{Name: "x\ny", Score: 1},
		{Name: "neg", Score: -1},
		{Name: "sec", Score: 1, Seconds: 60},
	}

	for _, e := range invalid {
		if err := store.Append(e); !errors.Is(err, ErrInvalidEntry) {
			t.Errorf("Append(%+v) error = %v, want ErrInvalidEntry", e, err)
		}
	}

	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Error("invalid entries must not create the leaderboard file")
	}
}

func TestAppendNeverRewrites(t *testing.T) {
	store := newTestStore(t)

	if err := os.WriteFile(store.Path(), []byte("legacy line without newline"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if err := store.Append(Entry{Name: "B", Score: 10, Seconds: 1}); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}

	want := "legacy line without newlineB: 10 очков, 00:01\n"
	if got := readFile(t, store.Path()); got != want {
		t.Errorf("file contents = %q, want %q", got, want)
	}
}

func TestAppendCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "leaderboard.txt")
	store := NewFileStore(path, "pts")

	if err := store.Append(Entry{Name: "Ann", Score: 7, Minutes: 0, Seconds: 9}); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	if got := readFile(t, path); got != "Ann: 7 pts, 00:09\n" {
		t.Errorf("file contents = %q", got)
	}
}

func TestAppendUnwritable(t *testing.T) {
	dir := t.TempDir()
	// A directory in place of the file makes the open fail.
	path := filepath.Join(dir, "leaderboard.txt")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("Mkdir() failed: %v", err)
	}

	store := NewFileStore(path, "")
	if err := store.Append(Entry{Name: "Test", Score: 100, Seconds: 10}); err == nil {
		t.Error("Append() on a directory should fail")
	}
}

func TestReadRecentMissingFile(t *testing.T) {
	store := newTestStore(t)

	lines, err := store.ReadRecent(10)
	if err != nil {
		t.Fatalf("ReadRecent() on missing file failed: %v", err)
	}
	if lines == nil || len(lines) != 0 {
		t.Errorf("ReadRecent() = %#v, want empty non-nil slice", lines)
	}
}

func TestReadRecentWindow(t *testing.T) {
	store := newTestStore(t)

	for i := 1; i <= 15; i++ {
		if err := store.Append(Entry{Name: fmt.Sprintf("p%02d", i), Score: i * 100}); err != nil {
			t.Fatalf("Append(%d) failed: %v", i, err)
		}
	}

	lines, err := store.ReadRecent(10)
	if err != nil {
		t.Fatalf("ReadRecent() failed: %v", err)
	}
	if len(lines) != 10 {
		t.Fatalf("ReadRecent(10) returned %d lines, want 10", len(lines))
	}
	for i, line := range lines {
		n := i + 6
		want := fmt.Sprintf("p%02d: %d очков, 00:00\n", n, n*100)
		if line != want {
			t.Errorf("line %d = %q, want %q", i, line, want)
		}
	}

	if lines, _ := store.ReadRecent(0); len(lines) != 0 {
		t.Errorf("ReadRecent(0) = %q, want none", lines)
	}
	if lines, _ := store.ReadRecent(100); len(lines) != 15 {
		t.Errorf("ReadRecent(100) returned %d lines, want 15", len(lines))
	}
}
