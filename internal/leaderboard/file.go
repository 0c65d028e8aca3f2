package leaderboard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore is the append-only leaderboard file.
type FileStore struct {
	path string
	unit string
}

// NewFileStore returns a store writing to path with the given score unit label.
// An empty unit falls back to DefaultUnitLabel. The file is created lazily on
// the first append.
func NewFileStore(path, unit string) *FileStore {
	if unit == "" {
		unit = DefaultUnitLabel
	}
	return &FileStore{path: path, unit: unit}
}

// Path returns the leaderboard file path.
func (s *FileStore) Path() string {
	return s.path
}

// Append writes one entry at the end of the file, creating the file and its
// parent directory when missing.
func (s *FileStore) Append(e Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("leaderboard: cannot create directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("leaderboard: cannot open %s: %w", s.path, err)
	}

	if _, err := f.WriteString(e.Line(s.unit)); err != nil {
		f.Close()
		return fmt.Errorf("leaderboard: cannot write %s: %w", s.path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("leaderboard: cannot close %s: %w", s.path, err)
	}
	return nil
}

// ReadRecent returns up to limit most recent lines, oldest first, each with
// its trailing newline intact. A missing file is an empty leaderboard.
func (s *FileStore) ReadRecent(limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("leaderboard: cannot open %s: %w", s.path, err)
	}
	defer f.Close()

	// Ring buffer over the whole file keeps memory bounded by limit.
	ring := make([]string, limit)
	n := 0
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			ring[n%limit] = line
			n++
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leaderboard: cannot read %s: %w", s.path, err)
		}
	}

	count := min(n, limit)
	out := make([]string, 0, count)
	for i := n - count; i < n; i++ {
		out = append(out, ring[i%limit])
	}
	return out, nil
}
