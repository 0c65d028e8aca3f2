package quest

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pharmacy-quest/internal/leaderboard"
)

// Settings are the tunable constants of a session.
type Settings struct {
	PointsPerItem   int
	TransitionDelay time.Duration // Grace period after a level is cleared
	BlinkInterval   time.Duration // Name prompt cursor blink
	RecentLimit     int           // Leaderboard lines shown
}

// DefaultSettings returns the stock game rules.
func DefaultSettings() Settings {
	return Settings{
		PointsPerItem:   100,
		TransitionDelay: 500 * time.Millisecond,
		BlinkInterval:   500 * time.Millisecond,
		RecentLimit:     10,
	}
}

// LeaderboardStore persists finished sessions.
type LeaderboardStore interface {
	Append(e leaderboard.Entry) error
	ReadRecent(limit int) ([]string, error)
}

// Archive records finished sessions somewhere besides the leaderboard.
type Archive interface {
	RecordResult(e leaderboard.Entry, finishedAt time.Time) (int64, error)
}

// Engine applies events to session states.
type Engine struct {
	catalog  *Catalog
	board    LeaderboardStore
	archive  Archive
	settings Settings
	logger   *log.Logger
}

// NewEngine creates an engine over a validated catalog and a leaderboard.
// A nil logger discards log output.
func NewEngine(catalog *Catalog, board LeaderboardStore, settings Settings, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		catalog:  catalog,
		board:    board,
		settings: settings,
		logger:   logger,
	}
}

// SetArchive attaches an optional archive that receives every saved result.
func (e *Engine) SetArchive(a Archive) {
	e.archive = a
}

// Settings returns the engine rules.
func (e *Engine) Settings() Settings {
	return e.settings
}

// Catalog returns the level catalog.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Apply returns the state that follows s after ev at time now.
// Quit is accepted everywhere and ScreenQuit absorbs everything.
func (e *Engine) Apply(s State, ev Event, now time.Time) State {
	if s.Screen == ScreenQuit {
		return s
	}
	if ev.Kind == EventQuit {
		s.Screen = ScreenQuit
		return s
	}

	switch s.Screen {
	case ScreenMenu:
		return e.applyMenu(s, ev, now)
	case ScreenPlaying:
		return e.applyPlaying(s, ev, now)
	case ScreenLevelTransition:
		return e.applyTransition(s, ev, now)
	case ScreenNameEntry:
		return e.applyNameEntry(s, ev, now)
	case ScreenLeaderboard:
		return e.applyLeaderboard(s, ev)
	}
	return s
}

// ApplyAll folds a batch of events collected during one frame.
func (e *Engine) ApplyAll(s State, events []Event, now time.Time) State {
	for _, ev := range events {
		s = e.Apply(s, ev, now)
	}
	return s
}

func (e *Engine) applyMenu(s State, ev Event, now time.Time) State {
	switch ev.Kind {
	case EventStartGame:
		return e.startSession(now)
	case EventViewLeaderboard:
		return e.openLeaderboard()
	}
	return s
}

func (e *Engine) startSession(now time.Time) State {
	if _, err := e.catalog.Level(1); err != nil {
		e.logger.Error("cannot start session", "error", err)
		return NewState()
	}
	e.logger.Debug("session started")
	return State{
		Screen:    ScreenPlaying,
		Level:     1,
		StartedAt: now,
	}
}

func (e *Engine) applyPlaying(s State, ev Event, now time.Time) State {
	if ev.Kind != EventClick {
		return s
	}

	level, err := e.catalog.Level(s.Level)
	if err != nil {
		e.logger.Error("active level missing", "level", s.Level, "error", err)
		return s
	}

	found, id, ok := RegisterClick(level, s.Found, ev.Pos)
	if !ok {
		return s
	}

	s.Found = found
	s.LastFound = id
	s.Score += e.settings.PointsPerItem

	if IsLevelComplete(level, s.Found) {
		s.Screen = ScreenLevelTransition
		s.TransitionEnds = now.Add(e.settings.TransitionDelay)
		e.logger.Debug("level cleared", "level", s.Level, "score", s.Score)
	}
	return s
}

func (e *Engine) applyTransition(s State, ev Event, now time.Time) State {
	if ev.Kind != EventTick || now.Before(s.TransitionEnds) {
		return s
	}

	if s.Level < e.catalog.Count() {
		s.Level++
		s.Found = FoundSet{}
		s.LastFound = ""
		s.TransitionEnds = time.Time{}
		s.Screen = ScreenPlaying
		return s
	}

	s.Screen = ScreenSessionComplete
	s.FinishedAt = now
	s.TransitionEnds = time.Time{}
	e.logger.Debug("session complete", "screen", s.Screen, "score", s.Score, "elapsed", s.Elapsed(now))
	return promptName(s, now)
}

// promptName moves a completed session to the name prompt.
func promptName(s State, now time.Time) State {
	s.Screen = ScreenNameEntry
	s.Name = NewNameBuffer(now)
	return s
}

func (e *Engine) applyNameEntry(s State, ev Event, now time.Time) State {
	switch ev.Kind {
	case EventTick:
		s.Name.Blink(now, e.settings.BlinkInterval)
	case EventConfirm:
		return e.commit(s, now)
	case EventKey:
		switch ev.Key {
		case KeyRune:
			s.Name.Append(ev.Rune)
		case KeyBackspace:
			s.Name.Backspace()
		case KeyConfirm:
			return e.commit(s, now)
		}
	}
	return s
}

// commit is shared by the confirm key and the save control so both apply
// the same validation.
func (e *Engine) commit(s State, now time.Time) State {
	name, ok := s.Name.Commit()
	if !ok {
		return s
	}

	entry := leaderboard.NewEntry(name, s.Score, s.Elapsed(now))
	if err := e.board.Append(entry); err != nil {
		// The player is never told; the session ends as if the save worked.
		e.logger.Error("could not save result", "error", err, "name", entry.Name, "score", entry.Score)
	} else {
		e.logger.Info("result saved", "name", entry.Name, "score", entry.Score,
			"minutes", entry.Minutes, "seconds", entry.Seconds)
	}

	if e.archive != nil {
		finishedAt := s.FinishedAt
		if finishedAt.IsZero() {
			finishedAt = now
		}
		if _, err := e.archive.RecordResult(entry, finishedAt); err != nil {
			e.logger.Warn("could not archive result", "error", err)
		}
	}

	return NewState()
}

func (e *Engine) openLeaderboard() State {
	lines, err := e.board.ReadRecent(e.settings.RecentLimit)
	if err != nil {
		e.logger.Warn("could not read leaderboard", "error", err)
		lines = nil
	}
	return State{Screen: ScreenLeaderboard, Leaderboard: lines}
}

func (e *Engine) applyLeaderboard(s State, ev Event) State {
	switch {
	case ev.Kind == EventBack:
		return NewState()
	case ev.Kind == EventKey && ev.Key == KeyCancel:
		return NewState()
	}
	return s
}
