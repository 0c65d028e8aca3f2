package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pharmacy-quest/internal/config"
	"github.com/vovakirdan/pharmacy-quest/internal/core"
	"github.com/vovakirdan/pharmacy-quest/internal/quest"
)

// Model is the Bubble Tea model hosting one quest engine.
// Terminal input becomes quest events; the engine state is drawn every frame.
type Model struct {
	engine *quest.Engine
	state  quest.State
	screen *core.Screen
	layout Layout
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	table  table.Model
	cursor int // Menu selection

	logger  *log.Logger
	shotDir string
	now     func() time.Time

	quitting bool
}

// NewModel creates a host for engine sized by cfg. A nil logger discards output.
func NewModel(engine *quest.Engine, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	shotDir, err := config.ExpandHome(filepath.Join("~", config.AppDir, "screenshots"))
	if err != nil {
		shotDir = "screenshots"
	}

	layout := NewLayout(cfg.ScreenW, cfg.ScreenH)
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		engine:  engine,
		state:   quest.NewState(),
		screen:  core.NewScreen(layout.Cols, layout.Rows),
		layout:  layout,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		logger:  logger,
		shotDir: shotDir,
		now:     time.Now,
	}
}

// State returns the current engine state.
func (m Model) State() quest.State {
	return m.state
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// apply feeds events to the engine and reacts to screen changes.
func (m Model) apply(events ...quest.Event) (Model, tea.Cmd) {
	prev := m.state.Screen
	m.state = m.engine.ApplyAll(m.state, events, m.now())

	switch {
	case m.state.Screen == quest.ScreenQuit:
		m.quitting = true
		return m, tea.Quit
	case m.state.Screen == prev:
	case m.state.Screen == quest.ScreenLeaderboard:
		snap := m.engine.Snapshot(m.state, m.now())
		m.table = newLeaderboardTable(snap.Leaderboard, m.layout)
	case m.state.Screen == quest.ScreenMenu:
		m.cursor = 0
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(m.state.Screen, msg)

	switch action {
	case core.ActionQuit:
		return m.apply(quest.On(quest.EventQuit))
	case core.ActionScreenshot:
		if _, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		}
		return m, nil
	}

	switch m.state.Screen {
	case quest.ScreenMenu:
		return m.handleMenuAction(action)

	case quest.ScreenNameEntry:
		return m.handleNameKey(action, msg)

	case quest.ScreenLeaderboard:
		if action == core.ActionBack {
			return m.apply(quest.On(quest.EventBack))
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleMenuAction(action core.Action) (tea.Model, tea.Cmd) {
	buttons := menuButtons(m.layout)

	switch action {
	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case core.ActionDown:
		if m.cursor < len(buttons)-1 {
			m.cursor++
		}
	case core.ActionConfirm:
		return m.apply(quest.On(buttons[m.cursor].Event))
	}
	return m, nil
}

func (m Model) handleNameKey(action core.Action, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionConfirm:
		return m.apply(quest.PressKey(quest.KeyConfirm))
	case core.ActionBackspace:
		return m.apply(quest.PressKey(quest.KeyBackspace))
	case core.ActionBack:
		return m.apply(quest.PressKey(quest.KeyCancel))
	}

	runes := TextRunes(msg)
	events := make([]quest.Event, len(runes))
	for i, r := range runes {
		events[i] = quest.TypeRune(r)
	}
	return m.apply(events...)
}

// handleMouse turns left clicks into control presses or scene clicks.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	var buttons []Button
	switch m.state.Screen {
	case quest.ScreenMenu:
		buttons = menuButtons(m.layout)
	case quest.ScreenNameEntry:
		buttons = []Button{saveButton(m.layout)}
	case quest.ScreenLeaderboard:
		buttons = []Button{backButton(m.layout)}
	case quest.ScreenPlaying, quest.ScreenLevelTransition:
		if p, ok := m.layout.CellToScene(msg.X, msg.Y); ok {
			return m.apply(quest.ClickAt(p.X, p.Y))
		}
		return m, nil
	}

	if b, ok := buttonAt(buttons, msg.X, msg.Y); ok {
		return m.apply(quest.On(b.Event))
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.layout = NewLayout(msg.Width, msg.Height)
	m.screen.Resize(m.layout.Cols, m.layout.Rows)
	m.help.Width = msg.Width

	if m.state.Screen == quest.ScreenLeaderboard {
		snap := m.engine.Snapshot(m.state, m.now())
		m.table = newLeaderboardTable(snap.Leaderboard, m.layout)
	}
	return m, nil
}

// handleTick advances timers and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	next, cmd := m.apply(quest.On(quest.EventTick))
	if cmd != nil {
		return next, cmd
	}
	return next, tickCmd(m.config.TickRate)
}

// render draws the current state into the screen buffer.
func (m Model) render() {
	m.screen.Clear()
	snap := m.engine.Snapshot(m.state, m.now())

	switch snap.Screen {
	case quest.ScreenMenu:
		drawMenu(m.screen, m.layout, m.cursor)
	case quest.ScreenPlaying, quest.ScreenLevelTransition, quest.ScreenSessionComplete:
		drawPlaying(m.screen, m.layout, snap, m.config.Seed)
	case quest.ScreenNameEntry:
		drawNameEntry(m.screen, m.layout, snap)
	case quest.ScreenLeaderboard:
		drawLeaderboard(m.screen, m.layout, m.table.View(), len(snap.Leaderboard) == 0)
	}
}

// saveScreenshot writes the current frame as plain text and returns its path.
func (m Model) saveScreenshot() (string, error) {
	m.render()

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := m.now().Format("20060102_150405.000")
	path := filepath.Join(m.shotDir, fmt.Sprintf("quest_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.helpFor(m.state.Screen))
}

// Run starts the Bubble Tea program with a new model.
func Run(engine *quest.Engine, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(engine, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks are the main input
	)

	_, err := p.Run()
	return err
}
