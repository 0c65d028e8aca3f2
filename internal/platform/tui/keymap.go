package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pharmacy-quest/internal/core"
	"github.com/vovakirdan/pharmacy-quest/internal/quest"
)

// KeyMap defines the key bindings of the host.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Back       key.Binding
	Backspace  key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "вверх"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "вниз"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "выбрать"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "назад"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "стереть"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "выход"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "выход"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "снимок"),
		),
	}
}

// bindingSet adapts a list of bindings to help.KeyMap.
type bindingSet []key.Binding

// ShortHelp returns key bindings for the short help view.
func (b bindingSet) ShortHelp() []key.Binding { return b }

// FullHelp returns key bindings for the full help view.
func (b bindingSet) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

// helpFor returns the bindings worth showing on a screen.
func (k KeyMap) helpFor(s quest.Screen) bindingSet {
	switch s {
	case quest.ScreenMenu:
		return bindingSet{k.Up, k.Down, k.Select, k.Quit}
	case quest.ScreenPlaying, quest.ScreenLevelTransition:
		return bindingSet{k.Screenshot, k.Quit}
	case quest.ScreenNameEntry:
		return bindingSet{k.Select, k.Backspace, k.ForceQuit}
	case quest.ScreenLeaderboard:
		return bindingSet{k.Back, k.Quit}
	}
	return bindingSet{k.ForceQuit}
}

// MapKey translates a key message to a host action for the given screen.
// Name entry only reserves ctrl+c and ctrl+s; every other key is text or editing.
func (k KeyMap) MapKey(s quest.Screen, msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.ForceQuit):
		return core.ActionQuit
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot
	}

	if s == quest.ScreenNameEntry {
		switch msg.Type {
		case tea.KeyEnter:
			return core.ActionConfirm
		case tea.KeyBackspace:
			return core.ActionBackspace
		case tea.KeyEsc:
			return core.ActionBack
		}
		return core.ActionNone
	}

	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Select):
		return core.ActionConfirm
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// TextRunes returns the characters a key message types into the name field.
func TextRunes(msg tea.KeyMsg) []rune {
	switch msg.Type {
	case tea.KeyRunes:
		return msg.Runes
	case tea.KeySpace:
		return []rune{' '}
	}
	return nil
}
