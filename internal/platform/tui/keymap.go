package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cornmaze/internal/core"
)

// BrowserKeyMap defines the key bindings for the seed browser.
type BrowserKeyMap struct {
	SeedPrev  key.Binding
	SeedNext  key.Binding
	LevelUp   key.Binding
	LevelDown key.Binding
	Random    key.Binding
	Fog       key.Binding
	Confirm   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SeedPrev, k.SeedNext, k.Random, k.Confirm, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SeedPrev, k.SeedNext, k.Random},
		{k.LevelUp, k.LevelDown, k.Fog},
		{k.Confirm, k.Help, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		SeedPrev: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("◄/a", "prev seed"),
		),
		SeedNext: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("►/d", "next seed"),
		),
		LevelUp: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("▲/w", "harder"),
		),
		LevelDown: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("▼/s", "easier"),
		),
		Random: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "random seed"),
		),
		Fog: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "toggle fog"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "pick seed"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to browser actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys BrowserKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultBrowserKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() BrowserKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.SeedPrev):
		return core.ActionSeedPrev, false
	case key.Matches(msg, km.keys.SeedNext):
		return core.ActionSeedNext, false
	case key.Matches(msg, km.keys.LevelUp):
		return core.ActionLevelUp, false
	case key.Matches(msg, km.keys.LevelDown):
		return core.ActionLevelDown, false
	case key.Matches(msg, km.keys.Random):
		return core.ActionRandom, false
	case key.Matches(msg, km.keys.Fog):
		return core.ActionToggleFog, false
	case key.Matches(msg, km.keys.Confirm):
		return core.ActionConfirm, false
	case key.Matches(msg, km.keys.Help):
		return core.ActionHelp, false
	}

	return core.ActionNone, false
}
