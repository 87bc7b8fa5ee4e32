package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cornmaze/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionSeedPrev, false},
		{runeKey('a'), core.ActionSeedPrev, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionSeedNext, false},
		{runeKey('d'), core.ActionSeedNext, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionLevelUp, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionLevelDown, false},
		{runeKey('r'), core.ActionRandom, false},
		{runeKey('f'), core.ActionToggleFog, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{runeKey('?'), core.ActionHelp, false},
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		action, quit := km.MapKey(tc.msg)
		if action != tc.action || quit != tc.quit {
			t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), action, quit, tc.action, tc.quit)
		}
	}
}

func TestBrowserKeyMapHelp(t *testing.T) {
	keys := DefaultBrowserKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}

	n := 0
	for _, col := range keys.FullHelp() {
		n += len(col)
	}
	if n != 9 {
		t.Errorf("FullHelp lists %d bindings, expected all 9", n)
	}
}
