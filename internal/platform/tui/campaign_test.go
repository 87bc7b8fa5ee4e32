package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cornmaze/internal/levels"
)

func newTestCampaign(t *testing.T) CampaignModel {
	t.Helper()
	lvls, err := levels.Campaign()
	if err != nil {
		t.Fatalf("Campaign failed: %v", err)
	}
	return NewCampaignModel(lvls, 120, 40)
}

func TestCampaignSelect(t *testing.T) {
	m := newTestCampaign(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should quit the browser")
	}

	lvl, ok := next.(CampaignModel).Selected()
	if !ok {
		t.Fatal("a level should be selected")
	}
	if lvl.Name() != "Level 3" {
		t.Errorf("selected %q, expected Level 3", lvl.Name())
	}
}

func TestCampaignQuit(t *testing.T) {
	m := newTestCampaign(t)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := next.(CampaignModel).Selected(); ok {
		t.Error("quitting should not select a level")
	}
}

func TestCampaignView(t *testing.T) {
	view := newTestCampaign(t).View()

	for _, want := range []string{"CAMPAIGN", "Level 1", "Level 4", "8x8", "Time"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestCampaignEmpty(t *testing.T) {
	m := NewCampaignModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No levels found.") {
		t.Error("empty campaign should say so")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("enter on an empty list should do nothing")
	}
	if _, ok := next.(CampaignModel).Selected(); ok {
		t.Error("nothing can be selected from an empty list")
	}
}
