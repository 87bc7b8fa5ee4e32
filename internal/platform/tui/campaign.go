package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cornmaze/internal/levels"
)

// Campaign layout constants
const (
	minWidthForPreview = 90 // Minimum width to show the level preview next to the table
)

// CampaignKeyMap defines the key bindings for the campaign browser.
type CampaignKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Fog    key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k CampaignKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Fog, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k CampaignKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Fog},
		{k.Select, k.Quit},
	}
}

// DefaultCampaignKeyMap returns default key bindings.
func DefaultCampaignKeyMap() CampaignKeyMap {
	return CampaignKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "prev level"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next level"),
		),
		Fog: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "toggle fog"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// CampaignModel is the Bubble Tea model listing hand-authored levels.
type CampaignModel struct {
	levels   []levels.Level
	table    table.Model
	help     help.Model
	keys     CampaignKeyMap
	fog      bool
	width    int
	height   int
	quitting bool
	selected int // -1 until a level is picked
}

// NewCampaignModel creates a new campaign browser.
func NewCampaignModel(lvls []levels.Level, width, height int) CampaignModel {
	h := help.New()
	h.ShowAll = false

	m := CampaignModel{
		levels:   lvls,
		keys:     DefaultCampaignKeyMap(),
		help:     h,
		width:    width,
		height:   height,
		selected: -1,
	}
	m.table = m.createTable()
	return m
}

// createTable creates a table with one row per level.
func (m *CampaignModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Name", Width: 16},
		{Title: "Grid", Width: 6},
		{Title: "Time", Width: 5},
		{Title: "Target", Width: 7},
		{Title: "Enemies", Width: 8},
		{Title: "Fog", Width: 4},
	}

	rows := make([]table.Row, len(m.levels))
	for i, lvl := range m.levels {
		g := lvl.Grid()
		fog := "-"
		if f, ok := lvl.FogOfWar(); ok && f.Enabled {
			fog = fmt.Sprintf("%d", f.RevealRadius)
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			lvl.Name(),
			fmt.Sprintf("%dx%d", g.Rows(), g.Cols()),
			fmt.Sprintf("%ds", lvl.TimeLimit()),
			fmt.Sprintf("%d", lvl.ItemsToAdvance()),
			fmt.Sprintf("%d", len(lvl.Enemies())),
			fog,
		}
	}

	height := len(rows) + 3 // Header and its border
	if m.height > 8 && height > m.height-8 {
		height = m.height - 8 // Leave room for header, help, and margins
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the campaign model.
func (m CampaignModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the campaign browser.
func (m CampaignModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if len(m.levels) > 0 {
				m.selected = m.table.Cursor()
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Fog):
			m.fog = !m.fog
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the campaign browser.
func (m CampaignModel) View() string {
	if m.quitting || m.selected >= 0 {
		return ""
	}

	t := GetTheme()
	var b strings.Builder

	b.WriteString(centerText(t.HUDTitle.Render("CAMPAIGN"), m.width))
	b.WriteString("\n\n")

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.levels) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(border.Render(emptyStyle.Render("No levels found.")))
	} else {
		tableRendered := border.Render(m.table.View())
		preview := RenderScreen(LevelScreen(m.levels[m.table.Cursor()].Level, LevelInfo{}, DrawOptions{
			Entities: true,
			Fog:      m.fog,
		}))

		if m.width >= minWidthForPreview {
			// Wide layout: table + preview
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableRendered, "  ", preview))
		} else {
			// Narrow layout: preview under the table
			b.WriteString(tableRendered)
			b.WriteString("\n")
			b.WriteString(preview)
		}
	}

	// Help bar
	b.WriteString("\n")
	b.WriteString(t.HUDControls.Render(m.help.View(m.keys)))

	return b.String()
}

// Selected returns the picked level, or false when the user quit.
func (m CampaignModel) Selected() (levels.Level, bool) {
	if m.selected < 0 || m.selected >= len(m.levels) {
		return levels.Level{}, false
	}
	return m.levels[m.selected], true
}

// RunCampaign runs the campaign browser.
// Returns the picked level, or ok=false if the user quit.
func RunCampaign(lvls []levels.Level, width, height int) (levels.Level, bool, error) {
	model := NewCampaignModel(lvls, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return levels.Level{}, false, err
	}

	m, ok := finalModel.(CampaignModel)
	if !ok {
		return levels.Level{}, false, nil
	}

	lvl, picked := m.Selected()
	return lvl, picked, nil
}
