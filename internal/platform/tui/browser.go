package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cornmaze/internal/core"
	"github.com/vovakirdan/cornmaze/internal/maze"
)

// MaxBrowseLevel bounds the run level in the browser.
const MaxBrowseLevel = 99

// BrowserModel is the Bubble Tea model for the endless-mode seed picker.
// It previews the level a seed produces; nothing is played.
type BrowserModel struct {
	seed      uint32
	runLevel  int
	level     *maze.Level
	fog       bool
	width     int
	height    int
	keyMapper *KeyMapper
	help      help.Model
	now       func() time.Time
	quitting  bool
	confirmed bool
}

// NewBrowserModel creates a browser starting at the configured seed and run
// level. A zero seed picks one from the clock.
func NewBrowserModel(cfg core.RuntimeConfig) BrowserModel {
	m := BrowserModel{
		seed:      cfg.Seed,
		runLevel:  core.Clamp(cfg.RunLevel, 1, MaxBrowseLevel),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		now:       time.Now,
	}
	if m.seed == 0 {
		m.seed = maze.RandomSeed(m.now())
	}
	m.regenerate()
	return m
}

// regenerate rebuilds the previewed level after a seed or level change.
func (m *BrowserModel) regenerate() {
	m.level = maze.Generate(m.seed, m.runLevel)
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m BrowserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionSeedPrev:
		m.seed = maze.StepSeed(m.seed, -1)
		m.regenerate()

	case core.ActionSeedNext:
		m.seed = maze.StepSeed(m.seed, 1)
		m.regenerate()

	case core.ActionRandom:
		m.seed = maze.RandomSeed(m.now())
		m.regenerate()

	case core.ActionLevelUp:
		if m.runLevel < MaxBrowseLevel {
			m.runLevel++
			m.regenerate()
		}

	case core.ActionLevelDown:
		if m.runLevel > 1 {
			m.runLevel--
			m.regenerate()
		}

	case core.ActionToggleFog:
		m.fog = !m.fog

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionConfirm:
		m.confirmed = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	t := GetTheme()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(t.HUDTitle.Render("C O R N M A Z E"), m.width))
	b.WriteString("\n\n")

	seedLine := t.HUDControls.Render("◄ ") + t.HUDValue.Render(maze.FormatSeed(m.seed)) + t.HUDControls.Render(" ►")
	b.WriteString(centerText(seedLine, m.width))
	b.WriteString("\n\n")

	screen := LevelScreen(m.level, LevelInfo{Seed: m.seed, RunLevel: m.runLevel}, DrawOptions{
		Entities: true,
		Fog:      m.fog,
	})
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(RenderScreen(screen)))
	b.WriteString("\n\n")

	b.WriteString(t.HUDControls.Render(m.help.View(m.keyMapper.Keys())))
	b.WriteString("\n")

	return b.String()
}

// Seed returns the current seed.
func (m BrowserModel) Seed() uint32 {
	return m.seed
}

// RunLevel returns the current run level.
func (m BrowserModel) RunLevel() int {
	return m.runLevel
}

// Level returns the previewed level.
func (m BrowserModel) Level() *maze.Level {
	return m.level
}

// Confirmed returns true if the user picked the current seed.
func (m BrowserModel) Confirmed() bool {
	return m.confirmed
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// BrowserResult holds the result of running the browser.
type BrowserResult struct {
	Seed      uint32
	RunLevel  int
	Confirmed bool
}

// RunBrowser runs the seed browser and returns the final selection.
func RunBrowser(cfg core.RuntimeConfig) (BrowserResult, error) {
	model := NewBrowserModel(cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return BrowserResult{Seed: model.Seed(), RunLevel: model.RunLevel()}, err
	}

	m, ok := finalModel.(BrowserModel)
	if !ok {
		return BrowserResult{Seed: model.Seed(), RunLevel: model.RunLevel()}, nil
	}

	return BrowserResult{
		Seed:      m.Seed(),
		RunLevel:  m.RunLevel(),
		Confirmed: m.Confirmed(),
	}, nil
}
