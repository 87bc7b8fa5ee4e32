package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cornmaze/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = DefaultTheme().palette()

// palette maps the drawing colors onto theme styles.
func (t Theme) palette() map[core.Color]lipgloss.Style {
	return map[core.Color]lipgloss.Style{
		core.ColorDefault:  lipgloss.NewStyle(),
		core.ColorRed:      t.Enemy,
		core.ColorGreen:    t.Wall,
		core.ColorYellow:   t.Corn,
		core.ColorBlue:     t.Freeze,
		core.ColorMagenta:  t.HUDTitle,
		core.ColorCyan:     t.HUDLabel,
		core.ColorWhite:    t.Player,
		core.ColorGray:     t.Floor,
		core.ColorDarkGray: t.Fog,
		core.ColorGold:     t.Speed,
		core.ColorIce:      t.Ice,
		core.ColorPurple:   t.Confusion,
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
