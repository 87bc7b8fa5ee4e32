package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cornmaze/internal/config"
	"github.com/vovakirdan/cornmaze/internal/maze"
)

// Theme contains all configurable visual styles for level rendering.
type Theme struct {
	// Grid styles
	Wall   lipgloss.Style
	Floor  lipgloss.Style
	Corn   lipgloss.Style
	Player lipgloss.Style
	Enemy  lipgloss.Style
	Fog    lipgloss.Style

	// Power-up corn
	Freeze    lipgloss.Style
	Speed     lipgloss.Style
	Ice       lipgloss.Style
	Confusion lipgloss.Style

	// HUD styles
	HUDTitle    lipgloss.Style
	HUDLabel    lipgloss.Style
	HUDValue    lipgloss.Style
	HUDControls lipgloss.Style
	Border      lipgloss.Style
}

// NewTheme builds a theme from configured colors.
func NewTheme(c config.Theme) Theme {
	return Theme{
		Wall:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Wall)),
		Floor:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Floor)),
		Corn:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Corn)).Bold(true),
		Player: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Player)).Bold(true),
		Enemy:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Enemy)).Bold(true),
		Fog:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Fog)),

		Freeze:    powerUpStyle(maze.TileFreeze),
		Speed:     powerUpStyle(maze.TileSpeed),
		Ice:       powerUpStyle(maze.TileIce),
		Confusion: powerUpStyle(maze.TileConfusion),

		HUDTitle:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Corn)).Bold(true),
		HUDLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDControls: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Border:      lipgloss.NewStyle().Foreground(lipgloss.Color(c.Wall)),
	}
}

// DefaultTheme returns the corn-field theme.
func DefaultTheme() Theme {
	return NewTheme(config.DefaultTheme())
}

// MonochromeTheme returns a theme without any colors.
func MonochromeTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Wall: plain, Floor: plain, Corn: plain, Player: plain, Enemy: plain, Fog: plain,
		Freeze: plain, Speed: plain, Ice: plain, Confusion: plain,
		HUDTitle: plain, HUDLabel: plain, HUDValue: plain, HUDControls: plain, Border: plain,
	}
}

// powerUpStyle uses the in-game color of a power-up tile.
func powerUpStyle(t maze.Tile) lipgloss.Style {
	rgb, ok := t.Color()
	if !ok {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%06x", rgb))).Bold(true)
}

// Global theme variable (can be changed at startup)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
	colorStyles = t.palette()
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return theme
}
