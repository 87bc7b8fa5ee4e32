package core

// Color represents a foreground color for a screen cell.
// Renderers map these to terminal styles.
type Color uint8

// Predefined colors for maze elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorDarkGray
	ColorGold
	ColorIce
	ColorPurple
)
