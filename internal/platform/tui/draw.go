package tui

import (
	"fmt"

	"github.com/vovakirdan/cornmaze/internal/core"
	"github.com/vovakirdan/cornmaze/internal/maze"
)

// Entity glyphs drawn over the grid.
const (
	PlayerGlyph = 'P'
	EnemyGlyph  = 'E'
	HiddenGlyph = ' '
)

// hudWidth is the width of the info panel next to the grid.
const hudWidth = 26

// DrawOptions controls what DrawLevel puts on screen.
type DrawOptions struct {
	Entities bool // Draw the player and enemy start cells
	Fog      bool // Hide cells the player cannot see from the start
}

// LevelInfo carries run details that are not part of the level itself.
type LevelInfo struct {
	Seed     uint32
	RunLevel int // 0 for hand-authored levels
}

// TileColor returns the drawing color of a tile.
func TileColor(t maze.Tile) core.Color {
	switch t {
	case maze.TileWall:
		return core.ColorGreen
	case maze.TileFloor:
		return core.ColorGray
	case maze.TileItem:
		return core.ColorYellow
	case maze.TileFreeze:
		return core.ColorBlue
	case maze.TileSpeed:
		return core.ColorGold
	case maze.TileIce:
		return core.ColorIce
	case maze.TileConfusion:
		return core.ColorPurple
	default:
		return core.ColorDefault
	}
}

// DrawLevel draws the level grid with its top-left corner at (x, y).
// Each tile takes one character.
func DrawLevel(dst *core.Screen, x, y int, lvl *maze.Level, opts DrawOptions) {
	g := lvl.Grid()
	fog, hasFog := lvl.FogOfWar()
	start := lvl.PlayerStart()

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := maze.Cell{Row: r, Col: c}
			t := g.At(cell)
			glyph, color := t.Glyph(), TileColor(t)

			if opts.Fog && hasFog {
				switch fog.Reveal(start, cell) {
				case maze.Hidden:
					glyph, color = HiddenGlyph, core.ColorDefault
				case maze.Dimmed:
					color = core.ColorDarkGray
				}
			}
			dst.SetCell(x+c, y+r, glyph, color)
		}
	}

	if !opts.Entities {
		return
	}
	for _, e := range lvl.Enemies() {
		if opts.Fog && hasFog && fog.Reveal(start, e.Start) == maze.Hidden {
			continue
		}
		dst.SetCell(x+e.Start.Col, y+e.Start.Row, EnemyGlyph, core.ColorRed)
	}
	dst.SetCell(x+start.Col, y+start.Row, PlayerGlyph, core.ColorWhite)
}

// DrawHUD draws the level summary panel with its top-left corner at (x, y).
// Returns the number of lines drawn.
func DrawHUD(dst *core.Screen, x, y int, lvl *maze.Level, info LevelInfo) int {
	g := lvl.Grid()
	powerUps := g.Count(maze.Tile.IsPowerUp)

	lines := [][2]string{
		{"Grid", fmt.Sprintf("%dx%d", g.Rows(), g.Cols())},
		{"Time", fmt.Sprintf("%ds", lvl.TimeLimit())},
		{"Corn", fmt.Sprintf("%d (%d power-ups)", g.Count(maze.Tile.IsItem), powerUps)},
		{"Target", fmt.Sprintf("%d", lvl.ItemsToAdvance())},
		{"Enemies", enemySummary(lvl.Enemies())},
		{"Fog", fogSummary(lvl)},
	}
	if info.RunLevel > 0 {
		lines = append([][2]string{
			{"Seed", maze.FormatSeed(info.Seed)},
			{"Run level", fmt.Sprintf("%d", info.RunLevel)},
		}, lines...)
	}

	dst.DrawTextColor(x, y, lvl.Name(), core.ColorMagenta)
	for i, l := range lines {
		dst.DrawTextColor(x, y+2+i, l[0], core.ColorCyan)
		dst.DrawText(x+11, y+2+i, l[1])
	}
	return len(lines) + 2
}

// LevelScreen lays out a boxed grid with the HUD panel to its right.
func LevelScreen(lvl *maze.Level, info LevelInfo, opts DrawOptions) *core.Screen {
	g := lvl.Grid()
	boxW, boxH := g.Cols()+2, g.Rows()+2

	height := core.Max(boxH, hudLines(info))
	s := core.NewScreen(boxW+2+hudWidth, height)

	s.DrawBox(core.NewRect(0, 0, boxW, boxH), core.ColorGreen)
	DrawLevel(s, 1, 1, lvl, opts)
	DrawHUD(s, boxW+2, 0, lvl, info)
	return s
}

func hudLines(info LevelInfo) int {
	if info.RunLevel > 0 {
		return 10
	}
	return 8
}

func enemySummary(enemies []maze.EnemySpawn) string {
	if len(enemies) == 0 {
		return "none"
	}
	fastest := enemies[0].Speed
	for _, e := range enemies[1:] {
		fastest = core.Min(fastest, e.Speed)
	}
	return fmt.Sprintf("%d (every %dms)", len(enemies), fastest)
}

func fogSummary(lvl *maze.Level) string {
	fog, ok := lvl.FogOfWar()
	if !ok || !fog.Enabled {
		return "off"
	}
	return fmt.Sprintf("radius %d", fog.RevealRadius)
}
