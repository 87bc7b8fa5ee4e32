package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/cornmaze/internal/core"
	"github.com/vovakirdan/cornmaze/internal/maze"
)

func TestDrawLevelGlyphs(t *testing.T) {
	lvl := maze.Generate(1, 1)
	g := lvl.Grid()
	s := core.NewScreen(g.Cols(), g.Rows())

	DrawLevel(s, 0, 0, lvl, DrawOptions{})

	if s.String() != g.String() {
		t.Errorf("plain draw should match the grid glyphs:\n%s\nvs\n%s", s.String(), g.String())
	}
	if s.GetCell(0, 0).Color != core.ColorGreen {
		t.Error("walls should be drawn green")
	}
}

func TestDrawLevelEntities(t *testing.T) {
	lvl := maze.Generate(42, 3)
	g := lvl.Grid()
	s := core.NewScreen(g.Cols(), g.Rows())

	DrawLevel(s, 0, 0, lvl, DrawOptions{Entities: true})

	if s.Get(1, 1) != PlayerGlyph {
		t.Errorf("player should be drawn at (1,1), got %q", s.Get(1, 1))
	}
	// Enemy starts at row 5, col 1
	if s.Get(1, 5) != EnemyGlyph {
		t.Errorf("enemy should be drawn at row 5 col 1, got %q", s.Get(1, 5))
	}
	if s.GetCell(1, 5).Color != core.ColorRed {
		t.Error("enemy should be red")
	}
}

func TestDrawLevelFog(t *testing.T) {
	// Seed 1, level 10: 9x9 grid with fog radius 2
	lvl := maze.Generate(1, 10)
	g := lvl.Grid()
	s := core.NewScreen(g.Cols(), g.Rows())

	DrawLevel(s, 0, 0, lvl, DrawOptions{Entities: true, Fog: true})

	if s.Get(8, 8) != HiddenGlyph {
		t.Errorf("far corner should be hidden, got %q", s.Get(8, 8))
	}
	if s.GetCell(3, 3).Color != core.ColorDarkGray {
		t.Error("cells on the reveal radius should be dimmed")
	}
	if s.Get(0, 0) != '#' || s.GetCell(0, 0).Color != core.ColorGreen {
		t.Error("cells inside the reveal radius should be drawn normally")
	}
}

func TestTileColorCoversAllTiles(t *testing.T) {
	seen := map[core.Color]bool{}
	for tile := maze.TileFloor; tile <= maze.TileConfusion; tile++ {
		c := TileColor(tile)
		if c == core.ColorDefault {
			t.Errorf("tile %v has no color", tile)
		}
		if seen[c] {
			t.Errorf("tile %v shares color %d with another tile", tile, c)
		}
		seen[c] = true
	}
}

func TestLevelScreen(t *testing.T) {
	lvl := maze.Generate(12345, 7)
	s := LevelScreen(lvl, LevelInfo{Seed: 12345, RunLevel: 7}, DrawOptions{Entities: true})

	out := s.String()
	for _, want := range []string{"Nightmare Maze 7", "Seed", "12345", "Run level", "9x9", "every 350ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("level screen missing %q:\n%s", want, out)
		}
	}

	// Box corners around a 9x9 grid
	if s.Get(0, 0) != '┌' || s.Get(10, 10) != '┘' {
		t.Errorf("grid should be boxed:\n%s", out)
	}
}

func TestLevelScreenWithoutRunInfo(t *testing.T) {
	lvl := maze.Generate(1, 1)
	out := LevelScreen(lvl, LevelInfo{}, DrawOptions{}).String()

	if strings.Contains(out, "Seed") {
		t.Errorf("seed line should be omitted without run info:\n%s", out)
	}
	if !strings.Contains(out, "Fog") || !strings.Contains(out, "off") {
		t.Errorf("fog line missing:\n%s", out)
	}
}
