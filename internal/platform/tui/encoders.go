package tui

import (
	"github.com/vovakirdan/cornmaze/internal/core"
	"github.com/vovakirdan/cornmaze/internal/maze"
	"github.com/vovakirdan/cornmaze/internal/registry"
)

func init() {
	registry.Register("ascii", func() registry.Encoder { return asciiEncoder{} })
	registry.Register("styled", func() registry.Encoder { return styledEncoder{} })
}

// asciiEncoder prints the grid glyphs with player and enemy markers.
type asciiEncoder struct{}

func (asciiEncoder) ID() string    { return "ascii" }
func (asciiEncoder) Title() string { return "Plain glyph grid with P/E markers" }

func (asciiEncoder) Encode(lvl *maze.Level) ([]byte, error) {
	g := lvl.Grid()
	s := core.NewScreen(g.Cols(), g.Rows())
	DrawLevel(s, 0, 0, lvl, DrawOptions{Entities: true})
	return []byte(s.String() + "\n"), nil
}

// styledEncoder prints a colored, boxed grid with a summary panel.
type styledEncoder struct{}

func (styledEncoder) ID() string    { return "styled" }
func (styledEncoder) Title() string { return "Colored grid with level summary" }

func (styledEncoder) Encode(lvl *maze.Level) ([]byte, error) {
	s := LevelScreen(lvl, LevelInfo{}, DrawOptions{Entities: true})
	return []byte(RenderScreen(s) + "\n"), nil
}
