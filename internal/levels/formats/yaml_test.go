package formats

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/cornmaze/internal/maze"
	"github.com/vovakirdan/cornmaze/internal/registry"
)

const sampleYAML = `
name: Sample
time_limit: 20
items_to_advance: 4
player_start: [0, 0]
grid:
  - "..c.."
  - ".#.#."
  - "F...."
  - ".#.#."
  - "....C"
enemies:
  - start: [4, 3]
    patrol: [[4, 0], [4, 3]]
    speed: 550
fog_of_war:
  enabled: true
  reveal_radius: 3
`

func TestParseYAML(t *testing.T) {
	lvl, err := ParseYAML([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	if lvl.Name() != "Sample" {
		t.Errorf("Name = %q, expected Sample", lvl.Name())
	}
	if lvl.TimeLimit() != 20 || lvl.ItemsToAdvance() != 4 {
		t.Errorf("TimeLimit/ItemsToAdvance = %d/%d, expected 20/4", lvl.TimeLimit(), lvl.ItemsToAdvance())
	}

	g := lvl.Grid()
	if g.Rows() != 5 || g.Cols() != 5 {
		t.Fatalf("grid is %dx%d, expected 5x5", g.Rows(), g.Cols())
	}
	if g.At(maze.Cell{Row: 2, Col: 0}) != maze.TileFreeze {
		t.Errorf("(2,0) = %v, expected freeze", g.At(maze.Cell{Row: 2, Col: 0}))
	}
	if g.At(maze.Cell{Row: 4, Col: 4}) != maze.TileConfusion {
		t.Errorf("(4,4) = %v, expected confusion", g.At(maze.Cell{Row: 4, Col: 4}))
	}

	enemies := lvl.Enemies()
	if len(enemies) != 1 {
		t.Fatalf("expected 1 enemy, got %d", len(enemies))
	}
	if enemies[0].Start != (maze.Cell{Row: 4, Col: 3}) || enemies[0].Speed != 550 {
		t.Errorf("unexpected enemy %+v", enemies[0])
	}

	fog, ok := lvl.FogOfWar()
	if !ok || !fog.Enabled || fog.RevealRadius != 3 {
		t.Errorf("FogOfWar = %+v, %v", fog, ok)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		seed     uint32
		runLevel int
	}{
		{1, 1},
		{42, 3},
		{12345, 7},
		{9, 25},
	} {
		lvl := maze.Generate(tc.seed, tc.runLevel)

		data, err := Encode(lvl)
		if err != nil {
			t.Fatalf("Encode(%d, %d) failed: %v", tc.seed, tc.runLevel, err)
		}

		back, err := Decode(data)
		if err != nil {
			t.Fatalf("Decode(%d, %d) failed: %v\n%s", tc.seed, tc.runLevel, err, data)
		}

		if !reflect.DeepEqual(lvl.Spec(), back.Spec()) {
			t.Errorf("round trip of (%d, %d) changed the level:\n%s", tc.seed, tc.runLevel, data)
		}
	}
}

func TestEncodeLayout(t *testing.T) {
	data, err := Encode(maze.Generate(42, 3))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	out := string(data)

	for _, want := range []string{
		"name: Maze 3",
		"player_start: [1, 1]",
		"patrol: [[5, 1], [5, 5]]",
		"reveal_radius: 3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("encoded level missing %q:\n%s", want, out)
		}
	}
}

func TestEncodeOmitsEmptyBlocks(t *testing.T) {
	data, err := Encode(maze.Generate(1, 1))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if strings.Contains(string(data), "enemies") || strings.Contains(string(data), "fog_of_war") {
		t.Errorf("level 1 has no enemies or fog, got:\n%s", data)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := map[string]string{
		"unknown glyph": `
name: Bad
time_limit: 5
player_start: [0, 0]
grid: ["..x"]
`,
		"short cell": `
name: Bad
time_limit: 5
player_start: [0]
grid: ["..."]
`,
		"start in wall": `
name: Bad
time_limit: 5
player_start: [0, 1]
grid: [".#."]
`,
		"ragged grid": `
name: Bad
time_limit: 5
player_start: [0, 0]
grid: ["...", ".."]
`,
	}

	for name, doc := range tests {
		_, err := ParseYAML([]byte(doc))
		if !errors.Is(err, maze.ErrInvalidLevel) {
			t.Errorf("%s: error = %v, expected ErrInvalidLevel", name, err)
		}
	}

	if _, err := ParseYAML([]byte("grid: [unclosed")); err == nil {
		t.Error("malformed YAML should fail to parse")
	}
}

func TestYAMLFormatRegistered(t *testing.T) {
	enc, err := registry.Create("yaml")
	if err != nil {
		t.Fatalf("yaml format not registered: %v", err)
	}
	data, err := enc.Encode(maze.Generate(1, 1))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if _, err := ParseYAML(data); err != nil {
		t.Errorf("registered encoder output does not parse: %v", err)
	}
}
