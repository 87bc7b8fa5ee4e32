// Package formats provides level file encoders and parsers.
package formats

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/cornmaze/internal/maze"
	"github.com/vovakirdan/cornmaze/internal/registry"
)

// YAMLLevel represents the YAML structure for a level file.
// Cells are written as [row, col] pairs.
type YAMLLevel struct {
	Name           string       `yaml:"name"`
	TimeLimit      int          `yaml:"time_limit"`
	ItemsToAdvance int          `yaml:"items_to_advance"`
	PlayerStart    []int        `yaml:"player_start,flow"`
	Grid           []string     `yaml:"grid"`
	Enemies        []YAMLEnemy  `yaml:"enemies,omitempty"`
	FogOfWar       *YAMLFogSpec `yaml:"fog_of_war,omitempty"`
}

// YAMLEnemy represents one enemy spawn.
type YAMLEnemy struct {
	Start  []int   `yaml:"start,flow"`
	Patrol [][]int `yaml:"patrol,flow"`
	Speed  int     `yaml:"speed"`
}

// YAMLFogSpec represents the fog-of-war block.
type YAMLFogSpec struct {
	Enabled      bool `yaml:"enabled"`
	RevealRadius int  `yaml:"reveal_radius"`
}

// ParseYAML parses a YAML level file into a validated level.
func ParseYAML(data []byte) (*maze.Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	spec, err := yl.toSpec()
	if err != nil {
		return nil, err
	}
	return maze.NewLevel(spec)
}

// Decode is an alias for ParseYAML.
func Decode(data []byte) (*maze.Level, error) {
	return ParseYAML(data)
}

// Encode serializes a level as YAML.
func Encode(lvl *maze.Level) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fromSpec(lvl.Spec())); err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return buf.Bytes(), nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

func (yl YAMLLevel) toSpec() (maze.LevelSpec, error) {
	spec := maze.LevelSpec{
		Name:           yl.Name,
		TimeLimit:      yl.TimeLimit,
		ItemsToAdvance: yl.ItemsToAdvance,
		Grid:           make([][]maze.Tile, len(yl.Grid)),
	}

	for r, line := range yl.Grid {
		row := make([]maze.Tile, 0, len(line))
		for c, g := range []rune(line) {
			t, ok := maze.ParseGlyph(g)
			if !ok {
				return maze.LevelSpec{}, fmt.Errorf("%w: unknown glyph %q at (%d,%d)", maze.ErrInvalidLevel, g, r, c)
			}
			row = append(row, t)
		}
		spec.Grid[r] = row
	}

	start, err := parseCell(yl.PlayerStart, "player_start")
	if err != nil {
		return maze.LevelSpec{}, err
	}
	spec.PlayerStart = start

	for i, ye := range yl.Enemies {
		e := maze.EnemySpawn{Speed: ye.Speed}
		if e.Start, err = parseCell(ye.Start, fmt.Sprintf("enemies[%d].start", i)); err != nil {
			return maze.LevelSpec{}, err
		}
		for j, wp := range ye.Patrol {
			cell, err := parseCell(wp, fmt.Sprintf("enemies[%d].patrol[%d]", i, j))
			if err != nil {
				return maze.LevelSpec{}, err
			}
			e.Patrol = append(e.Patrol, cell)
		}
		spec.Enemies = append(spec.Enemies, e)
	}

	if yl.FogOfWar != nil {
		spec.FogOfWar = &maze.FogOfWar{
			Enabled:      yl.FogOfWar.Enabled,
			RevealRadius: yl.FogOfWar.RevealRadius,
		}
	}
	return spec, nil
}

func fromSpec(spec maze.LevelSpec) YAMLLevel {
	yl := YAMLLevel{
		Name:           spec.Name,
		TimeLimit:      spec.TimeLimit,
		ItemsToAdvance: spec.ItemsToAdvance,
		PlayerStart:    cellPair(spec.PlayerStart),
		Grid:           make([]string, len(spec.Grid)),
	}

	for r, row := range spec.Grid {
		glyphs := make([]rune, len(row))
		for c, t := range row {
			glyphs[c] = t.Glyph()
		}
		yl.Grid[r] = string(glyphs)
	}

	for _, e := range spec.Enemies {
		ye := YAMLEnemy{Start: cellPair(e.Start), Speed: e.Speed}
		for _, wp := range e.Patrol {
			ye.Patrol = append(ye.Patrol, cellPair(wp))
		}
		yl.Enemies = append(yl.Enemies, ye)
	}

	if spec.FogOfWar != nil {
		yl.FogOfWar = &YAMLFogSpec{
			Enabled:      spec.FogOfWar.Enabled,
			RevealRadius: spec.FogOfWar.RevealRadius,
		}
	}
	return yl
}

func parseCell(pair []int, field string) (maze.Cell, error) {
	if len(pair) != 2 {
		return maze.Cell{}, fmt.Errorf("%w: %s must be [row, col], got %v", maze.ErrInvalidLevel, field, pair)
	}
	return maze.Cell{Row: pair[0], Col: pair[1]}, nil
}

func cellPair(c maze.Cell) []int {
	return []int{c.Row, c.Col}
}

type yamlEncoder struct{}

func (yamlEncoder) ID() string    { return "yaml" }
func (yamlEncoder) Title() string { return "YAML level file, readable by the level loader" }

func (yamlEncoder) Encode(lvl *maze.Level) ([]byte, error) {
	return Encode(lvl)
}

func init() {
	registry.Register("yaml", func() registry.Encoder { return yamlEncoder{} })
}
