package maze

import "fmt"

// runLevelMix decorrelates nearby run levels that share a base seed
// (2^32 / golden ratio).
const runLevelMix uint32 = 0x9e3779b9

// PlayerStart is where every generated level puts the player.
var PlayerStart = Cell{Row: 1, Col: 1}

// canvas is the mutable grid used while a level is being built.
type canvas [][]Tile

func newCanvas(size int, fill Tile) canvas {
	g := make(canvas, size)
	for r := range g {
		g[r] = make([]Tile, size)
		for c := range g[r] {
			g[r][c] = fill
		}
	}
	return g
}

// at returns the tile at c, treating out-of-bounds cells as walls.
func (g canvas) at(c Cell) Tile {
	if c.Row < 0 || c.Row >= len(g) || c.Col < 0 || c.Col >= len(g[c.Row]) {
		return TileWall
	}
	return g[c.Row][c.Col]
}

func (g canvas) set(c Cell, t Tile) {
	g[c.Row][c.Col] = t
}

// CombineSeed mixes a base seed with a run level into the generator's working seed.
func CombineSeed(seed uint32, runLevel int) uint32 {
	return seed ^ uint32(runLevel)*runLevelMix
}

// Generate builds the level for the given seed and run level.
//
// The result is fully determined by its inputs. When the maze is too small or
// too dense to meet the corn or enemy targets, fewer are placed; that is not
// an error. runLevel must be at least 1.
func Generate(seed uint32, runLevel int) *Level {
	if runLevel < 1 {
		panic(fmt.Sprintf("maze: run level must be >= 1, got %d", runLevel))
	}

	rng := NewSeededRandom(CombineSeed(seed, runLevel))
	diff := DifficultyFor(runLevel)

	g := newCanvas(diff.GridSize, TileWall)
	carve(g, PlayerStart, rng)
	openLoops(g, diff.LoopOpenings, rng)
	items := placeItems(g, diff.ItemTarget, rng)
	enemies := spawnEnemies(g, diff.EnemyCount, diff.EnemySpeed, rng)

	spec := LevelSpec{
		Name:           LevelName(runLevel),
		Grid:           g,
		TimeLimit:      diff.TimeLimit,
		PlayerStart:    PlayerStart,
		ItemsToAdvance: len(items),
		Enemies:        enemies,
	}
	if diff.FogEnabled {
		spec.FogOfWar = &FogOfWar{Enabled: true, RevealRadius: diff.FogRadius}
	}

	lvl, err := NewLevel(spec)
	if err != nil {
		// Generated layouts satisfy every level rule by construction.
		panic(fmt.Sprintf("maze: generated level is invalid (seed %d, run level %d): %v", seed, runLevel, err))
	}
	return lvl
}

// GenerateRun returns count consecutive levels of one endless run,
// starting at run level from.
func GenerateRun(seed uint32, from, count int) []*Level {
	levels := make([]*Level, 0, count)
	for i := 0; i < count; i++ {
		levels = append(levels, Generate(seed, from+i))
	}
	return levels
}

// neighbourDirs are the four orthogonal steps.
var neighbourDirs = [4]Cell{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// openNeighbours counts orthogonal neighbours of c that are floor.
func (g canvas) openNeighbours(c Cell) int {
	n := 0
	for _, d := range neighbourDirs {
		if g.at(Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}) == TileFloor {
			n++
		}
	}
	return n
}
