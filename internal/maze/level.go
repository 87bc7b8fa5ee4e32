package maze

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/cornmaze/internal/core"
)

// ErrInvalidLevel is returned by NewLevel when a level breaks a structural rule.
var ErrInvalidLevel = errors.New("invalid level")

// Cell is a grid position. Rows grow downward, columns to the right.
type Cell struct {
	Row, Col int
}

// Chebyshev returns the king-move distance between two cells.
func (c Cell) Chebyshev(o Cell) int {
	return core.Max(core.Abs(c.Row-o.Row), core.Abs(c.Col-o.Col))
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is an immutable rectangular tile matrix.
// The zero value is an empty grid.
type Grid struct {
	rows, cols int
	tiles      []Tile // Row-major
}

// NewGrid copies rows into a Grid. All rows must have the same length.
func NewGrid(rows [][]Tile) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid{}, fmt.Errorf("%w: empty grid", ErrInvalidLevel)
	}
	g := Grid{
		rows:  len(rows),
		cols:  len(rows[0]),
		tiles: make([]Tile, 0, len(rows)*len(rows[0])),
	}
	for r, row := range rows {
		if len(row) != g.cols {
			return Grid{}, fmt.Errorf("%w: row %d has %d tiles, expected %d", ErrInvalidLevel, r, len(row), g.cols)
		}
		for c, t := range row {
			if !t.Valid() {
				return Grid{}, fmt.Errorf("%w: unknown tile %d at (%d,%d)", ErrInvalidLevel, t, r, c)
			}
		}
		g.tiles = append(g.tiles, row...)
	}
	return g, nil
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g Grid) Cols() int { return g.cols }

// InBounds reports whether c lies inside the grid.
func (g Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the tile at c. Out-of-bounds cells read as walls.
func (g Grid) At(c Cell) Tile {
	if !g.InBounds(c) {
		return TileWall
	}
	return g.tiles[c.Row*g.cols+c.Col]
}

// Walkable reports whether c is inside the grid and not a wall.
func (g Grid) Walkable(c Cell) bool {
	return g.At(c).IsWalkable()
}

// Tiles returns a fresh copy of the grid as nested rows.
func (g Grid) Tiles() [][]Tile {
	out := make([][]Tile, g.rows)
	for r := range out {
		out[r] = make([]Tile, g.cols)
		copy(out[r], g.tiles[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// Count returns how many tiles satisfy match.
func (g Grid) Count(match func(Tile) bool) int {
	n := 0
	for _, t := range g.tiles {
		if match(t) {
			n++
		}
	}
	return n
}

// ItemCells returns every cell holding corn, in row-major order.
func (g Grid) ItemCells() []Cell {
	var cells []Cell
	for i, t := range g.tiles {
		if t.IsItem() {
			cells = append(cells, Cell{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return cells
}

// String renders the grid as glyph rows separated by newlines.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			sb.WriteRune(g.tiles[r*g.cols+c].Glyph())
		}
	}
	return sb.String()
}

// EnemySpawn describes one patrolling enemy.
type EnemySpawn struct {
	Start  Cell   // Initial position, one of the patrol waypoints
	Patrol []Cell // Waypoints walked back and forth
	Speed  int    // Milliseconds between moves (lower is faster)
}

// Interval returns the time between two enemy moves.
func (e EnemySpawn) Interval() time.Duration {
	return time.Duration(e.Speed) * time.Millisecond
}

func (e EnemySpawn) clone() EnemySpawn {
	e.Patrol = append([]Cell(nil), e.Patrol...)
	return e
}

// FogOfWar limits how far around the player the maze is visible.
type FogOfWar struct {
	Enabled      bool
	RevealRadius int // In tiles
}

// Visibility is how much of a cell the fog lets through.
type Visibility uint8

const (
	Visible Visibility = iota
	Dimmed             // On the edge of the reveal radius
	Hidden
)

// Reveal reports how visible c is to a player standing at player.
// Distance is measured in king moves. With fog disabled every cell is visible.
func (f FogOfWar) Reveal(player, c Cell) Visibility {
	if !f.Enabled {
		return Visible
	}
	switch d := player.Chebyshev(c); {
	case d > f.RevealRadius:
		return Hidden
	case d == f.RevealRadius:
		return Dimmed
	default:
		return Visible
	}
}

// LevelSpec is the plain, mutable description of a level.
// It is the input to NewLevel and the output of Level.Spec.
type LevelSpec struct {
	Name           string
	Grid           [][]Tile
	TimeLimit      int // Seconds
	PlayerStart    Cell
	ItemsToAdvance int // Cumulative corn count that completes the level
	Enemies        []EnemySpawn
	FogOfWar       *FogOfWar
}

// Level is a validated, read-only level. Accessors return copies, so
// consumers cannot change a Level after it is built.
type Level struct {
	name           string
	grid           Grid
	timeLimit      int
	playerStart    Cell
	itemsToAdvance int
	enemies        []EnemySpawn
	fog            *FogOfWar
}

// NewLevel validates spec and builds a Level from a deep copy of it.
func NewLevel(spec LevelSpec) (*Level, error) {
	grid, err := NewGrid(spec.Grid)
	if err != nil {
		return nil, err
	}

	lvl := &Level{
		name:           spec.Name,
		grid:           grid,
		timeLimit:      spec.TimeLimit,
		playerStart:    spec.PlayerStart,
		itemsToAdvance: spec.ItemsToAdvance,
	}
	for _, e := range spec.Enemies {
		lvl.enemies = append(lvl.enemies, e.clone())
	}
	if spec.FogOfWar != nil {
		fog := *spec.FogOfWar
		lvl.fog = &fog
	}

	if err := lvl.validate(); err != nil {
		return nil, err
	}
	return lvl, nil
}

func (l *Level) validate() error {
	if l.timeLimit <= 0 {
		return fmt.Errorf("%w: time limit must be positive, got %d", ErrInvalidLevel, l.timeLimit)
	}
	if l.itemsToAdvance < 0 {
		return fmt.Errorf("%w: negative items to advance %d", ErrInvalidLevel, l.itemsToAdvance)
	}
	if !l.grid.Walkable(l.playerStart) {
		return fmt.Errorf("%w: player start %v is not walkable", ErrInvalidLevel, l.playerStart)
	}

	for i, e := range l.enemies {
		if len(e.Patrol) < 2 {
			return fmt.Errorf("%w: enemy %d has %d waypoints, need at least 2", ErrInvalidLevel, i, len(e.Patrol))
		}
		if e.Speed <= 0 {
			return fmt.Errorf("%w: enemy %d speed must be positive, got %d", ErrInvalidLevel, i, e.Speed)
		}
		onPatrol := false
		for _, wp := range e.Patrol {
			if !l.grid.Walkable(wp) {
				return fmt.Errorf("%w: enemy %d waypoint %v is not walkable", ErrInvalidLevel, i, wp)
			}
			if wp == e.Start {
				onPatrol = true
			}
		}
		if !onPatrol {
			return fmt.Errorf("%w: enemy %d start %v is not a waypoint", ErrInvalidLevel, i, e.Start)
		}
	}

	if l.fog != nil && l.fog.Enabled && l.fog.RevealRadius < 1 {
		return fmt.Errorf("%w: fog reveal radius must be at least 1, got %d", ErrInvalidLevel, l.fog.RevealRadius)
	}
	return nil
}

// Name returns the display name.
func (l *Level) Name() string { return l.name }

// Grid returns the tile grid. Grid has no mutating methods.
func (l *Level) Grid() Grid { return l.grid }

// TimeLimit returns the countdown length in seconds.
func (l *Level) TimeLimit() int { return l.timeLimit }

// PlayerStart returns the player's starting cell.
func (l *Level) PlayerStart() Cell { return l.playerStart }

// ItemsToAdvance returns the corn count that completes the level.
func (l *Level) ItemsToAdvance() int { return l.itemsToAdvance }

// Enemies returns a copy of the enemy spawns, or nil when the level has none.
func (l *Level) Enemies() []EnemySpawn {
	if len(l.enemies) == 0 {
		return nil
	}
	out := make([]EnemySpawn, len(l.enemies))
	for i, e := range l.enemies {
		out[i] = e.clone()
	}
	return out
}

// FogOfWar returns the fog settings; ok is false when the level has no fog block.
func (l *Level) FogOfWar() (fog FogOfWar, ok bool) {
	if l.fog == nil {
		return FogOfWar{}, false
	}
	return *l.fog, true
}

// Spec returns a deep copy of the level as a LevelSpec.
func (l *Level) Spec() LevelSpec {
	spec := LevelSpec{
		Name:           l.name,
		Grid:           l.grid.Tiles(),
		TimeLimit:      l.timeLimit,
		PlayerStart:    l.playerStart,
		ItemsToAdvance: l.itemsToAdvance,
		Enemies:        l.Enemies(),
	}
	if fog, ok := l.FogOfWar(); ok {
		spec.FogOfWar = &fog
	}
	return spec
}

