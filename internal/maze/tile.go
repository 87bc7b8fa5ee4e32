// Package maze generates procedural corn-maze levels.
//
// Generation is a pure function of (seed, run level): the same inputs always
// yield the same Level, tile for tile. Nothing here renders, schedules or
// keeps state between calls.
package maze

import "fmt"

// Tile is the kind of a single grid cell.
// Values match the tile ids used by the game client.
type Tile uint8

const (
	TileFloor     Tile = iota // Walkable, empty
	TileWall                  // Blocked
	TileItem                  // Plain corn
	TileFreeze                // Corn that freezes enemies
	TileSpeed                 // Corn that speeds up the player
	TileIce                   // Corn that makes the floor slippery
	TileConfusion             // Corn that scrambles enemy movement
)

// PowerUps lists the power-up tile kinds in draw order.
// Generation picks from this slice, so its order is part of the layout contract.
var PowerUps = []Tile{TileFreeze, TileSpeed, TileIce, TileConfusion}

// String returns a human-readable name for the tile.
func (t Tile) String() string {
	switch t {
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileItem:
		return "corn"
	case TileFreeze:
		return "freeze"
	case TileSpeed:
		return "speed"
	case TileIce:
		return "ice"
	case TileConfusion:
		return "confusion"
	default:
		return fmt.Sprintf("tile(%d)", uint8(t))
	}
}

// Glyph returns the single-character form used in level files and ASCII output.
func (t Tile) Glyph() rune {
	switch t {
	case TileFloor:
		return '.'
	case TileWall:
		return '#'
	case TileItem:
		return 'c'
	case TileFreeze:
		return 'F'
	case TileSpeed:
		return 'S'
	case TileIce:
		return 'I'
	case TileConfusion:
		return 'C'
	default:
		return '?'
	}
}

// ParseGlyph is the inverse of Tile.Glyph.
func ParseGlyph(r rune) (Tile, bool) {
	switch r {
	case '.':
		return TileFloor, true
	case '#':
		return TileWall, true
	case 'c':
		return TileItem, true
	case 'F':
		return TileFreeze, true
	case 'S':
		return TileSpeed, true
	case 'I':
		return TileIce, true
	case 'C':
		return TileConfusion, true
	}
	return 0, false
}

// Valid reports whether t is one of the known tile kinds.
func (t Tile) Valid() bool {
	return t <= TileConfusion
}

// IsWalkable reports whether players and enemies can stand on the tile.
func (t Tile) IsWalkable() bool {
	return t.Valid() && t != TileWall
}

// IsItem reports whether the tile holds collectible corn (plain or power-up).
func (t Tile) IsItem() bool {
	return t >= TileItem && t <= TileConfusion
}

// IsPowerUp reports whether the tile is one of the power-up variants.
func (t Tile) IsPowerUp() bool {
	return t >= TileFreeze && t <= TileConfusion
}

// Color returns the 24-bit RGB color the game uses for power-up corn.
// ok is false for tiles without a dedicated color.
func (t Tile) Color() (rgb uint32, ok bool) {
	switch t {
	case TileFreeze:
		return 0x00aaff, true // ice blue
	case TileSpeed:
		return 0xffcc00, true // gold
	case TileIce:
		return 0xddeeff, true // pale white-blue
	case TileConfusion:
		return 0xaa44ff, true // purple
	}
	return 0, false
}
