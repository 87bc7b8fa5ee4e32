package maze

// carveDirs are the four lattice steps. Their order is shuffled per cell,
// but the starting order is part of the layout contract.
var carveDirs = [4]Cell{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}

// carve digs a perfect maze into g with a recursive backtracker (iterative DFS)
// rooted at start. Only cells strictly inside the border are ever opened.
func carve(g canvas, start Cell, rng *SeededRandom) {
	size := len(g)
	inside := func(c Cell) bool {
		return c.Row > 0 && c.Row < size-1 && c.Col > 0 && c.Col < size-1
	}

	g.set(start, TileFloor)
	stack := []Cell{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		dirs := carveDirs
		Shuffle(rng, dirs[:])

		moved := false
		for _, d := range dirs {
			next := Cell{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
			if !inside(next) || g.at(next) != TileWall {
				continue
			}
			g.set(Cell{Row: cur.Row + d.Row/2, Col: cur.Col + d.Col/2}, TileFloor)
			g.set(next, TileFloor)
			stack = append(stack, next)
			moved = true
			break
		}

		if !moved {
			stack = stack[:len(stack)-1]
		}
	}
}

// openLoops opens n random interior cells, adding cycles to the perfect maze.
// Picks are limited to rows and columns 1..size-2 so the border stays closed.
// A wall with no open neighbour (a lattice pillar) is left standing: opening
// it would leave a floor cell unreachable from the start. The draw is still
// consumed, so the rest of the layout does not shift.
func openLoops(g canvas, n int, rng *SeededRandom) {
	size := len(g)
	for i := 0; i < n; i++ {
		c := Cell{Row: rng.NextRange(1, size-2), Col: rng.NextRange(1, size-2)}
		if g.at(c) == TileWall && g.openNeighbours(c) == 0 {
			continue
		}
		g.set(c, TileFloor)
	}
}
