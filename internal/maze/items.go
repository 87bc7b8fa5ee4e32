package maze

// minItemSpacing is the smallest Chebyshev distance allowed between two corn cells.
const minItemSpacing = 3

// placementWeight favours dead ends and junctions as corn spots.
func placementWeight(openNeighbours int) int {
	switch {
	case openNeighbours == 1:
		return 3 // dead end
	case openNeighbours >= 3:
		return 2 // junction
	default:
		return 1 // corridor
	}
}

// placeItems scatters up to target corn cells over the floor of g and turns a
// few of them into power-ups. It returns the accepted cells in acceptance order.
//
// Candidates are weighted by repetition and shuffled, then taken greedily
// while they keep minItemSpacing from every accepted cell. The player start is
// never used. Running out of candidates early is fine.
func placeItems(g canvas, target int, rng *SeededRandom) []Cell {
	size := len(g)

	var pool []Cell
	for r := 1; r < size-1; r++ {
		for c := 1; c < size-1; c++ {
			cell := Cell{Row: r, Col: c}
			if g.at(cell) != TileFloor {
				continue
			}
			for w := placementWeight(g.openNeighbours(cell)); w > 0; w-- {
				pool = append(pool, cell)
			}
		}
	}
	Shuffle(rng, pool)

	var accepted []Cell
	for _, cand := range pool {
		if cand == PlayerStart {
			continue
		}
		if tooClose(cand, accepted) {
			continue
		}
		accepted = append(accepted, cand)
		if len(accepted) >= target {
			break
		}
	}

	powerUps := pickPowerUpSlots(len(accepted), rng)
	for i, cell := range accepted {
		if powerUps[i] {
			g.set(cell, Pick(rng, PowerUps))
		} else {
			g.set(cell, TileItem)
		}
	}
	return accepted
}

// tooClose reports whether c sits within minItemSpacing of any cell in placed.
func tooClose(c Cell, placed []Cell) bool {
	for _, p := range placed {
		if c.Chebyshev(p) < minItemSpacing {
			return true
		}
	}
	return false
}

// pickPowerUpSlots chooses min(2, n/4) distinct indices in [0, n) to hold power-ups.
func pickPowerUpSlots(n int, rng *SeededRandom) map[int]bool {
	want := min(2, n/4)
	slots := make(map[int]bool, want)
	for len(slots) < want {
		slots[rng.NextInt(n)] = true
	}
	return slots
}
