package maze

// minPatrolRun is the shortest horizontal corridor that gets a patrol.
const minPatrolRun = 4

// run is a maximal horizontal stretch of walkable cells on one row.
type run struct {
	row      int
	startCol int
	endCol   int // Inclusive
}

// horizontalRuns finds every walkable run of at least minPatrolRun cells on
// the interior rows of g, scanning top to bottom, left to right.
func horizontalRuns(g canvas) []run {
	size := len(g)
	var runs []run
	for r := 1; r < size-1; r++ {
		start := -1
		// Column size-1 is border wall (or past the edge), which closes any open run.
		for c := 1; c <= size-1; c++ {
			walkable := g.at(Cell{Row: r, Col: c}).IsWalkable()
			if walkable && start == -1 {
				start = c
			}
			if !walkable && start != -1 {
				if c-start >= minPatrolRun {
					runs = append(runs, run{row: r, startCol: start, endCol: c - 1})
				}
				start = -1
			}
		}
	}
	return runs
}

// spawnEnemies turns up to count random runs into back-and-forth patrols.
// At most one patrol uses a given row, and row 1 (the player's start row) is
// never used. Fewer patrols than count are returned when runs run out.
func spawnEnemies(g canvas, count, speed int, rng *SeededRandom) []EnemySpawn {
	runs := Shuffle(rng, horizontalRuns(g))

	var spawns []EnemySpawn
	usedRows := make(map[int]bool)
	for _, rn := range runs {
		if len(spawns) >= count {
			break
		}
		if usedRows[rn.row] || rn.row == PlayerStart.Row {
			continue
		}
		usedRows[rn.row] = true

		from := Cell{Row: rn.row, Col: rn.startCol}
		to := Cell{Row: rn.row, Col: rn.endCol}
		spawns = append(spawns, EnemySpawn{
			Start:  from,
			Patrol: []Cell{from, to},
			Speed:  speed,
		})
	}
	return spawns
}
