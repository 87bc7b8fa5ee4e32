package maze

import "fmt"

// Difficulty curve bounds.
const (
	MinGridSize = 7  // Run level 1, rounded up to odd
	MaxGridSize = 15 // Raw size clamps at 14, then rounds up to odd

	minTimeLimit  = 15  // Seconds
	minEnemySpeed = 300 // Milliseconds between moves
	maxEnemies    = 3
	minFogRadius  = 2
)

// Difficulty holds every generation parameter derived from a run level.
// All fields are pure functions of the run level; no randomness is involved.
type Difficulty struct {
	RunLevel     int
	GridSize     int // Odd side length of the square grid
	TimeLimit    int // Seconds
	FogEnabled   bool
	FogRadius    int
	EnemySpeed   int // Milliseconds between enemy moves
	EnemyCount   int // Target number of patrols
	ItemTarget   int // Target number of corn cells
	LoopOpenings int // Random cells forced open after carving
}

// DifficultyFor computes the difficulty curve for runLevel (>= 1).
func DifficultyFor(runLevel int) Difficulty {
	size := min(6+runLevel/3, 14)
	// The carver works on a lattice of odd coordinates.
	if size%2 == 0 {
		size++
	}

	return Difficulty{
		RunLevel:     runLevel,
		GridSize:     size,
		TimeLimit:    max(minTimeLimit, 50-runLevel*2),
		FogEnabled:   runLevel >= 2,
		FogRadius:    max(minFogRadius, 4-runLevel/3),
		EnemySpeed:   max(minEnemySpeed, 700-runLevel*50),
		EnemyCount:   min(maxEnemies, (runLevel+1)/2),
		ItemTarget:   size * 6 / 5,
		LoopOpenings: size * size / 20,
	}
}

// LevelName returns the tiered display name for a run level.
func LevelName(runLevel int) string {
	switch {
	case runLevel <= 3:
		return fmt.Sprintf("Maze %d", runLevel)
	case runLevel <= 6:
		return fmt.Sprintf("Deep Maze %d", runLevel)
	default:
		return fmt.Sprintf("Nightmare Maze %d", runLevel)
	}
}
