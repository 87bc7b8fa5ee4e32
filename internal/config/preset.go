package config

// DifficultyPreset represents a named starting point on the difficulty curve.
type DifficultyPreset string

const (
	PresetEasy      DifficultyPreset = "easy"
	PresetNormal    DifficultyPreset = "normal"
	PresetHard      DifficultyPreset = "hard"
	PresetNightmare DifficultyPreset = "nightmare"
)

// Presets lists the known presets from easiest to hardest.
var Presets = []DifficultyPreset{PresetEasy, PresetNormal, PresetHard, PresetNightmare}

// RunLevelForPreset returns the run level a preset starts at.
// Normal starts at the first fogged level, hard at the first "Deep Maze"
// and nightmare at the first "Nightmare Maze".
func RunLevelForPreset(preset DifficultyPreset) (int, bool) {
	switch preset {
	case PresetEasy:
		return 1, true
	case PresetNormal:
		return 2, true
	case PresetHard:
		return 4, true
	case PresetNightmare:
		return 7, true
	default:
		return 0, false
	}
}
