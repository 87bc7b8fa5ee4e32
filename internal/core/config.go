package core

// RuntimeConfig carries the settings a front end needs to show a level.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	Seed     uint32 // Base seed of the endless run
	RunLevel int    // Difficulty index, starting at 1
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		Seed:     0, // 0 means pick one from the clock in the platform layer
		RunLevel: 1,
	}
}
