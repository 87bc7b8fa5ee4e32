// Package config provides YAML-based configuration loading for cornmaze.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all user-tunable settings.
type Config struct {
	Seed     uint32           `yaml:"seed"` // 0 picks one from the clock
	RunLevel int              `yaml:"run_level"`
	Preset   DifficultyPreset `yaml:"preset"`
	Format   string           `yaml:"format"`
	LogLevel string           `yaml:"log_level"`
	Theme    Theme            `yaml:"theme"`
}

// Theme defines the colors of the styled renderer.
// Values are lipgloss colors: ANSI codes ("2") or hex ("#3a7d2c").
type Theme struct {
	Wall   string `yaml:"wall"`
	Floor  string `yaml:"floor"`
	Corn   string `yaml:"corn"`
	Player string `yaml:"player"`
	Enemy  string `yaml:"enemy"`
	Fog    string `yaml:"fog"`
}

// DefaultConfig returns the hardcoded default configuration.
func DefaultConfig() Config {
	return Config{
		Seed:     0,
		RunLevel: 1,
		Format:   "ascii",
		LogLevel: "warn",
		Theme:    DefaultTheme(),
	}
}

// DefaultTheme returns the corn-field palette.
func DefaultTheme() Theme {
	return Theme{
		Wall:   "#3a7d2c",
		Floor:  "240",
		Corn:   "#ffea00",
		Player: "15",
		Enemy:  "#ff4444",
		Fog:    "#35373e",
	}
}

// StartLevel returns the run level to start from, honouring the preset.
func (c Config) StartLevel() int {
	if lvl, ok := RunLevelForPreset(c.Preset); ok {
		return lvl
	}
	return c.RunLevel
}

// Level returns the parsed log level.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}

// Validate checks that all values are usable.
func (c Config) Validate() error {
	if c.RunLevel < 1 {
		return fmt.Errorf("%w: run_level must be at least 1, got %d", ErrInvalidConfig, c.RunLevel)
	}
	if c.Preset != "" {
		if _, ok := RunLevelForPreset(c.Preset); !ok {
			return fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, c.Preset)
		}
	}
	if c.Format == "" {
		return fmt.Errorf("%w: format must not be empty", ErrInvalidConfig)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q: %v", ErrInvalidConfig, c.LogLevel, err)
	}
	return nil
}
