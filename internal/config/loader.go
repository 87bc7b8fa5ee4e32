package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config sources reported by Load when no file was read.
const (
	SourceEmbedded = "embedded"
	SourceDefault  = "default"
)

// Environment variables applied on top of the loaded file.
const (
	EnvSeed     = "CORNMAZE_SEED"
	EnvLevel    = "CORNMAZE_LEVEL"
	EnvFormat   = "CORNMAZE_FORMAT"
	EnvLogLevel = "CORNMAZE_LOG_LEVEL"
)

// Load loads the configuration and reports where it came from.
// Search order: customPath -> ~/.cornmaze/config.yaml -> ./configs/cornmaze.yaml -> embedded default.
// Keys missing from a file keep their default values. Environment
// overrides are applied last.
func Load(customPath string) (Config, string, error) {
	cfg, source, err := loadFile(customPath)
	if err != nil {
		return cfg, source, err
	}
	if err := ApplyEnv(&cfg, os.Getenv); err != nil {
		return cfg, source, err
	}
	return cfg, source, nil
}

func loadFile(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, customPath, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, customPath, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, userCfgPath, nil
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", "cornmaze.yaml")
	if cfg, ok := tryFile(localPath); ok {
		return cfg, localPath, nil
	}

	// Use embedded default YAML
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), SourceDefault, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// tryFile reads and parses path; unreadable or malformed files are skipped.
func tryFile(path string) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, false
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cornmaze", filename)
}

// ApplyEnv overrides cfg with any CORNMAZE_* variables returned by getenv.
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = uint32(seed)
	}
	if v := getenv(EnvLevel); v != "" {
		lvl, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLevel, err)
		}
		cfg.RunLevel = lvl
	}
	if v := getenv(EnvFormat); v != "" {
		cfg.Format = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	return nil
}
