package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid: %v", err)
	}
	if cfg.StartLevel() != 1 {
		t.Errorf("StartLevel() = %d, expected 1", cfg.StartLevel())
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	chdir(t, dir)

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultConfig %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "seed: 4242\nrun_level: 9\ntheme:\n  wall: \"2\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Seed != 4242 || cfg.RunLevel != 9 {
		t.Errorf("seed/run_level = %d/%d, expected 4242/9", cfg.Seed, cfg.RunLevel)
	}
	if cfg.Theme.Wall != "2" {
		t.Errorf("Theme.Wall = %q, expected \"2\"", cfg.Theme.Wall)
	}
	// Missing keys keep defaults
	if cfg.Format != "ascii" || cfg.Theme.Corn != DefaultTheme().Corn {
		t.Errorf("missing keys should keep defaults, got %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load should fail for a missing custom path")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("run_level: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(bad); err == nil {
		t.Error("Load should fail for malformed YAML")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, work)

	// Local configs directory
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", "cornmaze.yaml"), []byte("run_level: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.RunLevel != 5 || source != filepath.Join("configs", "cornmaze.yaml") {
		t.Errorf("expected local config, got run_level %d from %q", cfg.RunLevel, source)
	}

	// User config wins over the local one
	userDir := filepath.Join(home, ".cornmaze")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "config.yaml"), []byte("run_level: 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.RunLevel != 8 || source != filepath.Join(userDir, "config.yaml") {
		t.Errorf("expected user config, got run_level %d from %q", cfg.RunLevel, source)
	}
}

func TestLoadAppliesEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	chdir(t, dir)
	t.Setenv(EnvSeed, "777")
	t.Setenv(EnvLevel, "6")
	t.Setenv(EnvFormat, "yaml")
	t.Setenv(EnvLogLevel, "debug")

	cfg, _, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Seed != 777 || cfg.RunLevel != 6 || cfg.Format != "yaml" || cfg.LogLevel != "debug" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestApplyEnvErrors(t *testing.T) {
	for _, env := range []map[string]string{
		{EnvSeed: "-1"},
		{EnvSeed: "4294967296"},
		{EnvLevel: "three"},
	} {
		cfg := DefaultConfig()
		getenv := func(k string) string { return env[k] }
		if err := ApplyEnv(&cfg, getenv); err == nil {
			t.Errorf("ApplyEnv(%v) should fail", env)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"run level zero": func(c *Config) { c.RunLevel = 0 },
		"unknown preset": func(c *Config) { c.Preset = "brutal" },
		"empty format":   func(c *Config) { c.Format = "" },
		"bad log level":  func(c *Config) { c.LogLevel = "loud" },
	}

	for name, mutate := range tests {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: Validate() = %v, expected ErrInvalidConfig", name, err)
		}
	}
}

func TestPresets(t *testing.T) {
	prev := 0
	for _, p := range Presets {
		lvl, ok := RunLevelForPreset(p)
		if !ok {
			t.Errorf("preset %q not recognised", p)
		}
		if lvl <= prev {
			t.Errorf("preset %q starts at %d, not harder than the previous preset (%d)", p, lvl, prev)
		}
		prev = lvl
	}

	cfg := DefaultConfig()
	cfg.RunLevel = 12
	cfg.Preset = PresetHard
	if cfg.StartLevel() != 4 {
		t.Errorf("preset should win over run_level, got %d", cfg.StartLevel())
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%q): %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore Chdir(%q): %v", old, err)
		}
	})
}
