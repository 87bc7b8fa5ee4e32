package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cornmaze/internal/config"
	"github.com/vovakirdan/cornmaze/internal/core"
	"github.com/vovakirdan/cornmaze/internal/maze"
	"github.com/vovakirdan/cornmaze/internal/platform/tui"
)

// settings is the resolved configuration shared by all commands.
type settings struct {
	cfg    config.Config
	logger *log.Logger
}

// loadSettings loads the config file, applies global flags and sets up
// logging and the render theme. Exits on invalid settings.
func loadSettings(cmd *cobra.Command) settings {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fatalf("Error: %v\n", err)
	}

	if err := applyFlags(cmd, &cfg); err != nil {
		fatalf("Error: %v\n", err)
	}
	if err := cfg.Validate(); err != nil {
		fatalf("Error: %v\n", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "cornmaze",
		Level:           cfg.Level(),
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	logger.Debug("config loaded", "source", source, "format", cfg.Format, "preset", cfg.Preset)

	if flagNoColor || os.Getenv("NO_COLOR") != "" {
		tui.SetTheme(tui.MonochromeTheme())
	} else {
		tui.SetTheme(tui.NewTheme(cfg.Theme))
	}

	return settings{cfg: cfg, logger: logger}
}

// applyFlags overrides cfg with the global flags the user set explicitly.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("seed") {
		seed, err := maze.ParseSeed(flagSeed)
		if err != nil {
			return err
		}
		cfg.Seed = seed
	}
	if flags.Changed("level") {
		cfg.RunLevel = flagLevel
		cfg.Preset = "" // An explicit level wins over a configured preset
	}
	if flags.Changed("preset") {
		cfg.Preset = config.DifficultyPreset(flagPreset)
	}
	return nil
}

// seed returns the configured seed, picking one from the clock when unset.
func (s settings) seed() uint32 {
	if s.cfg.Seed != 0 {
		return s.cfg.Seed
	}
	seed := maze.RandomSeed(time.Now())
	s.logger.Info("picked random seed", "seed", maze.FormatSeed(seed))
	return seed
}

// runtimeConfig builds the front-end settings from the terminal size.
func (s settings) runtimeConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Seed = s.cfg.Seed
	rc.RunLevel = s.cfg.StartLevel()
	return rc
}

// stdoutIsTerminal reports whether output goes to a terminal.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
