package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cornmaze/internal/maze"
	"github.com/vovakirdan/cornmaze/internal/platform/tui"
)

var flagFog bool

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show a level with its summary",
	Long: `Draw a generated level in color next to a summary of its seed, size,
timer, corn, enemies and fog. With --fog, only what the player can see
from the start cell is drawn.

Examples:
  cornmaze preview --seed 12345 --level 7
  cornmaze preview --seed 1 --level 10 --fog`,
	Args: cobra.NoArgs,
	Run:  runPreview,
}

func init() {
	previewCmd.Flags().BoolVar(&flagFog, "fog", false, "Hide cells outside the reveal radius")
}

func runPreview(cmd *cobra.Command, args []string) {
	s := loadSettings(cmd)

	seed := s.seed()
	runLevel := s.cfg.StartLevel()
	lvl := maze.Generate(seed, runLevel)

	screen := tui.LevelScreen(lvl, tui.LevelInfo{Seed: seed, RunLevel: runLevel}, tui.DrawOptions{
		Entities: true,
		Fog:      flagFog,
	})

	rc := s.runtimeConfig()
	if stdoutIsTerminal() && rc.ScreenW < screen.Width() {
		s.logger.Warn("terminal too narrow for preview", "width", rc.ScreenW, "need", screen.Width())
	}

	fmt.Println(tui.RenderScreen(screen))
}
