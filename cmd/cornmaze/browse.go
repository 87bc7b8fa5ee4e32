package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cornmaze/internal/maze"
	"github.com/vovakirdan/cornmaze/internal/platform/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Pick a seed interactively",
	Long: `Open the endless-mode seed picker. The level for the current seed and
run level is previewed as you step through seeds.

Controls:
  Left/Right  - Previous/next seed (wraps within 1..65535)
  Up/Down     - Harder/easier run level
  R           - Random seed
  F           - Toggle fog
  Enter       - Pick the seed
  ?           - More keys
  Q/Esc       - Quit

Examples:
  cornmaze browse
  cornmaze browse --seed 4242 --preset hard`,
	Args: cobra.NoArgs,
	Run:  runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) {
	s := loadSettings(cmd)

	if !stdoutIsTerminal() {
		fatalf("Error: browse needs a terminal\n")
	}

	result, err := tui.RunBrowser(s.runtimeConfig())
	if err != nil {
		fatalf("Error running browser: %v\n", err)
	}

	s.logger.Debug("browser closed", "seed", result.Seed, "level", result.RunLevel, "confirmed", result.Confirmed)
	if !result.Confirmed {
		return
	}

	fmt.Printf("Seed %s, run level %d\n", maze.FormatSeed(result.Seed), result.RunLevel)
	fmt.Printf("Run 'cornmaze generate --seed %d --level %d' to print it.\n", result.Seed, result.RunLevel)
}
