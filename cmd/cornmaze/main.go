// cornmaze generates deterministic corn-maze levels for the endless mode.
//
// Usage:
//
//	cornmaze generate          - Print the level for a seed and run level
//	cornmaze preview           - Show a level with its summary panel
//	cornmaze curve             - Print the difficulty curve
//	cornmaze levels [name]     - List or show the hand-authored campaign
//	cornmaze browse            - Pick a seed interactively
//	cornmaze formats           - List output formats
//
// Global flags:
//
//	--seed <value>    - Base seed of the run (0 = random based on time)
//	--level <n>       - Run level, starting at 1
//	--preset <name>   - Start level preset: easy, normal, hard, nightmare
//	--config <path>   - Path to a config YAML
//	--verbose         - Debug logging
//	--no-color        - Plain output
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import formats to register them
	_ "github.com/vovakirdan/cornmaze/internal/levels/formats"
	_ "github.com/vovakirdan/cornmaze/internal/platform/tui"
)

var (
	// Global flags
	flagSeed    string
	flagLevel   int
	flagPreset  string
	flagConfig  string
	flagVerbose bool
	flagNoColor bool
)

func main() {
	// Local .env is optional
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cornmaze",
	Short: "Cornmaze - procedural corn-maze levels",
	Long: `Cornmaze builds the levels of the endless corn-maze mode. A level is a
pure function of a seed and a run level: the same pair always gives the
same maze, corn, enemies and fog.

Available commands:
  generate - Print a generated level
  preview  - Show a level with its summary
  curve    - Print the difficulty curve
  levels   - List or show campaign levels
  browse   - Pick a seed interactively
  formats  - List output formats

Examples:
  cornmaze generate --seed 42 --level 3
  cornmaze generate --seed 42 --level 1 --count 5 --format yaml
  cornmaze preview --seed 12345 --level 7 --fog
  cornmaze curve --to 30
  cornmaze levels "Level 3"
  cornmaze browse`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagSeed, "seed", "", "Base seed of the run (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagLevel, "level", 0, "Run level, starting at 1")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Start level preset: easy, normal, hard, nightmare")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: ~/.cornmaze/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(curveCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(formatsCmd)
}
