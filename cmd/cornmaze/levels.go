package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cornmaze/internal/levels"
	"github.com/vovakirdan/cornmaze/internal/platform/tui"
	"github.com/vovakirdan/cornmaze/internal/registry"
)

var (
	flagLevelsDir    string
	flagLevelsFile   string
	flagLevelsFormat string
	flagInteractive  bool
)

var levelsCmd = &cobra.Command{
	Use:   "levels [name]",
	Short: "List or show campaign levels",
	Long: `Without a name, lists the hand-authored campaign levels. With a name,
prints that level in the chosen format.

Levels are read from the built-in campaign unless --dir points at a
directory of YAML level files (such as ones written by 'generate -f yaml').

Examples:
  cornmaze levels
  cornmaze levels "Level 4" --format styled
  cornmaze levels --dir ./my-levels
  cornmaze levels --file ./level.yaml
  cornmaze levels -i`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "dir", "", "Directory of YAML level files")
	levelsCmd.Flags().StringVar(&flagLevelsFile, "file", "", "Show a single level file")
	levelsCmd.Flags().StringVarP(&flagLevelsFormat, "format", "f", "styled", "Output format for a shown level")
	levelsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse levels in a table")
}

func runLevels(cmd *cobra.Command, args []string) {
	s := loadSettings(cmd)

	loader := levels.CampaignLoader()
	if flagLevelsDir != "" {
		loader = levels.NewLoader(flagLevelsDir)
	}
	s.logger.Debug("loading levels", "root", loader.Root)

	switch {
	case flagLevelsFile != "":
		lvl, err := loader.LoadFile(flagLevelsFile)
		if err != nil {
			fatalf("Error: %v\n", err)
		}
		printLevel(lvl)

	case len(args) == 1:
		lvl, err := loader.LoadByName(args[0])
		if errors.Is(err, levels.ErrLevelNotFound) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'cornmaze levels' to see available levels.")
			os.Exit(1)
		}
		if err != nil {
			fatalf("Error: %v\n", err)
		}
		printLevel(lvl)

	default:
		all, err := loader.LoadAll()
		if err != nil {
			fatalf("Error: %v\n", err)
		}
		if flagInteractive {
			browseLevels(s, all)
			return
		}
		listLevels(all)
	}
}

func printLevel(lvl levels.Level) {
	enc, err := registry.Create(flagLevelsFormat)
	if err != nil {
		fatalf("Error: %v\n", err)
	}
	data, err := enc.Encode(lvl.Level)
	if err != nil {
		fatalf("Error: %v\n", err)
	}
	os.Stdout.Write(data)
}

func listLevels(all []levels.Level) {
	if len(all) == 0 {
		fmt.Println("No levels found.")
		return
	}

	fmt.Println("Levels:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, lvl := range all {
		if len(lvl.Name()) > maxNameLen {
			maxNameLen = len(lvl.Name())
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-5s  %-5s  %-6s  %s\n", maxNameLen, "Name", "Grid", "Time", "Target", "File")
	fmt.Printf("  %-*s  %-5s  %-5s  %-6s  %s\n", maxNameLen, "----", "----", "----", "------", "----")

	// Print levels
	for _, lvl := range all {
		g := lvl.Grid()
		fmt.Printf("  %-*s  %-5s  %-5s  %-6d  %s\n",
			maxNameLen, lvl.Name(),
			fmt.Sprintf("%dx%d", g.Rows(), g.Cols()),
			fmt.Sprintf("%ds", lvl.TimeLimit()),
			lvl.ItemsToAdvance(),
			lvl.FilePath)
	}

	fmt.Println()
	fmt.Println("Run 'cornmaze levels <name>' to show a level.")
}

func browseLevels(s settings, all []levels.Level) {
	if !stdoutIsTerminal() {
		fatalf("Error: --interactive needs a terminal\n")
	}

	rc := s.runtimeConfig()
	lvl, picked, err := tui.RunCampaign(all, rc.ScreenW, rc.ScreenH)
	if err != nil {
		fatalf("Error: %v\n", err)
	}
	if picked {
		printLevel(lvl)
	}
}
