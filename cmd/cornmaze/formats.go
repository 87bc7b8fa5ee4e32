package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cornmaze/internal/registry"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List output formats",
	Long:  `Shows all level output formats usable with 'generate --format'.`,
	Run:   runFormats,
}

func runFormats(cmd *cobra.Command, args []string) {
	formats := registry.List()

	if len(formats) == 0 {
		fmt.Println("No formats available.")
		return
	}

	fmt.Println("Available formats:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, f := range formats {
		if len(f.ID) > maxIDLen {
			maxIDLen = len(f.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")

	// Print formats
	for _, f := range formats {
		fmt.Printf("  %-*s  %s\n", maxIDLen, f.ID, f.Title)
	}

	fmt.Println()
	fmt.Println("Run 'cornmaze generate --format <id>' to use one.")
}
