package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cornmaze/internal/maze"
)

var (
	flagCurveFrom int
	flagCurveTo   int
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Print the difficulty curve",
	Long: `Show how grid size, timer, fog, enemies, corn and loops scale with the
run level. These values do not depend on the seed.

Examples:
  cornmaze curve
  cornmaze curve --from 5 --to 30`,
	Args: cobra.NoArgs,
	Run:  runCurve,
}

func init() {
	curveCmd.Flags().IntVar(&flagCurveFrom, "from", 1, "First run level")
	curveCmd.Flags().IntVar(&flagCurveTo, "to", 15, "Last run level")
}

func runCurve(cmd *cobra.Command, args []string) {
	s := loadSettings(cmd)

	if flagCurveFrom < 1 || flagCurveTo < flagCurveFrom {
		fatalf("Error: invalid range %d..%d (levels start at 1)\n", flagCurveFrom, flagCurveTo)
	}
	s.logger.Debug("printing curve", "from", flagCurveFrom, "to", flagCurveTo)

	rows := make([][]string, 0, flagCurveTo-flagCurveFrom+1)
	for rl := flagCurveFrom; rl <= flagCurveTo; rl++ {
		d := maze.DifficultyFor(rl)
		fog := "-"
		if d.FogEnabled {
			fog = fmt.Sprintf("%d", d.FogRadius)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", rl),
			maze.LevelName(rl),
			fmt.Sprintf("%dx%d", d.GridSize, d.GridSize),
			fmt.Sprintf("%ds", d.TimeLimit),
			fog,
			fmt.Sprintf("%d", d.EnemyCount),
			fmt.Sprintf("%dms", d.EnemySpeed),
			fmt.Sprintf("%d", d.ItemTarget),
			fmt.Sprintf("%d", d.LoopOpenings),
		})
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Level", "Name", "Grid", "Time", "Fog", "Enemies", "Speed", "Corn", "Loops").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Fprintln(os.Stdout, t.String())
}
