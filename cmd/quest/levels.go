package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pharmacy-quest/internal/quest"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level catalog",
	Long: `Prints every level with its items and scene coordinates.
Use --levels to validate a custom catalog before playing it.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return fmt.Errorf("level catalog: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, lvl := range catalog.Levels() {
		fmt.Fprintf(out, "Level %d (%d items)\n", lvl.Ordinal, lvl.ItemCount())

		maxIDLen := 2 // "ID" header
		for _, it := range lvl.Items {
			if len(it.ID) > maxIDLen {
				maxIDLen = len(it.ID)
			}
		}

		fmt.Fprintf(out, "  %-*s  %-9s  %s\n", maxIDLen, "ID", "Position", "Label")
		for _, it := range lvl.Items {
			pos := fmt.Sprintf("%d,%d", it.Pos.X, it.Pos.Y)
			fmt.Fprintf(out, "  %-*s  %-9s  %s\n", maxIDLen, it.ID, pos, it.Label)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Total: %d levels, %d items, %d points\n",
		catalog.Count(), catalog.TotalItems(), catalog.TotalItems()*quest.DefaultSettings().PointsPerItem)
	return nil
}
