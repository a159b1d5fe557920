package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/elequad/internal/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long:  `Shows a list of all levels registered in the game, builtin and loaded.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	registerExtraLevels()

	infos := level.List()

	if len(infos) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, info := range infos {
		if len(info.ID) > maxIDLen {
			maxIDLen = len(info.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Name")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "----")

	// Print levels
	for _, info := range infos {
		fmt.Printf("  %-*s  %s\n", maxIDLen, info.ID, info.Name)
	}

	fmt.Println()
	fmt.Println("Run 'elequad play <id>' to play a level.")
}
