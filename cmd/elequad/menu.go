package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/elequad/internal/config"
	"github.com/vovakirdan/elequad/internal/core"
	"github.com/vovakirdan/elequad/internal/platform/tui"
	"github.com/vovakirdan/elequad/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with a level picker menu",
	Long: `Start the game in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a level.
After a level ends, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select level
  Tab          - Run history
  Q            - Quit

Examples:
  elequad menu
  elequad menu --fps 30
  elequad menu --db ./runs.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	registerExtraLevels()

	tuning, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Menu loop
	for {
		result, menuErr := tui.RunMenu(store, width, height)
		if menuErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
			break
		}

		// Carry size changes across screens
		width, height = result.Width, result.Height

		if result.Quit {
			break
		}

		if result.WantsStats {
			goBack, statsErr := tui.RunStatsBoard(store, width, height)
			if statsErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", statsErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from the stats board
		}

		if result.LevelID == "" {
			break
		}

		rt := core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		}

		backToMenu, runErr := tui.Run(result.LevelID, store, tuning, rt)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running level: %v\n", runErr)
			break
		}
		if !backToMenu {
			break
		}
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
