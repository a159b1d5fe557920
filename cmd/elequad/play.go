package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/elequad/internal/config"
	"github.com/vovakirdan/elequad/internal/core"
	"github.com/vovakirdan/elequad/internal/level"
	"github.com/vovakirdan/elequad/internal/platform/tui"
	"github.com/vovakirdan/elequad/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <level>",
	Short: "Play a level",
	Long: `Start playing the specified level. All four actors are driven
from one keyboard; the bindings come from the tuning config.

Default bindings:
  Fire    a / d move, w jump, s ability
  Water   arrows move and jump, down ability
  Earth   j / l move, i jump, k ability
  Wind    f / h move, t jump, double-tap a direction to dash

Session keys:
  P          - Pause
  R          - Reset the attempt
  Esc        - Pause, then back out
  Q/Ctrl+C   - Quit

Examples:
  elequad play hollow
  elequad play hollow --config ./my-tuning.yaml
  elequad play cavern --fps 30`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	registerExtraLevels()

	levelID := args[0]
	if !level.Exists(levelID) {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'elequad levels' to see available levels.")
		os.Exit(1)
	}

	tuning, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	_, runErr := tui.Run(levelID, store, tuning, rt)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running level: %v\n", runErr)
		os.Exit(1)
	}
}
