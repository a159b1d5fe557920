// elequad is a co-op terminal platformer: four elemental actors share
// one keyboard (or one SSH server) and one destructible tile level.
//
// Usage:
//
//	elequad levels           - List available levels
//	elequad play <level>     - Play a level
//	elequad menu             - Start the interactive level picker
//	elequad serve            - Start SSH server for remote play
//	elequad stats [level]    - Show recorded runs
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--db <path>       - Set database path (default: ~/.elequad/runs.db)
//	--config <path>   - Path to tuning config YAML
//	--levels <dir>    - Directory with extra level YAML files
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/elequad/internal/level"
)

var (
	// Global flags
	flagFPS       int
	flagDBPath    string
	flagConfig    string
	flagLevelsDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "elequad",
	Short: "Elequad - four elements, one terminal",
	Long: `Elequad is a co-operative puzzle platformer for the terminal.
Fire, Water, Earth and Wind share one level; each element shrugs off
its own liquid, dies in the others, and carries one ability. Get all
four to their gates with every pressure plate latched.

Available commands:
  levels   - Show all registered levels
  play     - Play a specific level directly
  menu     - Interactive level picker
  serve    - Start SSH server for remote play
  stats    - View recorded runs

Examples:
  elequad levels
  elequad play hollow
  elequad menu
  elequad serve --ssh :2222
  elequad stats hollow`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.elequad/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to tuning config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with extra level YAML files")

	// Add subcommands
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}

// registerExtraLevels loads level files from --levels, if given.
// A bad directory is reported but never fatal; the builtins remain.
func registerExtraLevels() {
	if flagLevelsDir == "" {
		return
	}
	if err := level.NewLoader(flagLevelsDir).RegisterAll(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load levels from %s: %v\n", flagLevelsDir, err)
	}
}
