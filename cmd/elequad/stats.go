package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/elequad/internal/level"
	"github.com/vovakirdan/elequad/internal/storage"
)

var (
	flagRecent int
	flagClear  bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [level]",
	Short: "Show recorded runs",
	Long: `Without an argument, shows a per-level summary of every recorded
run. With a level ID, shows the top 10 completed runs for that level.

Examples:
  elequad stats
  elequad stats hollow
  elequad stats --recent 5
  elequad stats hollow --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagRecent, "recent", 0, "Show the N most recent runs instead of the summary")
	statsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs for the given level")
}

func runStats(cmd *cobra.Command, args []string) {
	registerExtraLevels()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a level ID")
			os.Exit(1)
		}
		if err := store.ClearRuns(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared runs for %s.\n", args[0])
		return
	}

	if flagRecent > 0 {
		showRecent(store, flagRecent)
		return
	}

	if len(args) == 1 {
		showLevelRuns(store, args[0])
		return
	}
	showSummary(store)
}

// showRecent prints the latest runs, completed or not.
func showRecent(store *storage.Store, limit int) {
	runs, err := store.RecentRuns(limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-8s  %-7s  %-5s  %s\n", "Level", "Time", "Deaths", "Won", "Date")
	fmt.Printf("  %-16s  %-8s  %-7s  %-5s  %s\n", "-----", "----", "------", "---", "----")

	for _, r := range runs {
		won := "no"
		if r.Completed {
			won = "yes"
		}
		fmt.Printf("  %-16s  %02d:%02d     %-7d  %-5s  %s\n",
			r.LevelID, r.DurationSecs/60, r.DurationSecs%60, r.Deaths, won,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// showLevelRuns prints the top completed runs for one level.
func showLevelRuns(store *storage.Store, levelID string) {
	if !level.Exists(levelID) {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'elequad levels' to see available levels.")
		os.Exit(1)
	}

	name := levelID
	for _, info := range level.List() {
		if info.ID == levelID {
			name = info.Name
		}
	}

	runs, err := store.BestRuns(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", name)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No completed runs yet.")
		fmt.Println()
		fmt.Printf("Play 'elequad play %s' to set the first time!\n", levelID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-7s  %s\n", "Rank", "Time", "Deaths", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %s\n", "----", "----", "------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %02d:%02d     %-7d  %s\n",
			i+1, r.DurationSecs/60, r.DurationSecs%60, r.Deaths,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// showSummary prints the aggregate table for every level with runs.
func showSummary(store *storage.Store) {
	all, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'elequad menu' to start.")
		return
	}

	// Name lookup for levels still registered; stale IDs print as-is.
	names := make(map[string]string)
	for _, info := range level.List() {
		names[info.ID] = info.Name
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-16s  %-6s  %-6s  %-7s  %s\n", "Level", "Runs", "Wins", "Deaths", "Best")
	fmt.Printf("  %-16s  %-6s  %-6s  %-7s  %s\n", "-----", "----", "----", "------", "----")

	for _, id := range ids {
		s := all[id]
		name := id
		if n, ok := names[id]; ok {
			name = n
		}
		best := "-"
		if s.Completions > 0 {
			best = fmt.Sprintf("%02d:%02d", s.BestSecs/60, s.BestSecs%60)
		}
		fmt.Printf("  %-16s  %-6d  %-6d  %-7d  %s\n",
			name, s.RunCount, s.Completions, s.TotalDeaths, best)
	}

	total, err := store.TotalDeaths()
	if err == nil {
		fmt.Println()
		fmt.Printf("Total deaths across all runs: %d\n", total)
	}
}
