package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jecht83/Flappy-Swift/internal/platform/tui"
	"github.com/jecht83/Flappy-Swift/internal/storage"
)

const gameID = "flappy"

var (
	flagRunsTop    bool
	flagRunsLimit  int
	flagRunsBrowse bool
	flagRunsClear  bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List journaled runs",
	Long: `Display journaled runs, newest first, or ordered by score with --top.
With --browse, pick a run in an interactive table and replay it.

Examples:
  flappy runs
  flappy runs --top --limit 5
  flappy runs --browse
  flappy runs --clear`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagRunsTop, "top", false, "Order by score instead of recency")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsBrowse, "browse", false, "Browse runs interactively")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete every journaled run")
}

func runRuns(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(gameID); err != nil {
			fail("%v", err)
		}
		fmt.Println("Run journal cleared.")
		return
	}
	if flagRunsBrowse {
		browseRuns(store)
		return
	}

	var (
		runs []storage.RunRecord
		err  error
	)
	if flagRunsTop {
		runs, err = store.TopRuns(gameID, flagRunsLimit)
	} else {
		runs, err = store.RecentRuns(gameID, flagRunsLimit)
	}
	if err != nil {
		fail("%v", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println("Run 'flappy play' to start the journal.")
		return
	}

	stats, err := store.GameStats(gameID)
	if err != nil {
		fail("%v", err)
	}

	title := "Recent runs"
	if flagRunsTop {
		title = "Runs by score"
	}
	fmt.Printf("%s (%d total, best %d, average %.1f)\n\n", title, stats.Runs, stats.Best, stats.Average)
	fmt.Printf("  %-6s  %-5s  %-8s  %-5s  %-20s  %s\n", "ID", "Score", "Time", "Taps", "Seed", "Date")
	fmt.Printf("  %-6s  %-5s  %-8s  %-5s  %-20s  %s\n", "--", "-----", "----", "----", "----", "----")
	for _, r := range runs {
		secs := 0.0
		if r.Run.TickRate > 0 {
			secs = float64(r.Run.Ticks) / float64(r.Run.TickRate)
		}
		fmt.Printf("  %-6d  %-5d  %-8s  %-5d  %-20d  %s\n",
			r.ID, r.Run.Score, fmt.Sprintf("%.2fs", secs), len(r.Run.Taps), r.Run.Seed,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	fmt.Println("Run 'flappy replay <id>' to re-simulate a run.")
}

func browseRuns(store *storage.Store) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	rec, err := tui.BrowseRuns(store, gameID, width, height)
	if err != nil {
		fail("%v", err)
	}
	if rec == nil {
		return
	}
	if !replay(rec) {
		os.Exit(1)
	}
}
