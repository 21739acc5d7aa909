package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jecht83/Flappy-Swift/internal/game"
	"github.com/jecht83/Flappy-Swift/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a journaled run",
	Long: `Replay a journaled run headlessly from its seed and input ticks and
check that it reproduces the recorded score and crash tick. Exits with status
1 when it does not.

Examples:
  flappy replay 7
  flappy replay 7 --config ./my-flappy.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fail("invalid run id %q", args[0])
	}

	store := openStore()
	rec, err := store.Run(id)
	store.Close()
	if errors.Is(err, storage.ErrNotFound) {
		fail("no run #%d in %s", id, flagDBPath)
	}
	if err != nil {
		fail("%v", err)
	}

	if !replay(rec) {
		os.Exit(1)
	}
}

// replay re-simulates rec and prints the comparison. Reports whether the
// replay reproduced the run.
func replay(rec *storage.RunRecord) bool {
	cfg := loadConfig()
	logger := stderrLogger()

	res, err := game.Replay(cfg, rec.Run, game.WithLogger(logger))
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("run #%d (seed %d, %d taps)\n", rec.ID, rec.Run.Seed, len(rec.Run.Taps))
	fmt.Printf("  recorded: score %d, crash at tick %d\n", rec.Run.Score, rec.Run.Ticks)
	fmt.Printf("  replayed: score %d, %s at tick %d\n", res.Score, res.State, res.Ticks)

	if !res.Matches(rec.Run) {
		fmt.Println("  MISMATCH")
		return false
	}
	fmt.Println("  reproduced")
	return true
}
