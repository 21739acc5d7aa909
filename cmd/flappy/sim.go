package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jecht83/Flappy-Swift/internal/core"
	"github.com/jecht83/Flappy-Swift/internal/game"
	"github.com/jecht83/Flappy-Swift/internal/storage"
)

var (
	flagSimSeconds float64
	flagSimSave    bool
	flagSimMargin  float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless session driven by the autopilot",
	Long: `Simulate a session without a terminal UI. The autopilot taps whenever
the bird sinks below the bottom of the next gap plus a margin. Every finished
run is printed and, with --save, journaled for later replay.

Examples:
  flappy sim
  flappy sim --seconds 300 --seed 7
  flappy sim --save --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().Float64Var(&flagSimSeconds, "seconds", 60, "Simulated time in seconds")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Journal finished runs")
	simCmd.Flags().Float64Var(&flagSimMargin, "margin", game.DefaultAutopilot().Margin, "Autopilot height above the gap bottom")
}

func runSim(cmd *cobra.Command, args []string) {
	if flagSimSeconds <= 0 {
		fail("--seconds must be positive, got %v", flagSimSeconds)
	}
	cfg := loadConfig()
	logger := stderrLogger()

	var store *storage.Store
	if flagSimSave {
		store = openStore()
		defer store.Close()
	}

	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = seed()

	g := game.New(cfg, game.WithLogger(logger))
	g.Reset(rc)
	pilot := game.DefaultAutopilot()
	pilot.Margin = flagSimMargin

	ticks := int(flagSimSeconds * float64(rc.TickRate))
	logger.Info("sim", "seed", rc.Seed, "fps", rc.TickRate, "ticks", ticks)

	runs, best, phase := 0, 0, g.State().Phase
	for i := 0; i < ticks; i++ {
		in := core.NewInputFrame()
		if pilot.ShouldTap(g.Session()) {
			in.Set(core.ActionFlap)
		}
		res := g.Step(in)

		if res.State.Phase != phase {
			logger.Debug("phase", "from", phase, "to", res.State.Phase, "tick", g.Ticks())
			phase = res.State.Phase
		}
		if run := res.Finished; run != nil {
			runs++
			if run.Score > best {
				best = run.Score
			}
			fmt.Printf("run %d: score %d after %.2fs (seed %d, %d taps)\n",
				runs, run.Score, float64(run.Ticks)/float64(run.TickRate), run.Seed, len(run.Taps))
			if store != nil {
				id, err := store.SaveRun(g.ID(), *run)
				if err != nil {
					fail("%v", err)
				}
				logger.Info("journaled", "id", id, "score", run.Score)
			}
		}
	}

	st := g.State()
	fmt.Printf("finished %d runs in %.0fs, best %d, current run %s with score %d\n",
		runs, flagSimSeconds, best, st.Phase, st.Score)
}
