package game

import (
	"fmt"
	"sort"

	"github.com/jecht83/Flappy-Swift/internal/clock"
	"github.com/jecht83/Flappy-Swift/internal/config"
	"github.com/jecht83/Flappy-Swift/internal/core"
)

// ReplayResult is the outcome of re-simulating a recorded run.
type ReplayResult struct {
	Score int
	State State
	Ticks int
}

// Matches reports whether the replay reproduced the recorded run.
func (r ReplayResult) Matches(run core.RunSummary) bool {
	return r.State == StateEnded && r.Score == run.Score && r.Ticks == run.Ticks
}

// Replay re-simulates a recorded run in a fresh session and stops at the
// recorded crash tick, or earlier if the session crashes first.
func Replay(cfg config.FlappyConfig, run core.RunSummary, opts ...Option) (ReplayResult, error) {
	if run.Ticks < 0 {
		return ReplayResult{}, fmt.Errorf("replay: negative tick count %d", run.Ticks)
	}
	taps := append([]int(nil), run.Taps...)
	sort.Ints(taps)

	s := NewSession(cfg, append(opts, WithSeed(run.Seed))...)
	c := clock.NewStepper(run.TickRate)

	next := 0
	for c.Ticks() < run.Ticks && s.State() != StateEnded {
		for next < len(taps) && taps[next] <= c.Ticks() {
			s.PrimaryInput()
			next++
		}
		s.Tick(c.Step())
	}
	return ReplayResult{Score: s.Score(), State: s.State(), Ticks: c.Ticks()}, nil
}
