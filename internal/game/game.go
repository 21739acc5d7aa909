package game

import (
	"github.com/jecht83/Flappy-Swift/internal/clock"
	"github.com/jecht83/Flappy-Swift/internal/config"
	"github.com/jecht83/Flappy-Swift/internal/core"
)

// Game adapts a Session to a fixed-step platform loop: it owns the step
// clock, maps platform actions to session input and records every run so it
// can be replayed.
type Game struct {
	cfg     config.FlappyConfig
	opts    []Option
	runtime core.RuntimeConfig

	session *Session
	clock   *clock.Stepper
	paused  bool

	run      int
	runStart int   // Clock ticks before the current run's first tick
	taps     []int // Tap offsets within the current run
}

// New creates a game. Call Reset before stepping it.
func New(cfg config.FlappyConfig, opts ...Option) *Game {
	return &Game{cfg: cfg, opts: opts}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Swift"
}

// Reset starts a new session seeded from rc.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.session = NewSession(g.cfg, append(g.opts, WithSeed(rc.Seed))...)
	g.clock = clock.NewStepper(rc.TickRate)
	g.paused = false
	g.run = g.session.Run()
	g.runStart = 0
	g.taps = nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.session.State() != StateEnded {
		g.paused = !g.paused
	}
	if in.Has(core.ActionRestart) && g.session.State() == StateEnded {
		g.session.Restart()
		g.paused = false
		g.syncRun(0)
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionFlap) && g.session.State() != StateEnded {
		g.taps = append(g.taps, g.clock.Ticks()-g.runStart)
		g.session.PrimaryInput()
	}

	before := g.session.State()
	g.session.Tick(g.clock.Step())
	// A delayed restart fires inside the tick, which is then the new run's first.
	g.syncRun(1)

	res := core.StepResult{State: g.State()}
	if before != StateEnded && g.session.State() == StateEnded {
		res.Finished = g.summary()
	}
	return res
}

// syncRun starts tap recording for a new run. inTick is the number of the
// new run's ticks already executed.
func (g *Game) syncRun(inTick int) {
	if g.session.Run() == g.run {
		return
	}
	g.run = g.session.Run()
	g.runStart = g.clock.Ticks() - inTick
	g.taps = nil
}

func (g *Game) summary() *core.RunSummary {
	return &core.RunSummary{
		Seed:     g.session.RunSeed(),
		TickRate: g.clock.Rate(),
		Ticks:    g.clock.Ticks() - g.runStart,
		Taps:     append([]int(nil), g.taps...),
		Score:    g.session.Score(),
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	Draw(dst, g.session.Snapshot())
	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.session.Score(),
		Phase:  g.session.State().String(),
		Ended:  g.session.State() == StateEnded,
		Paused: g.paused,
	}
}

// Session returns the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Ticks returns the number of steps taken since Reset, paused steps excluded.
func (g *Game) Ticks() int {
	return g.clock.Ticks()
}
