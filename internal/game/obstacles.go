package game

import (
	"math/rand"

	"github.com/jecht83/Flappy-Swift/internal/config"
	"github.com/jecht83/Flappy-Swift/internal/core"
)

// Triple is the layout of one obstacle: lower pipe, gap sensor and upper
// pipe, stacked bottom to top, in world coordinates.
type Triple struct {
	Lower core.Box
	Gap   core.Box
	Upper core.Box
}

// Span returns the summed height of the three parts. It always equals the
// playable band.
func (t Triple) Span() float64 {
	return t.Lower.H + t.Gap.H + t.Upper.H
}

// Generator lays out obstacle triples with a seeded random source.
type Generator struct {
	rng *rand.Rand
	cfg config.FlappyConfig
}

// NewGenerator creates a generator. The same seed yields the same sequence
// of layouts.
func NewGenerator(seed int64, cfg config.FlappyConfig) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// Reseed restarts the layout sequence.
func (g *Generator) Reseed(seed int64) {
	g.rng.Seed(seed)
}

// LowerHeight samples a lower pipe height in [min_lower, maxLower) on the
// configured height grid.
func (g *Generator) LowerHeight() float64 {
	o := g.cfg.Obstacles
	h := core.Quantize(core.RandRange(g.rng, o.MinLower, g.cfg.MaxLower()), o.HeightSteps)
	if h < o.MinLower {
		h = o.MinLower
	}
	return h
}

// Next lays out a triple centered on the spawn column. origin is the world
// origin's current screen x, so the triple appears at spawn_x on screen.
func (g *Generator) Next(origin float64) Triple {
	return g.Layout(g.LowerHeight(), g.cfg.Obstacles.SpawnX-origin)
}

// Layout stacks a triple with lower height h around world column cx.
func (g *Generator) Layout(h, cx float64) Triple {
	o := g.cfg.Obstacles
	floor := g.cfg.World.FloorOffset
	pipeX := cx - o.PipeWidth/2

	lower := core.NewBox(pipeX, floor, o.PipeWidth, h)
	gap := core.NewBox(cx-o.GapWidth/2, lower.Top(), o.GapWidth, o.GapHeight)
	upperH := g.cfg.PlayableBand() - h - o.GapHeight
	upper := core.NewBox(pipeX, floor+h+o.GapHeight, o.PipeWidth, upperH)

	return Triple{Lower: lower, Gap: gap, Upper: upper}
}
