package game

import (
	"math"

	"github.com/jecht83/Flappy-Swift/internal/config"
	"github.com/jecht83/Flappy-Swift/internal/physics"
)

// Rule describes what a contact between two categories means.
type Rule struct {
	Scores         bool    // Award one point
	BlocksMovement bool    // The two bodies collide physically
	GameOver       bool    // End the run, subject to FatalBelowY
	FatalBelowY    float64 // GameOver only applies while the player is below this height
}

// Fatal reports whether the rule ends the run for a player at height y.
func (r Rule) Fatal(y float64) bool {
	return r.GameOver && y < r.FatalBelowY
}

// RuleTable maps a category union to its rule. Unions without an entry are
// ignored.
type RuleTable map[physics.Category]Rule

// DefaultRules returns the flappy contact rules.
func DefaultRules(cfg config.FlappyConfig) RuleTable {
	return RuleTable{
		physics.CategoryPlayer | physics.CategoryGap: {
			Scores: true,
		},
		physics.CategoryPlayer | physics.CategoryPipe: {
			BlocksMovement: true,
			GameOver:       true,
			FatalBelowY:    math.Inf(1),
		},
		physics.CategoryPlayer | physics.CategoryBoundary: {
			BlocksMovement: true,
			GameOver:       true,
			FatalBelowY:    cfg.Rules.BoundaryFatalBelow,
		},
	}
}

// Lookup returns the rule for a union.
func (t RuleTable) Lookup(union physics.Category) (Rule, bool) {
	r, ok := t[union]
	return r, ok
}

// ContactMask returns every category that has a rule with c.
func (t RuleTable) ContactMask(c physics.Category) physics.Category {
	return t.partners(c, func(Rule) bool { return true })
}

// CollisionMask returns every category whose rule with c blocks movement.
func (t RuleTable) CollisionMask(c physics.Category) physics.Category {
	return t.partners(c, func(r Rule) bool { return r.BlocksMovement })
}

func (t RuleTable) partners(c physics.Category, keep func(Rule) bool) physics.Category {
	var mask physics.Category
	for union, r := range t {
		if union == c || !union.Has(c) || !keep(r) {
			continue
		}
		mask |= union &^ c
	}
	return mask
}
