package game

import "github.com/jecht83/Flappy-Swift/internal/physics"

// Outcome is the combined effect of one batch of contacts.
type Outcome struct {
	Points   int  // Scoring contacts
	GameOver bool // At least one fatal contact
	Ignored  int  // Contacts without a rule, or non-fatal ones
}

// Resolver routes contact unions through a RuleTable. Every contact is
// evaluated on its own: a scoring contact counts even when another contact
// in the same batch ends the run.
type Resolver struct {
	rules RuleTable
}

// NewResolver creates a resolver over rules.
func NewResolver(rules RuleTable) *Resolver {
	return &Resolver{rules: rules}
}

// Resolve evaluates contacts for a player at height playerY.
func (r *Resolver) Resolve(contacts []physics.Contact, playerY float64) Outcome {
	var out Outcome
	for _, c := range contacts {
		rule, ok := r.rules.Lookup(c.Union)
		if !ok {
			out.Ignored++
			continue
		}
		acted := false
		if rule.Scores {
			out.Points++
			acted = true
		}
		if rule.Fatal(playerY) {
			out.GameOver = true
			acted = true
		}
		if !acted {
			out.Ignored++
		}
	}
	return out
}
