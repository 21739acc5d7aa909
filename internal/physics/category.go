// Package physics is a small rigid-body world for the flappy engine.
// It integrates dynamic circles under gravity, confines them to an edge loop,
// blocks them against static rectangles and reports categorized begin-contact
// events. It knows nothing about game rules: categories are opaque bit flags
// and contacts carry the union of the two categories involved.
package physics

import "strings"

// Category is a bit set of collision categories.
type Category uint32

// CategoryNone is the empty set.
const CategoryNone Category = 0

// Collision categories used by the flappy world.
const (
	CategoryBoundary Category = 1 << iota
	CategoryPlayer
	CategoryPipe
	CategoryGap
)

var categoryNames = []struct {
	c    Category
	name string
}{
	{CategoryBoundary, "boundary"},
	{CategoryPlayer, "player"},
	{CategoryPipe, "pipe"},
	{CategoryGap, "gap"},
}

// Has reports whether every bit of o is set in c.
func (c Category) Has(o Category) bool {
	return o != 0 && c&o == o
}

// Any reports whether c and o share at least one bit.
func (c Category) Any(o Category) bool {
	return c&o != 0
}

// String renders the set as names joined with "|", e.g. "player|gap".
func (c Category) String() string {
	if c == CategoryNone {
		return "none"
	}
	var parts []string
	rest := c
	for _, n := range categoryNames {
		if c&n.c != 0 {
			parts = append(parts, n.name)
			rest &^= n.c
		}
	}
	if rest != 0 {
		parts = append(parts, "unknown")
	}
	return strings.Join(parts, "|")
}

// Union combines categories into one set.
func Union(cs ...Category) Category {
	var u Category
	for _, c := range cs {
		u |= c
	}
	return u
}

// Collides reports whether two bodies block each other: each one's collision
// mask must include the other's category.
func Collides(aCategory, aMask, bCategory, bMask Category) bool {
	return aMask.Any(bCategory) && bMask.Any(aCategory)
}

// Contacts reports whether two bodies generate contact events: at least one
// side's contact mask includes the other's category.
func Contacts(aCategory, aMask, bCategory, bMask Category) bool {
	return aMask.Any(bCategory) || bMask.Any(aCategory)
}
