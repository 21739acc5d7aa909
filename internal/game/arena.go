// Package game implements the flappy engine core: the play session state
// machine, the scrolling world with its background tiles and obstacle
// triples, the player body, scoring and contact resolution.
//
// A Session is driven by an external frame loop through Tick and
// PrimaryInput and exposes read-only Snapshots for presentation. It is not
// safe for concurrent use.
package game

import (
	"github.com/kamstrup/intmap"

	"github.com/jecht83/Flappy-Swift/internal/core"
	"github.com/jecht83/Flappy-Swift/internal/physics"
)

// EntityID is a stable handle to an entity in an Arena. IDs are never reused.
type EntityID uint32

// Kind classifies entities.
type Kind int

const (
	KindPlayer Kind = iota
	KindTile
	KindLowerPipe
	KindGap
	KindUpperPipe
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindTile:
		return "tile"
	case KindLowerPipe:
		return "pipe-lower"
	case KindGap:
		return "gap"
	case KindUpperPipe:
		return "pipe-upper"
	default:
		return "unknown"
	}
}

// Entity is anything the session owns and presents.
type Entity struct {
	ID      EntityID
	Kind    Kind
	Box     core.Box       // World coordinates; scrolling entities are relative to the world origin
	Body    physics.BodyID // Zero when the entity has no physics body
	Texture string         // Opaque asset name, empty when invisible
}

// Arena stores entities by ID.
type Arena struct {
	entities *intmap.Map[EntityID, *Entity]
	next     EntityID
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{entities: intmap.New[EntityID, *Entity](32)}
}

// Spawn adds an entity and returns it.
func (a *Arena) Spawn(kind Kind, box core.Box, texture string) *Entity {
	a.next++
	e := &Entity{ID: a.next, Kind: kind, Box: box, Texture: texture}
	a.entities.Put(e.ID, e)
	return e
}

// Get returns the entity with the given ID, or nil.
func (a *Arena) Get(id EntityID) *Entity {
	e, ok := a.entities.Get(id)
	if !ok {
		return nil
	}
	return e
}

// Despawn removes an entity. Unknown IDs are ignored.
func (a *Arena) Despawn(id EntityID) {
	a.entities.Del(id)
}

// Len returns the number of live entities.
func (a *Arena) Len() int {
	return a.entities.Len()
}
