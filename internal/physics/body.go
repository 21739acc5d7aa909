package physics

import "github.com/jecht83/Flappy-Swift/internal/core"

// BodyID identifies a body inside a World. IDs are never reused within a
// world; zero is reserved for the world's edge loop.
type BodyID uint32

// EdgeLoop is the pseudo-body ID reported for contacts with the world bounds.
const EdgeLoop BodyID = 0

// Shape selects how a body's extent is interpreted.
type Shape int

const (
	// ShapeCircle uses Radius around Pos.
	ShapeCircle Shape = iota
	// ShapeRect uses Size with Pos as the bottom-left corner.
	ShapeRect
)

// Body is a physics body. Dynamic bodies must be circles; static bodies may
// be either shape. Bodies with Scrolls set live in world space and are seen
// by collision detection shifted by the world's scroll offset.
type Body struct {
	ID BodyID

	Category      Category
	ContactMask   Category
	CollisionMask Category

	Shape  Shape
	Radius float64
	Size   core.Vec2

	Pos  core.Vec2
	Vel  core.Vec2
	Mass float64

	Dynamic        bool
	GravityEnabled bool
	Scrolls        bool

	// Collidable bodies take part in contact detection and blocking against
	// other bodies. Edge-loop confinement only depends on CollisionMask.
	Collidable bool
}

// ApplyImpulse changes the velocity by j/mass. Static bodies ignore impulses.
func (b *Body) ApplyImpulse(j core.Vec2) {
	if !b.Dynamic {
		return
	}
	m := b.Mass
	if m <= 0 {
		m = 1
	}
	b.Vel = b.Vel.Add(j.Scale(1 / m))
}

// Bounds returns the axis-aligned bounding box of the body after applying
// the scroll offset.
func (b *Body) Bounds(scroll float64) core.Box {
	p := b.screenPos(scroll)
	if b.Shape == ShapeCircle {
		return core.NewBox(p.X-b.Radius, p.Y-b.Radius, 2*b.Radius, 2*b.Radius)
	}
	return core.NewBox(p.X, p.Y, b.Size.X, b.Size.Y)
}

func (b *Body) screenPos(scroll float64) core.Vec2 {
	if b.Scrolls {
		return core.Vec2{X: b.Pos.X + scroll, Y: b.Pos.Y}
	}
	return b.Pos
}
