package physics

import (
	"math"

	"github.com/kamstrup/intmap"

	"github.com/jecht83/Flappy-Swift/internal/core"
)

// contactSlop lets resting bodies keep touching after they were pushed out.
const contactSlop = 1e-6

// Contact is a begin-contact event between two bodies. B is EdgeLoop when
// the contact is with the world bounds.
type Contact struct {
	A, B  BodyID
	Union Category
}

// World owns bodies, integrates them and collects contacts.
type World struct {
	Gravity core.Vec2

	bounds    core.Box
	hasBounds bool
	scroll    float64

	bodies *intmap.Map[BodyID, *Body]
	order  []BodyID // insertion order keeps stepping deterministic
	nextID BodyID

	touching *intmap.Map[uint64, struct{}]
	next     *intmap.Map[uint64, struct{}]
	pending  []Contact
}

// NewWorld creates an empty world with the given gravity and no bounds.
func NewWorld(gravity core.Vec2) *World {
	return &World{
		Gravity:  gravity,
		bodies:   intmap.New[BodyID, *Body](64),
		touching: intmap.New[uint64, struct{}](64),
		next:     intmap.New[uint64, struct{}](64),
	}
}

// SetBounds installs an edge loop. Dynamic bodies whose collision mask
// includes CategoryBoundary are kept inside it.
func (w *World) SetBounds(b core.Box) {
	w.bounds = b
	w.hasBounds = true
}

// Bounds returns the edge loop, if any.
func (w *World) Bounds() (core.Box, bool) {
	return w.bounds, w.hasBounds
}

// SetScroll sets the horizontal offset applied to scrolling bodies.
func (w *World) SetScroll(x float64) {
	w.scroll = x
}

// Scroll returns the current scroll offset.
func (w *World) Scroll() float64 {
	return w.scroll
}

// Add copies b into the world, assigns it a fresh ID and returns the
// world-owned body.
func (w *World) Add(b Body) *Body {
	w.nextID++
	b.ID = w.nextID
	body := &b
	w.bodies.Put(body.ID, body)
	w.order = append(w.order, body.ID)
	return body
}

// Body returns the body with the given ID, or nil.
func (w *World) Body(id BodyID) *Body {
	b, ok := w.bodies.Get(id)
	if !ok {
		return nil
	}
	return b
}

// Remove deletes a body. Removing an unknown ID is a no-op.
func (w *World) Remove(id BodyID) {
	if _, ok := w.bodies.Get(id); !ok {
		return
	}
	w.bodies.Del(id)
	for i, oid := range w.order {
		if oid == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of bodies.
func (w *World) Len() int {
	return w.bodies.Len()
}

// Clear removes every body, forgets ongoing contacts, drops undrained
// contacts and resets the scroll offset. Gravity and bounds are kept.
func (w *World) Clear() {
	w.bodies.Clear()
	w.order = w.order[:0]
	w.touching.Clear()
	w.next.Clear()
	w.pending = nil
	w.scroll = 0
}

// Drain returns the contacts that began since the last call.
func (w *World) Drain() []Contact {
	out := w.pending
	w.pending = nil
	return out
}

// Step advances the simulation by dt seconds: gravity and velocity
// integration, edge-loop confinement, blocking against static bodies and
// begin-contact detection.
func (w *World) Step(dt float64) {
	if dt < 0 {
		dt = 0
	}
	for _, id := range w.order {
		b := w.Body(id)
		if b == nil || !b.Dynamic {
			continue
		}
		if b.GravityEnabled {
			b.Vel = b.Vel.Add(w.Gravity.Scale(dt))
		}
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		w.confine(b)
		if b.Collidable {
			w.block(b)
		}
	}
	w.detect()
}

// confine keeps a dynamic circle inside the edge loop.
func (w *World) confine(b *Body) {
	if !w.hasBounds || !b.CollisionMask.Any(CategoryBoundary) {
		return
	}
	r := b.Radius
	if minY := w.bounds.Y + r; b.Pos.Y < minY {
		b.Pos.Y = minY
		b.Vel.Y = math.Max(b.Vel.Y, 0)
	}
	if maxY := w.bounds.Top() - r; b.Pos.Y > maxY {
		b.Pos.Y = maxY
		b.Vel.Y = math.Min(b.Vel.Y, 0)
	}
	if minX := w.bounds.X + r; b.Pos.X < minX {
		b.Pos.X = minX
		b.Vel.X = math.Max(b.Vel.X, 0)
	}
	if maxX := w.bounds.Right() - r; b.Pos.X > maxX {
		b.Pos.X = maxX
		b.Vel.X = math.Min(b.Vel.X, 0)
	}
}

// block pushes a dynamic circle out of every static rectangle it mutually
// collides with and removes the velocity component pointing into it.
func (w *World) block(b *Body) {
	for _, id := range w.order {
		s := w.Body(id)
		if s == nil || s == b || s.Dynamic || !s.Collidable || s.Shape != ShapeRect {
			continue
		}
		if !Collides(b.Category, b.CollisionMask, s.Category, s.CollisionMask) {
			continue
		}
		pushOut(b, s.Bounds(w.scroll))
	}
}

func pushOut(b *Body, box core.Box) {
	c := b.Pos
	r := b.Radius
	cp := box.ClosestPoint(c)
	d := c.Sub(cp)
	dist2 := d.X*d.X + d.Y*d.Y
	if dist2 >= r*r {
		return
	}

	var n core.Vec2
	if dist2 > 0 {
		dist := math.Sqrt(dist2)
		n = d.Scale(1 / dist)
		b.Pos = cp.Add(n.Scale(r))
	} else {
		// Center inside the box: leave through the nearest side.
		left, right := c.X-box.X, box.Right()-c.X
		down, up := c.Y-box.Y, box.Top()-c.Y
		switch math.Min(math.Min(left, right), math.Min(down, up)) {
		case left:
			n = core.Vec2{X: -1}
			b.Pos.X = box.X - r
		case right:
			n = core.Vec2{X: 1}
			b.Pos.X = box.Right() + r
		case down:
			n = core.Vec2{Y: -1}
			b.Pos.Y = box.Y - r
		default:
			n = core.Vec2{Y: 1}
			b.Pos.Y = box.Top() + r
		}
	}

	if vn := b.Vel.X*n.X + b.Vel.Y*n.Y; vn < 0 {
		b.Vel = b.Vel.Sub(n.Scale(vn))
	}
}

// detect records a contact for every touching pair that was not touching
// on the previous step.
func (w *World) detect() {
	w.next.Clear()
	for i, ida := range w.order {
		a := w.Body(ida)
		if a == nil || !a.Collidable {
			continue
		}
		if a.Dynamic && a.ContactMask.Any(CategoryBoundary) && w.touchesEdge(a) {
			w.touch(a.ID, EdgeLoop, a.Category|CategoryBoundary)
		}
		for _, idb := range w.order[i+1:] {
			b := w.Body(idb)
			if b == nil || !b.Collidable || (!a.Dynamic && !b.Dynamic) {
				continue
			}
			if !Contacts(a.Category, a.ContactMask, b.Category, b.ContactMask) {
				continue
			}
			if overlaps(a, b, w.scroll) {
				w.touch(a.ID, b.ID, a.Category|b.Category)
			}
		}
	}
	w.touching, w.next = w.next, w.touching
}

func (w *World) touch(a, b BodyID, union Category) {
	key := uint64(a)<<32 | uint64(b)
	w.next.Put(key, struct{}{})
	if _, ok := w.touching.Get(key); !ok {
		w.pending = append(w.pending, Contact{A: a, B: b, Union: union})
	}
}

func (w *World) touchesEdge(b *Body) bool {
	if !w.hasBounds {
		return false
	}
	r := b.Radius + contactSlop
	return b.Pos.Y-r <= w.bounds.Y || b.Pos.Y+r >= w.bounds.Top() ||
		b.Pos.X-r <= w.bounds.X || b.Pos.X+r >= w.bounds.Right()
}

func overlaps(a, b *Body, scroll float64) bool {
	if a.Shape == ShapeRect && b.Shape == ShapeRect {
		return a.Bounds(scroll).Intersects(b.Bounds(scroll))
	}
	if a.Shape == ShapeRect {
		a, b = b, a
	}
	ca := a.screenPos(scroll)
	if b.Shape == ShapeRect {
		return b.Bounds(scroll).CircleIntersects(ca, a.Radius+contactSlop)
	}
	d := ca.Sub(b.screenPos(scroll))
	rr := a.Radius + b.Radius + contactSlop
	return d.X*d.X+d.Y*d.Y <= rr*rr
}
