// Package core provides fundamental types and utilities shared by the game
// engine and the presentation layer. It has no external dependencies (and no
// Bubble Tea) so the simulation stays pure and testable.
package core

import (
	"math"
	"math/rand"
)

// Vec2 is a point or displacement in world units. The world uses a y-up
// coordinate system: y grows towards the top of the frame.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Box is an axis-aligned rectangle in world units, anchored at its
// bottom-left corner.
type Box struct {
	X, Y float64 // Bottom-left corner
	W, H float64
}

// NewBox creates a box from its bottom-left corner and size.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Box) Center() Vec2 {
	return Vec2{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Translate returns the box moved by d.
func (b Box) Translate(d Vec2) Box {
	b.X += d.X
	b.Y += d.Y
	return b
}

// Intersects reports whether two boxes overlap with positive area.
func (b Box) Intersects(o Box) bool {
	if b.X >= o.Right() || o.X >= b.Right() {
		return false
	}
	if b.Y >= o.Top() || o.Y >= b.Top() {
		return false
	}
	return true
}

// ClosestPoint returns the point of the box nearest to p.
func (b Box) ClosestPoint(p Vec2) Vec2 {
	return Vec2{
		X: ClampF(p.X, b.X, b.Right()),
		Y: ClampF(p.Y, b.Y, b.Top()),
	}
}

// CircleIntersects reports whether a circle touches or overlaps the box.
func (b Box) CircleIntersects(center Vec2, radius float64) bool {
	d := center.Sub(b.ClosestPoint(center))
	return d.X*d.X+d.Y*d.Y <= radius*radius
}

// Rect represents an axis-aligned rectangle in screen cells (y-down).
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// RandRange returns a uniform sample in [min, max).
func RandRange(rng *rand.Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// Quantize snaps v down to a multiple of 1/steps, so a sample from a
// half-open range stays inside it. With a power-of-two step count, sums of
// quantized values stay exact.
func Quantize(v float64, steps float64) float64 {
	return math.Floor(v*steps) / steps
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
