package game

import (
	"math"
	"time"

	"github.com/jecht83/Flappy-Swift/internal/clock"
	"github.com/jecht83/Flappy-Swift/internal/config"
	"github.com/jecht83/Flappy-Swift/internal/core"
	"github.com/jecht83/Flappy-Swift/internal/physics"
)

// FallenRotation is the player's rotation once the run has ended.
const FallenRotation = math.Pi

// Player is the bird: an arena entity backed by a dynamic circle body.
type Player struct {
	entity   EntityID
	body     *physics.Body
	size     core.Vec2
	rotation float64
	frame    int
	flap     *clock.Task

	maxRise     float64
	fallingTilt float64
	risingTilt  float64
	impulse     float64
}

// newPlayer spawns a player at rest in the middle of the frame with gravity
// off. Its wing-flap animation starts at now.
func newPlayer(cfg config.FlappyConfig, arena *Arena, phys *physics.World, rules RuleTable, sched *clock.Scheduler, now time.Duration) *Player {
	size := core.Vec2{X: cfg.Player.Width, Y: cfg.Player.Height}
	center := core.Vec2{X: cfg.Player.X, Y: cfg.World.Height / 2}

	e := arena.Spawn(KindPlayer, core.NewBox(center.X-size.X/2, center.Y-size.Y/2, size.X, size.Y), TextureBird1)
	body := phys.Add(physics.Body{
		Category:      physics.CategoryPlayer,
		ContactMask:   rules.ContactMask(physics.CategoryPlayer),
		CollisionMask: rules.CollisionMask(physics.CategoryPlayer),
		Shape:         physics.ShapeCircle,
		Radius:        cfg.PlayerRadius(),
		Pos:           center,
		Mass:          cfg.Player.Mass,
		Dynamic:       true,
		Collidable:    true,
	})
	e.Body = body.ID

	p := &Player{
		entity:      e.ID,
		body:        body,
		size:        size,
		maxRise:     cfg.Physics.MaxRiseSpeed,
		fallingTilt: cfg.Physics.FallingTilt,
		risingTilt:  cfg.Physics.RisingTilt,
		impulse:     cfg.Physics.FlapImpulse,
	}
	p.flap = sched.Every(now, cfg.Timing.FlapFrame, func() { p.frame ^= 1 })
	return p
}

// Flap applies one upward impulse.
func (p *Player) Flap() {
	p.body.ApplyImpulse(core.Vec2{Y: p.impulse})
}

// EnableGravity lets the body fall.
func (p *Player) EnableGravity() {
	p.body.GravityEnabled = true
}

// Integrate clamps the rising speed and derives the rotation from it.
// Falling tips the nose down faster than rising tips it up.
func (p *Player) Integrate() {
	if p.body.Vel.Y > p.maxRise {
		p.body.Vel.Y = p.maxRise
	}
	vy := p.body.Vel.Y
	tilt := p.risingTilt
	if vy < 0 {
		tilt = p.fallingTilt
	}
	p.rotation = core.ClampF(vy*tilt, -1, 0)
}

// Fall switches the player to its crashed pose: no more contacts or pipe
// blocking, wing-flap stopped and rotation fixed. It stays confined by the
// world bounds.
func (p *Player) Fall() {
	p.body.Collidable = false
	p.body.CollisionMask = physics.CategoryBoundary
	p.rotation = FallenRotation
	p.stopAnimation()
}

func (p *Player) stopAnimation() {
	p.flap.Cancel()
	p.flap = nil
}

// remove drops the player's entity and body.
func (p *Player) remove(arena *Arena, phys *physics.World) {
	p.stopAnimation()
	phys.Remove(p.body.ID)
	arena.Despawn(p.entity)
}

// ID returns the player's entity ID.
func (p *Player) ID() EntityID { return p.entity }

// Position returns the center of the player.
func (p *Player) Position() core.Vec2 { return p.body.Pos }

// Velocity returns the body velocity.
func (p *Player) Velocity() core.Vec2 { return p.body.Vel }

// Rotation returns the visual rotation in radians.
func (p *Player) Rotation() float64 { return p.rotation }

// Radius returns the collision circle radius.
func (p *Player) Radius() float64 { return p.body.Radius }

// GravityEnabled reports whether gravity acts on the player.
func (p *Player) GravityEnabled() bool { return p.body.GravityEnabled }

// Collidable reports whether the player still takes part in contacts.
func (p *Player) Collidable() bool { return p.body.Collidable }

// Animating reports whether the wing-flap animation runs.
func (p *Player) Animating() bool { return p.flap.Pending() }

// Texture returns the current wing-flap frame.
func (p *Player) Texture() string {
	if p.frame == 1 {
		return TextureBird2
	}
	return TextureBird1
}

// Box returns the sprite rectangle centered on the body.
func (p *Player) Box() core.Box {
	c := p.body.Pos
	return core.NewBox(c.X-p.size.X/2, c.Y-p.size.Y/2, p.size.X, p.size.Y)
}
