package game

import (
	"sort"

	"github.com/jecht83/Flappy-Swift/internal/config"
	"github.com/jecht83/Flappy-Swift/internal/core"
	"github.com/jecht83/Flappy-Swift/internal/physics"
)

// Texture names handed to the presentation layer.
const (
	TextureBackground = "background"
	TexturePipe       = "pipe"
	TextureBird1      = "bird1"
	TextureBird2      = "bird2"
)

// Obstacle is one spawned triple: the entity IDs of its parts.
type Obstacle struct {
	Lower, Gap, Upper EntityID
}

// ScrollingWorld owns the background tiles and the obstacles. Its children
// live in world coordinates; only the origin moves. Obstacle bodies scroll
// with the physics world's offset, which is kept equal to the origin.
type ScrollingWorld struct {
	arena *Arena
	phys  *physics.World
	rules RuleTable

	speed     float64
	tileW     float64
	tileCount int
	height    float64

	origin    float64
	tiles     []EntityID
	obstacles []Obstacle
}

// NewScrollingWorld creates an empty world. Call BuildTiles to lay out the
// background.
func NewScrollingWorld(cfg config.FlappyConfig, arena *Arena, phys *physics.World, rules RuleTable) *ScrollingWorld {
	return &ScrollingWorld{
		arena:     arena,
		phys:      phys,
		rules:     rules,
		speed:     cfg.World.ScrollSpeed,
		tileW:     cfg.World.TileWidth,
		tileCount: cfg.World.TileCount,
		height:    cfg.World.Height,
	}
}

// BuildTiles lays the tile pool end to end from the world origin.
func (w *ScrollingWorld) BuildTiles() {
	for i := 0; i < w.tileCount; i++ {
		box := core.NewBox(float64(i)*w.tileW, 0, w.tileW, w.height)
		w.tiles = append(w.tiles, w.arena.Spawn(KindTile, box, TextureBackground).ID)
	}
}

// Advance scrolls the world left by speed*dt and recycles tiles that left
// the frame.
func (w *ScrollingWorld) Advance(dt float64) {
	w.origin -= w.speed * dt
	w.phys.SetScroll(w.origin)
	w.recycle()
}

// recycle moves every tile whose screen-space right edge is at or past the
// left edge of the frame to directly after the rightmost tile. Repeats until
// no tile is off-screen, so any advance keeps the pool contiguous.
func (w *ScrollingWorld) recycle() {
	if len(w.tiles) == 0 {
		return
	}
	for {
		moved := false
		for _, id := range w.tiles {
			t := w.arena.Get(id)
			if t.Box.Right()+w.origin > 0 {
				continue
			}
			t.Box.X = w.rightmost() + w.tileW
			moved = true
		}
		if !moved {
			return
		}
	}
}

func (w *ScrollingWorld) rightmost() float64 {
	max := w.arena.Get(w.tiles[0]).Box.X
	for _, id := range w.tiles[1:] {
		if x := w.arena.Get(id).Box.X; x > max {
			max = x
		}
	}
	return max
}

// AddObstacle spawns the three parts of a triple with their physics bodies.
func (w *ScrollingWorld) AddObstacle(t Triple) Obstacle {
	o := Obstacle{
		Lower: w.spawnPart(KindLowerPipe, t.Lower, physics.CategoryPipe, TexturePipe),
		Gap:   w.spawnPart(KindGap, t.Gap, physics.CategoryGap, ""),
		Upper: w.spawnPart(KindUpperPipe, t.Upper, physics.CategoryPipe, TexturePipe),
	}
	w.obstacles = append(w.obstacles, o)
	return o
}

func (w *ScrollingWorld) spawnPart(kind Kind, box core.Box, cat physics.Category, texture string) EntityID {
	e := w.arena.Spawn(kind, box, texture)
	body := w.phys.Add(physics.Body{
		Category:      cat,
		ContactMask:   w.rules.ContactMask(cat),
		CollisionMask: w.rules.CollisionMask(cat),
		Shape:         physics.ShapeRect,
		Size:          core.Vec2{X: box.W, Y: box.H},
		Pos:           core.Vec2{X: box.X, Y: box.Y},
		Scrolls:       true,
		Collidable:    true,
	})
	e.Body = body.ID
	return e.ID
}

// Clear drops every tile and obstacle and resets the origin.
func (w *ScrollingWorld) Clear() {
	for _, id := range w.tiles {
		w.arena.Despawn(id)
	}
	for _, o := range w.obstacles {
		for _, id := range []EntityID{o.Lower, o.Gap, o.Upper} {
			if e := w.arena.Get(id); e != nil {
				w.phys.Remove(e.Body)
			}
			w.arena.Despawn(id)
		}
	}
	w.tiles = nil
	w.obstacles = nil
	w.origin = 0
	w.phys.SetScroll(0)
}

// Origin returns the screen x of the world origin. It only decreases
// between clears.
func (w *ScrollingWorld) Origin() float64 {
	return w.origin
}

// ToScreen converts a world box to screen space.
func (w *ScrollingWorld) ToScreen(b core.Box) core.Box {
	return b.Translate(core.Vec2{X: w.origin})
}

// Tiles returns the tile IDs ordered left to right.
func (w *ScrollingWorld) Tiles() []EntityID {
	out := append([]EntityID(nil), w.tiles...)
	sort.Slice(out, func(i, j int) bool {
		return w.arena.Get(out[i]).Box.X < w.arena.Get(out[j]).Box.X
	})
	return out
}

// Obstacles returns the spawned obstacles in spawn order.
func (w *ScrollingWorld) Obstacles() []Obstacle {
	return append([]Obstacle(nil), w.obstacles...)
}
