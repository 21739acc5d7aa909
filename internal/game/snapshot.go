package game

import (
	"time"

	"github.com/jecht83/Flappy-Swift/internal/core"
)

// Sprite is the transform of one presented entity in screen space.
type Sprite struct {
	ID       EntityID
	Kind     Kind
	Box      core.Box
	Rotation float64
	Texture  string
}

// Snapshot is a read-only view of a session for the presentation layer.
type Snapshot struct {
	Now           time.Duration
	State         State
	Score         int
	ScoreText     string
	PromptVisible bool

	Frame       core.Box // Visible frame, origin at the bottom-left
	FloorOffset float64
	Origin      float64 // Screen x of the scrolling world origin

	Player    Sprite
	Tiles     []Sprite   // Left to right
	Obstacles [][3]Sprite // Lower pipe, gap sensor, upper pipe per triple
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Now:           s.now,
		State:         s.state,
		Score:         s.score.Value(),
		ScoreText:     s.score.Text(),
		PromptVisible: s.prompt,
		Frame:         core.NewBox(0, 0, s.cfg.World.Width, s.cfg.World.Height),
		FloorOffset:   s.cfg.World.FloorOffset,
		Origin:        s.world.Origin(),
		Player: Sprite{
			ID:       s.player.ID(),
			Kind:     KindPlayer,
			Box:      s.player.Box(),
			Rotation: s.player.Rotation(),
			Texture:  s.player.Texture(),
		},
	}

	for _, id := range s.world.Tiles() {
		snap.Tiles = append(snap.Tiles, s.sprite(id))
	}
	for _, o := range s.world.Obstacles() {
		snap.Obstacles = append(snap.Obstacles, [3]Sprite{s.sprite(o.Lower), s.sprite(o.Gap), s.sprite(o.Upper)})
	}
	return snap
}

func (s *Session) sprite(id EntityID) Sprite {
	e := s.arena.Get(id)
	return Sprite{
		ID:      e.ID,
		Kind:    e.Kind,
		Box:     s.world.ToScreen(e.Box),
		Texture: e.Texture,
	}
}
