package game

// Autopilot taps whenever the player sinks below a target height just above
// the bottom of the next gap. Used by headless simulation.
type Autopilot struct {
	// Margin is how far above the gap bottom the player is kept.
	Margin float64
	// MaxRetapSpeed suppresses taps while the player still rises faster.
	MaxRetapSpeed float64
}

// DefaultAutopilot returns an autopilot tuned for the default physics.
func DefaultAutopilot() Autopilot {
	return Autopilot{Margin: 30, MaxRetapSpeed: 100}
}

// ShouldTap decides whether to send primary input before the next tick.
func (a Autopilot) ShouldTap(s *Session) bool {
	switch s.State() {
	case StateStarting:
		return true
	case StateEnded:
		return false
	}
	p := s.Player()
	pos := p.Position()
	return pos.Y < a.Target(s) && p.Velocity().Y < a.MaxRetapSpeed
}

// Target returns the height the autopilot holds: above the bottom of the
// first gap the player has not fully passed, or the middle of the playable
// band when no obstacle is ahead.
func (a Autopilot) Target(s *Session) float64 {
	p := s.Player()
	left := p.Position().X - p.Radius()
	for _, o := range s.Obstacles() {
		lower := s.world.ToScreen(s.arena.Get(o.Lower).Box)
		if lower.Right() < left {
			continue
		}
		return s.arena.Get(o.Gap).Box.Y + a.Margin
	}
	cfg := s.Config()
	return cfg.World.FloorOffset + cfg.PlayableBand()/2
}
