// Package config provides YAML-based configuration loading for the flappy
// engine: world geometry, physics tuning, obstacle layout and timing.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all tunables of a flappy session.
type FlappyConfig struct {
	World     FlappyWorld     `yaml:"world"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Player    FlappyPlayer    `yaml:"player"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Timing    FlappyTiming    `yaml:"timing"`
	Rules     FlappyRules     `yaml:"rules"`
}

// FlappyWorld defines the visible frame and the scrolling background.
// All lengths are world units in a y-up frame.
type FlappyWorld struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	FloorOffset float64 `yaml:"floor_offset"` // Playable band starts here
	ScrollSpeed float64 `yaml:"scroll_speed"` // Units per second
	TileWidth   float64 `yaml:"tile_width"`
	TileCount   int     `yaml:"tile_count"`
}

// FlappyPhysics defines gravity, the flap impulse and the tilt response.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`        // Vertical acceleration, negative pulls down
	FlapImpulse  float64 `yaml:"flap_impulse"`   // Upward impulse per primary input
	MaxRiseSpeed float64 `yaml:"max_rise_speed"` // Upper clamp on vertical velocity
	FallingTilt  float64 `yaml:"falling_tilt"`   // Rotation per unit of downward velocity
	RisingTilt   float64 `yaml:"rising_tilt"`    // Rotation per unit of upward velocity
}

// FlappyPlayer defines the player sprite and its collision circle.
type FlappyPlayer struct {
	X             float64 `yaml:"x"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	RadiusDivisor float64 `yaml:"radius_divisor"` // Circle radius is Width / RadiusDivisor
	Mass          float64 `yaml:"mass"`
}

// FlappyObstacles defines the pipe triple layout.
type FlappyObstacles struct {
	SpawnX              float64 `yaml:"spawn_x"` // Screen-space center of every new triple
	PipeWidth           float64 `yaml:"pipe_width"`
	GapWidth            float64 `yaml:"gap_width"`
	GapHeight           float64 `yaml:"gap_height"`
	MinLower            float64 `yaml:"min_lower"`
	MaxLowerTall        float64 `yaml:"max_lower_tall"`
	MaxLowerShort       float64 `yaml:"max_lower_short"`
	TallScreenThreshold float64 `yaml:"tall_screen_threshold"` // World heights above this use MaxLowerTall
	HeightSteps         float64 `yaml:"height_steps"`          // Lower heights snap to 1/HeightSteps
}

// FlappyTiming defines the deferred task delays and the wing-flap period.
type FlappyTiming struct {
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	RestartDelay  time.Duration `yaml:"restart_delay"`
	FlapFrame     time.Duration `yaml:"flap_frame"`
}

// FlappyRules defines contact rule parameters.
type FlappyRules struct {
	BoundaryFatalBelow float64 `yaml:"boundary_fatal_below"`
}

// PlayableBand returns the height between the floor offset and the top of
// the frame.
func (c FlappyConfig) PlayableBand() float64 {
	return c.World.Height - c.World.FloorOffset
}

// MaxLower returns the exclusive upper bound for lower pipe heights,
// chosen by the tall-screen heuristic.
func (c FlappyConfig) MaxLower() float64 {
	if c.World.Height > c.Obstacles.TallScreenThreshold {
		return c.Obstacles.MaxLowerTall
	}
	return c.Obstacles.MaxLowerShort
}

// PlayerRadius returns the radius of the player's collision circle.
func (c FlappyConfig) PlayerRadius() float64 {
	return c.Player.Width / c.Player.RadiusDivisor
}

// Validate reports every inconsistent setting.
func (c FlappyConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("world.scroll_speed", c.World.ScrollSpeed)
	positive("world.tile_width", c.World.TileWidth)
	positive("physics.max_rise_speed", c.Physics.MaxRiseSpeed)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.radius_divisor", c.Player.RadiusDivisor)
	positive("player.mass", c.Player.Mass)
	positive("obstacles.pipe_width", c.Obstacles.PipeWidth)
	positive("obstacles.gap_width", c.Obstacles.GapWidth)
	positive("obstacles.gap_height", c.Obstacles.GapHeight)
	positive("obstacles.height_steps", c.Obstacles.HeightSteps)

	if c.World.FloorOffset < 0 || c.World.FloorOffset >= c.World.Height {
		errs = append(errs, fmt.Errorf("world.floor_offset must be in [0, height), got %v", c.World.FloorOffset))
	}
	if c.World.TileCount < 2 {
		errs = append(errs, fmt.Errorf("world.tile_count must be at least 2, got %d", c.World.TileCount))
	}
	if c.Obstacles.MinLower < 0 {
		errs = append(errs, fmt.Errorf("obstacles.min_lower must not be negative, got %v", c.Obstacles.MinLower))
	}
	if max := c.MaxLower(); max <= c.Obstacles.MinLower {
		errs = append(errs, fmt.Errorf("obstacles: max lower height %v must exceed min_lower %v", max, c.Obstacles.MinLower))
	} else if max+c.Obstacles.GapHeight > c.PlayableBand() {
		errs = append(errs, fmt.Errorf("obstacles: max lower height %v plus gap %v exceeds playable band %v",
			max, c.Obstacles.GapHeight, c.PlayableBand()))
	}
	if c.Timing.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing.spawn_interval must be positive, got %v", c.Timing.SpawnInterval))
	}
	if c.Timing.RestartDelay < 0 {
		errs = append(errs, fmt.Errorf("timing.restart_delay must not be negative, got %v", c.Timing.RestartDelay))
	}
	if c.Timing.FlapFrame <= 0 {
		errs = append(errs, fmt.Errorf("timing.flap_frame must be positive, got %v", c.Timing.FlapFrame))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
