package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the hardcoded configuration. It mirrors the
// embedded defaults/flappy.yaml and is used when that file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: FlappyWorld{
			Width:       320,
			Height:      568,
			FloorOffset: 72,
			ScrollSpeed: 100,
			TileWidth:   640,
			TileCount:   3,
		},
		Physics: FlappyPhysics{
			Gravity:      -750,
			FlapImpulse:  1000,
			MaxRiseSpeed: 280,
			FallingTilt:  0.003,
			RisingTilt:   0.001,
		},
		Player: FlappyPlayer{
			X:             100,
			Width:         34,
			Height:        24,
			RadiusDivisor: 2.5,
			Mass:          1,
		},
		Obstacles: FlappyObstacles{
			SpawnX:              382,
			PipeWidth:           62,
			GapWidth:            10,
			GapHeight:           100,
			MinLower:            40,
			MaxLowerTall:        360,
			MaxLowerShort:       280,
			TallScreenThreshold: 480,
			HeightSteps:         64,
		},
		Timing: FlappyTiming{
			SpawnInterval: 2 * time.Second,
			RestartDelay:  4 * time.Second,
			FlapFrame:     100 * time.Millisecond,
		},
		Rules: FlappyRules{
			BoundaryFatalBelow: 150,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
