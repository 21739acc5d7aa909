package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFlappyConfig()) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultFlappyConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestDerivedValues(t *testing.T) {
	cfg := DefaultFlappyConfig()

	if got := cfg.PlayableBand(); got != 496 {
		t.Errorf("PlayableBand() = %v, expected 496", got)
	}
	if got := cfg.MaxLower(); got != 360 {
		t.Errorf("MaxLower() on a tall screen = %v, expected 360", got)
	}
	if got := cfg.PlayerRadius(); got != 13.6 {
		t.Errorf("PlayerRadius() = %v, expected 13.6", got)
	}

	cfg.World.Height = 480
	if got := cfg.MaxLower(); got != 280 {
		t.Errorf("MaxLower() at the threshold = %v, expected 280", got)
	}
}

func TestLoadFlappyCustomPathKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "world:\n  height: 480\ntiming:\n  restart_delay: 1500ms\n")

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy error: %v", err)
	}
	if cfg.World.Height != 480 {
		t.Errorf("World.Height = %v, expected 480", cfg.World.Height)
	}
	if cfg.Timing.RestartDelay != 1500*time.Millisecond {
		t.Errorf("Timing.RestartDelay = %v, expected 1.5s", cfg.Timing.RestartDelay)
	}
	if cfg.World.Width != 320 || cfg.Obstacles.PipeWidth != 62 {
		t.Errorf("unset keys should keep defaults, got width %v pipe %v", cfg.World.Width, cfg.Obstacles.PipeWidth)
	}
}

func TestLoadFlappyMissingFile(t *testing.T) {
	_, err := LoadFlappy(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
	if !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("error = %q, expected a read failure", err)
	}
}

func TestLoadFlappyMalformed(t *testing.T) {
	path := writeConfig(t, "world: [1, 2\n")
	if _, err := LoadFlappy(path); err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("LoadFlappy(malformed) error = %v, expected a parse failure", err)
	}
}

func TestLoadFlappyRejectsInvalid(t *testing.T) {
	path := writeConfig(t, "obstacles:\n  gap_height: 200\n")
	_, err := LoadFlappy(path)
	if err == nil {
		t.Fatal("expected a validation error when the gap leaves no room for the upper pipe")
	}
	if !strings.HasPrefix(err.Error(), "config: ") {
		t.Errorf("error = %q, expected config prefix", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
		want   string
	}{
		{"zero width", func(c *FlappyConfig) { c.World.Width = 0 }, "world.width"},
		{"floor above frame", func(c *FlappyConfig) { c.World.FloorOffset = 600 }, "world.floor_offset"},
		{"one tile", func(c *FlappyConfig) { c.World.TileCount = 1 }, "world.tile_count"},
		{"empty range", func(c *FlappyConfig) { c.Obstacles.MinLower = 400 }, "must exceed min_lower"},
		{"no spawn interval", func(c *FlappyConfig) { c.Timing.SpawnInterval = 0 }, "timing.spawn_interval"},
		{"no flap frame", func(c *FlappyConfig) { c.Timing.FlapFrame = 0 }, "timing.flap_frame"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tt.want)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	data, err := Encode(DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if !strings.Contains(string(data), "spawn_interval: 2s") {
		t.Errorf("encoded config should render durations as strings:\n%s", data)
	}
}
