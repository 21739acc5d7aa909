package game

import (
	"testing"
	"time"
)

func TestAutopilotTarget(t *testing.T) {
	h := newHarness(t, 1)
	a := DefaultAutopilot()

	if !a.ShouldTap(h.s) {
		t.Error("autopilot should start the run")
	}
	if got := a.Target(h.s); got != 320 {
		t.Errorf("Target() without obstacles = %v, expected 320", got)
	}

	h.s.PrimaryInput()
	h.s.world.AddObstacle(h.s.gen.Layout(200, 300))
	if got := a.Target(h.s); got != 302 {
		t.Errorf("Target() = %v, expected gap bottom + 30 = 302", got)
	}
}

func TestAutopilotStopsWhenEnded(t *testing.T) {
	h := newHarness(t, 1)
	h.s.PrimaryInput()
	h.advance(3 * time.Second)
	if h.s.State() != StateEnded {
		t.Fatal("setup: run should end on the floor")
	}
	if DefaultAutopilot().ShouldTap(h.s) {
		t.Error("autopilot must not tap while ended")
	}
}
