package game

import (
	"strings"
	"testing"

	"github.com/jecht83/Flappy-Swift/internal/core"
)

func TestProjection(t *testing.T) {
	p := NewProjection(core.NewBox(0, 0, 320, 568), 40, 20)

	if p.Col(0) != 0 || p.Col(319.9) != 39 {
		t.Errorf("Col edges = %d, %d", p.Col(0), p.Col(319.9))
	}
	if p.Row(0) != 19 || p.Row(567.9) != 0 {
		t.Errorf("Row edges = %d, %d", p.Row(0), p.Row(567.9))
	}
	if r := p.Rect(core.NewBox(0, 0, 320, 568)); r != core.NewRect(0, 0, 40, 20) {
		t.Errorf("full frame = %+v", r)
	}
	if r := p.Rect(core.NewBox(0, 0, 320, 72)); r.Y != 17 || r.Bottom() != 20 {
		t.Errorf("floor band = %+v, expected rows 17..19", r)
	}
	if x := p.WorldX(0); x != 4 {
		t.Errorf("WorldX(0) = %v, expected 4", x)
	}
}

func TestDrawStartingFrame(t *testing.T) {
	h := newHarness(t, 1)
	screen := core.NewScreen(40, 20)

	Draw(screen, h.s.Snapshot())

	out := screen.String()
	if !strings.Contains(out, "TAP TO START") {
		t.Error("starting frame should show the prompt")
	}
	if got := screen.Get(12, 9); got != BirdChar {
		t.Errorf("bird cell = %q, expected %q", got, BirdChar)
	}
	if !strings.Contains(screen.Row(17), string(GroundChar)) {
		t.Errorf("row 17 = %q, expected the ground line", screen.Row(17))
	}
	if !strings.Contains(screen.Row(3), "0") {
		t.Errorf("row 3 = %q, expected the score", screen.Row(3))
	}
}

func TestDrawEndedFrame(t *testing.T) {
	h := newHarness(t, 1)
	h.s.PrimaryInput()
	for i := 0; i < 600 && h.s.State() != StateEnded; i++ {
		h.tick()
	}
	if h.s.State() != StateEnded {
		t.Fatal("setup: run did not end")
	}
	screen := core.NewScreen(40, 20)

	Draw(screen, h.s.Snapshot())

	out := screen.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("ended frame should show the game over box")
	}
	if strings.Contains(out, "TAP TO START") {
		t.Error("ended frame should not show the prompt")
	}
	if got := screen.Get(12, 16); got != BirdFallen {
		t.Errorf("bird cell = %q, expected the fallen bird", got)
	}
}

func TestDrawEmptyScreen(t *testing.T) {
	h := newHarness(t, 1)
	screen := core.NewScreen(0, 0)
	Draw(screen, h.s.Snapshot())
}
