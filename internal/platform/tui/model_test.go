package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jecht83/Flappy-Swift/internal/config"
	"github.com/jecht83/Flappy-Swift/internal/core"
	"github.com/jecht83/Flappy-Swift/internal/game"
)

type fakeSaver struct {
	games []string
	runs  []core.RunSummary
	err   error
}

func (f *fakeSaver) SaveRun(gameID string, run core.RunSummary) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.games = append(f.games, gameID)
	f.runs = append(f.runs, run)
	return int64(len(f.runs)), nil
}

var (
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	quitKey  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	pauseKey = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}
)

func newTestModel(saver RunSaver) Model {
	rc := core.DefaultConfig()
	rc.Seed = 5
	return NewModel(game.New(config.DefaultFlappyConfig()), saver, rc, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelStartsRunOnFlap(t *testing.T) {
	m := newTestModel(nil)
	if m.State().Phase != "starting" {
		t.Fatalf("initial phase = %q, expected starting", m.State().Phase)
	}

	m, _ = update(t, m, spaceKey)
	m, cmd := update(t, m, TickMsg{})

	if m.State().Phase != "playing" {
		t.Errorf("phase after flap = %q, expected playing", m.State().Phase)
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestModelMouseClickFlaps(t *testing.T) {
	m := newTestModel(nil)
	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.inputFrame.Has(core.ActionFlap) {
		t.Error("left click should queue a flap")
	}

	m.inputFrame.Clear()
	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.inputFrame.Has(core.ActionFlap) {
		t.Error("release should not flap")
	}
}

func TestModelPause(t *testing.T) {
	m := newTestModel(nil)
	m, _ = update(t, m, spaceKey)
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, pauseKey)
	m, _ = update(t, m, TickMsg{})

	if !m.State().Paused {
		t.Error("p should pause the game")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should show the pause box")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(nil)
	m, cmd := update(t, m, quitKey)

	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 25})

	if m.screen.Width() != 60 || m.screen.Height() != 24 {
		t.Errorf("screen = %dx%d, expected 60x24", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "flap") {
		t.Error("view should end with the help line")
	}
}

func TestModelJournalsFinishedRun(t *testing.T) {
	saver := &fakeSaver{}
	m := newTestModel(saver)

	m, _ = update(t, m, spaceKey)
	for i := 0; i < 1000 && len(saver.runs) == 0; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	if len(saver.runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(saver.runs))
	}
	if saver.games[0] != "flappy" {
		t.Errorf("saved under %q, expected flappy", saver.games[0])
	}
	run := saver.runs[0]
	if run.Seed != 5 || len(run.Taps) != 1 || run.Taps[0] != 0 {
		t.Errorf("saved run = %+v", run)
	}
	if !m.State().Ended {
		t.Error("game should be ended after the journaled tick")
	}
}

func TestModelSaveFailureKeepsPlaying(t *testing.T) {
	saver := &fakeSaver{err: errors.New("disk full")}
	m := newTestModel(saver)

	m, _ = update(t, m, spaceKey)
	for i := 0; i < 1000 && !m.State().Ended; i++ {
		m, _ = update(t, m, TickMsg{})
	}
	if !m.State().Ended {
		t.Fatal("setup: run did not end")
	}
	if m.runs != 1 {
		t.Errorf("runs = %d, expected 1", m.runs)
	}
	_, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("ticking should continue after a failed save")
	}
}

func TestKeyMap(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{spaceKey, core.ActionFlap},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionFlap},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionFlap},
		{pauseKey, core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, core.ActionRestart},
		{quitKey, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone},
	}
	for _, tt := range tests {
		if got := keys.MapKey(tt.msg); got != tt.want {
			t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}
