package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jecht83/Flappy-Swift/internal/core"
)

// KeyMap defines the key bindings for the play screen. It implements
// help.KeyMap so the bindings double as the help line.
type KeyMap struct {
	Flap    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default play bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/click", "flap"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns every binding.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// MapKey translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Flap):
		return core.ActionFlap
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// MapMouse translates a mouse message to a game action. A left-button
// press is the primary input.
func (k KeyMap) MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.ActionFlap
	}
	return core.ActionNone
}

// MapToFrame records the action for a key or mouse message in frame.
// Returns true if the message was a quit request.
func (k KeyMap) MapToFrame(msg tea.Msg, frame *core.InputFrame) bool {
	var action core.Action
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action = k.MapKey(msg)
	case tea.MouseMsg:
		action = k.MapMouse(msg)
	}
	if action == core.ActionQuit {
		return true
	}
	if action != core.ActionNone {
		frame.Set(action)
	}
	return false
}
