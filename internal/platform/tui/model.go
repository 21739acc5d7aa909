package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jecht83/Flappy-Swift/internal/core"
	"github.com/jecht83/Flappy-Swift/internal/logging"
)

// Engine is a fixed-step game the model can drive.
type Engine interface {
	ID() string
	Reset(rc core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// RunSaver journals finished runs.
type RunSaver interface {
	SaveRun(gameID string, run core.RunSummary) (int64, error)
}

// Model is the Bubble Tea model for playing a game.
type Model struct {
	game       Engine
	screen     *core.Screen
	store      RunSaver
	log        *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	best       int
	runs       int
	quitting   bool
}

// NewModel creates a model for game and resets it. store may be nil.
func NewModel(game Engine, store RunSaver, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, fieldHeight(cfg.ScreenH)),
		store:      store,
		log:        logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// fieldHeight leaves one row for the help line.
func fieldHeight(h int) int {
	if h <= 1 {
		return 0
	}
	return h - 1
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		if m.keys.MapToFrame(msg, &m.inputFrame) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleResize resizes the screen buffer. The world projection scales to
// any size, so the session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, fieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the game once with the input collected since the last
// tick and journals a run when it ends.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if run := result.Finished; run != nil {
		m.runs++
		if run.Score > m.best {
			m.best = run.Score
		}
		m.log.Info("run ended", "score", run.Score, "ticks", run.Ticks, "seed", run.Seed)
		if m.store != nil {
			if _, err := m.store.SaveRun(m.game.ID(), *run); err != nil {
				// Best-effort save, game continues regardless
				m.log.Warn("cannot journal run", "err", err)
			}
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	footer := fmt.Sprintf("best %d  runs %d  %s", m.best, m.runs, m.help.View(m.keys))
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// State returns the game state after the latest tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Best returns the best score of this play session.
func (m Model) Best() int {
	return m.best
}

// Run starts the Bubble Tea program for game and blocks until the player
// quits. Returns the best score of the session.
func Run(game Engine, store RunSaver, cfg core.RuntimeConfig, logger *log.Logger) (int, error) {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.Best(), nil
	}
	return model.Best(), nil
}
