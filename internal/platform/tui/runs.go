package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jecht83/Flappy-Swift/internal/storage"
)

// maxRuns is the number of runs loaded per view.
const maxRuns = 100

// RunLister reads the run journal.
type RunLister interface {
	TopRuns(gameID string, limit int) ([]storage.RunRecord, error)
	RecentRuns(gameID string, limit int) ([]storage.RunRecord, error)
}

// RunsView selects which runs the board lists.
type RunsView int

const (
	ViewTop RunsView = iota
	ViewRecent
)

func (v RunsView) String() string {
	if v == ViewRecent {
		return "RECENT RUNS"
	}
	return "RUNS BY SCORE"
}

// RunsKeyMap defines the key bindings for the run board.
type RunsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Replay key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Replay, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Switch, k.Replay, k.Quit},
	}
}

// DefaultRunsKeyMap returns the default run board bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "sort"),
		),
		Replay: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "replay"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for browsing the run journal.
type RunsModel struct {
	gameID   string
	store    RunLister
	view     RunsView
	runs     []storage.RunRecord
	err      error
	table    table.Model
	help     help.Model
	keys     RunsKeyMap
	width    int
	height   int
	selected *storage.RunRecord
	quitting bool
}

// NewRunsModel creates a run board for gameID.
func NewRunsModel(store RunLister, gameID string, width, height int) RunsModel {
	m := RunsModel{
		gameID: gameID,
		store:  store,
		keys:   DefaultRunsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a table sized to the window.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Run", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Time", Width: 8},
		{Title: "Taps", Width: 6},
		{Title: "Date", Width: 14},
	}

	height := m.height - 8 // Title, help and borders
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns reloads the current view from the store.
func (m *RunsModel) loadRuns() {
	m.runs, m.err = nil, nil
	if m.store != nil {
		if m.view == ViewRecent {
			m.runs, m.err = m.store.RecentRuns(m.gameID, maxRuns)
		} else {
			m.runs, m.err = m.store.TopRuns(m.gameID, maxRuns)
		}
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		secs := 0.0
		if r.Run.TickRate > 0 {
			secs = float64(r.Run.Ticks) / float64(r.Run.TickRate)
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", r.ID),
			fmt.Sprintf("%d", r.Run.Score),
			fmt.Sprintf("%.1fs", secs),
			fmt.Sprintf("%d", len(r.Run.Taps)),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the run board.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run board.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			if m.view == ViewTop {
				m.view = ViewRecent
			} else {
				m.view = ViewTop
			}
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.Replay):
			if i := m.table.Cursor(); i >= 0 && i < len(m.runs) {
				r := m.runs[i]
				m.selected = &r
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadRuns()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run board.
func (m RunsModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText(m.view.String(), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m RunsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)
	if m.err != nil {
		return emptyStyle.Render(fmt.Sprintf("Cannot load runs:\n%v", m.err))
	}
	if len(m.runs) == 0 {
		return emptyStyle.Render("No runs recorded yet.\nPlay a round to start the journal!")
	}
	return m.table.View()
}

// Runs returns the runs of the current view.
func (m RunsModel) Runs() []storage.RunRecord {
	return m.runs
}

// Selected returns the run chosen for replay, or nil.
func (m RunsModel) Selected() *storage.RunRecord {
	return m.selected
}

// BrowseRuns runs the run board. Returns the run chosen for replay, or nil
// if the user quit.
func BrowseRuns(store RunLister, gameID string, width, height int) (*storage.RunRecord, error) {
	model := NewRunsModel(store, gameID, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	m, ok := final.(RunsModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
