package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/netscapy/netscapy/internal/engine"
	"github.com/netscapy/netscapy/internal/tui/views"
)

// appState represents which view is currently active.
type appState int

const (
	stateMenu    appState = iota // Tool selection checklist
	stateTarget                  // Target host input
	stateScan                    // Scan in progress
	stateResults                 // Results display
)

// Options carries the scan parameters the TUI runs every scan with.
type Options struct {
	OutputDir string
	Workers   int
	Timeout   time.Duration
}

// Model is the root Bubble Tea model that manages view transitions.
type Model struct {
	state  appState
	engine *engine.Engine
	opts   Options
	width  int
	height int

	// Sub-models for each view.
	menu    views.MenuModel
	target  views.TargetModel
	scan    views.ScanModel
	results views.ResultsModel
}

// NewModel creates a root model backed by the given engine.
func NewModel(eng *engine.Engine, opts Options) Model {
	tools := eng.Registry().All()
	items := make([]views.ToolItem, len(tools))
	for i, t := range tools {
		items[i] = views.ToolItem{
			Name:        t.Name(),
			Description: t.Description(),
		}
	}

	return Model{
		state:  stateMenu,
		engine: eng,
		opts:   opts,
		menu:   views.NewMenuModel(items),
		target: views.NewTargetModel(),
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return m.target.Init()
}

// Update handles messages and manages state transitions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if m.state == stateScan {
				m.scan.Cancel()
			}
			return m, tea.Quit
		case "esc":
			return m.handleBack()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	switch m.state {
	case stateMenu:
		return m.updateMenu(msg)
	case stateTarget:
		return m.updateTarget(msg)
	case stateScan:
		return m.updateScan(msg)
	case stateResults:
		return m.updateResults(msg)
	}

	return m, nil
}

// View renders the current view.
func (m Model) View() string {
	switch m.state {
	case stateMenu:
		return m.menu.View()
	case stateTarget:
		return m.target.View()
	case stateScan:
		return m.scan.View()
	case stateResults:
		return m.results.View()
	}
	return ""
}

func (m Model) handleBack() (tea.Model, tea.Cmd) {
	switch m.state {
	case stateTarget:
		m.state = stateMenu
		return m, nil
	case stateScan:
		// Cancel kills outstanding tools; finished results are already on
		// disk. The engine still returns, which lands us on the results view.
		m.scan.Cancel()
		return m, nil
	case stateResults:
		m.state = stateMenu
		return m, nil
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		selected := m.menu.Selected()
		if len(selected) > 0 {
			m.target = views.NewTargetModel()
			m.target.SetTools(selected)
			m.state = stateTarget
			return m, m.target.Init()
		}
	}

	updated, cmd := m.menu.Update(msg)
	m.menu = updated.(views.MenuModel)
	return m, cmd
}

func (m Model) updateTarget(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		target, err := m.target.ValidatedTarget()
		if err == nil {
			m.scan = views.NewScanModel(views.ScanConfig{
				Engine:    m.engine,
				Target:    target,
				Tools:     m.target.Tools(),
				OutputDir: m.opts.OutputDir,
				Workers:   m.opts.Workers,
				Timeout:   m.opts.Timeout,
			})
			m.state = stateScan
			return m, m.scan.Init()
		}
	}

	updated, cmd := m.target.Update(msg)
	m.target = updated.(views.TargetModel)
	return m, cmd
}

func (m Model) updateScan(msg tea.Msg) (tea.Model, tea.Cmd) {
	if doneMsg, ok := msg.(views.ScanCompleteMsg); ok {
		m.results = views.NewResultsModel(doneMsg.Report, doneMsg.Err)
		m.state = stateResults
		return m, nil
	}

	updated, cmd := m.scan.Update(msg)
	m.scan = updated.(views.ScanModel)
	return m, cmd
}

func (m Model) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.results.Update(msg)
	m.results = updated.(views.ResultsModel)
	return m, cmd
}
