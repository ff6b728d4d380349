package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/netscapy/netscapy/internal/engine"
	"github.com/netscapy/netscapy/internal/scanner"
	"github.com/netscapy/netscapy/internal/scanner/nikto"
	"github.com/netscapy/netscapy/internal/scanner/nmap"
)

func newTestModel() Model {
	reg := scanner.NewRegistry()
	reg.Register(nmap.New())
	reg.Register(nikto.New())
	return NewModel(engine.New(reg), Options{
		OutputDir: "output/reports",
		Workers:   2,
		Timeout:   time.Minute,
	})
}

func TestNewModelStartsAtMenuState(t *testing.T) {
	m := newTestModel()
	assert.Equal(t, stateMenu, m.state)
}

func TestNewModelPopulatesMenuItems(t *testing.T) {
	m := newTestModel()
	assert.Equal(t, 2, len(m.menu.Items()))
}

func TestModelViewRendersMenuByDefault(t *testing.T) {
	m := newTestModel()
	view := m.View()
	assert.Contains(t, view, "Netscapy")
	assert.Contains(t, view, "Select tools to run")
}

func TestModelCtrlCQuits(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
}

func TestModelEnterOnMenuMovesToTarget(t *testing.T) {
	m := newTestModel()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model := updated.(Model)
	assert.Equal(t, stateTarget, model.state)
	assert.ElementsMatch(t, []string{"nmap", "nikto"}, model.target.Tools())
}

func TestModelEscFromTargetReturnsToMenu(t *testing.T) {
	m := newTestModel()
	m.state = stateTarget

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	model := updated.(Model)
	assert.Equal(t, stateMenu, model.state)
}

func TestModelEscFromResultsReturnsToMenu(t *testing.T) {
	m := newTestModel()
	m.state = stateResults

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	model := updated.(Model)
	assert.Equal(t, stateMenu, model.state)
}

func TestModelWindowSizeMsg(t *testing.T) {
	m := newTestModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model := updated.(Model)
	assert.Equal(t, 120, model.width)
	assert.Equal(t, 40, model.height)
}
