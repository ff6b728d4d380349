package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/netscapy/netscapy/internal/engine"
)

// Run starts the interactive TUI on the given engine.
func Run(eng *engine.Engine, opts Options) error {
	m := NewModel(eng, opts)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
