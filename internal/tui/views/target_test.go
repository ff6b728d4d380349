package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetModelValidation(t *testing.T) {
	m := NewTargetModel()

	_, err := m.ValidatedTarget()
	assert.Error(t, err)

	m.textInput.SetValue("  example.com  ")
	target, err := m.ValidatedTarget()
	require.NoError(t, err)
	assert.Equal(t, "example.com", target.String())
}

func TestTargetModelEnterWithEmptyInputShowsError(t *testing.T) {
	m := NewTargetModel()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(TargetModel)
	assert.Contains(t, m.View(), "empty")
}

func TestTargetModelViewShowsTools(t *testing.T) {
	m := NewTargetModel()
	m.SetTools([]string{"nmap", "whatweb"})

	view := m.View()
	assert.Contains(t, view, "nmap, whatweb")
	assert.Contains(t, view, "Enter target")
}
