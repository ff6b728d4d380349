package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/netscapy/netscapy/internal/tui/styles"
	"github.com/netscapy/netscapy/pkg/types"
)

// TargetModel is the view model for target host input.
type TargetModel struct {
	textInput textinput.Model
	tools     []string
	err       string
}

// NewTargetModel creates a new target input view.
func NewTargetModel() TargetModel {
	ti := textinput.New()
	ti.Placeholder = "e.g. example.com or 192.168.1.1"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50
	ti.PromptStyle = styles.CursorStyle
	ti.TextStyle = styles.SelectedStyle

	return TargetModel{textInput: ti}
}

// SetTools records which tools the scan will run.
func (m *TargetModel) SetTools(tools []string) {
	m.tools = tools
}

// Tools returns the selected tool names.
func (m TargetModel) Tools() []string {
	return m.tools
}

// Init returns the text input blink command.
func (m TargetModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input events.
func (m TargetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		if _, err := m.ValidatedTarget(); err != nil {
			m.err = err.Error()
			return m, nil
		}
		m.err = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.err = ""
	return m, cmd
}

// View renders the target input form.
func (m TargetModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Netscapy — Interactive Mode"))
	b.WriteString("\n\n")
	b.WriteString(styles.HeaderStyle.Render(fmt.Sprintf("Tools: %s", strings.Join(m.tools, ", "))))
	b.WriteString("\n")
	b.WriteString("Enter target host, IP, or URL:\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(m.err))
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("enter start scan • esc back"))

	return b.String()
}

// ValidatedTarget parses and returns the target, or an error if invalid.
func (m TargetModel) ValidatedTarget() (types.Target, error) {
	return types.ParseTarget(m.textInput.Value())
}
