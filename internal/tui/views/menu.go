package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/netscapy/netscapy/internal/tui/styles"
)

// ToolItem represents one tool in the selection checklist.
type ToolItem struct {
	Name        string
	Description string
	Checked     bool
}

// MenuModel is the view model for the tool selection checklist.
type MenuModel struct {
	items  []ToolItem
	cursor int
}

// NewMenuModel creates a checklist with the given tool items. All tools
// start checked, mirroring a full scan.
func NewMenuModel(items []ToolItem) MenuModel {
	for i := range items {
		items[i].Checked = true
	}
	return MenuModel{items: items}
}

// Init returns nil (no initial command).
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation and toggling.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case " ", "x":
			if len(m.items) > 0 {
				m.items[m.cursor].Checked = !m.items[m.cursor].Checked
			}
		case "a":
			all := !m.allChecked()
			for i := range m.items {
				m.items[i].Checked = all
			}
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the tool checklist.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Netscapy — Interactive Mode"))
	b.WriteString("\n\n")
	b.WriteString(styles.HeaderStyle.Render("Select tools to run:"))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := "  "
		nameStyle := styles.HelpStyle
		if i == m.cursor {
			cursor = styles.CursorStyle.Render("> ")
			nameStyle = styles.SelectedStyle
		}

		check := "[ ]"
		if item.Checked {
			check = styles.SuccessStyle.Render("[x]")
		}

		b.WriteString(fmt.Sprintf("%s%s %s  %s\n",
			cursor,
			check,
			nameStyle.Render(item.Name),
			styles.HelpStyle.Render(item.Description),
		))
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("↑/↓ navigate • space toggle • a all • enter continue • q quit"))

	return b.String()
}

// Selected returns the names of all checked tools.
func (m MenuModel) Selected() []string {
	var names []string
	for _, item := range m.items {
		if item.Checked {
			names = append(names, item.Name)
		}
	}
	return names
}

// Cursor returns the current cursor position.
func (m MenuModel) Cursor() int {
	return m.cursor
}

// Items returns the checklist items.
func (m MenuModel) Items() []ToolItem {
	return m.items
}

func (m MenuModel) allChecked() bool {
	for _, item := range m.items {
		if !item.Checked {
			return false
		}
	}
	return len(m.items) > 0
}
