package styles

import "github.com/charmbracelet/lipgloss"

// Status colors.
var (
	ColorSuccess = lipgloss.Color("#00CC00")
	ColorFailure = lipgloss.Color("#FF0000")
	ColorTimeout = lipgloss.Color("#FFCC00")
	ColorMuted   = lipgloss.Color("#666666")
	ColorAccent  = lipgloss.Color("#7D56F4")
)

// Styles used across TUI views.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(ColorAccent).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			MarginBottom(1)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorFailure).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)
)

// StatusStyle returns the style for rendering a job status.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "completed":
		return lipgloss.NewStyle().Foreground(ColorSuccess)
	case "timeout":
		return lipgloss.NewStyle().Foreground(ColorTimeout)
	case "failed":
		return lipgloss.NewStyle().Foreground(ColorFailure)
	default:
		return lipgloss.NewStyle().Foreground(ColorMuted)
	}
}
