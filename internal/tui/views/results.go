package views

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/netscapy/netscapy/internal/tui/styles"
	"github.com/netscapy/netscapy/pkg/types"
)

// exportFile is where the results export lands, in the current directory.
const exportFile = "netscapy-results.json"

// ResultsModel is the view model for displaying a finished scan.
type ResultsModel struct {
	report    *types.CombinedReport
	err       string
	cursor    int
	exported  bool
	exportErr string
}

// NewResultsModel creates a results view from a combined report. A non-nil
// err means the scan never produced a report at all.
func NewResultsModel(report *types.CombinedReport, err error) ResultsModel {
	m := ResultsModel{report: report}
	if err != nil {
		m.err = err.Error()
	}
	return m
}

// Init returns nil (no initial command).
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles key events for row selection and export.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.report != nil && m.cursor < len(m.report.Scans)-1 {
				m.cursor++
			}
		case "e":
			m.exportJSON()
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the per-tool outcome table.
func (m ResultsModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Netscapy — Scan Results"))
	b.WriteString("\n\n")

	if m.err != "" {
		b.WriteString(styles.ErrorStyle.Render(fmt.Sprintf("Scan failed: %s", m.err)))
		b.WriteString("\n\n")
		b.WriteString(styles.HelpStyle.Render("esc back • q quit"))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Target: %s\n", styles.SelectedStyle.Render(m.report.Target.String())))
	b.WriteString(m.summaryLine())
	b.WriteString("\n\n")

	header := fmt.Sprintf("  %-10s %-10s %s", "TOOL", "STATUS", "DETAIL")
	b.WriteString(styles.HeaderStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", 70))
	b.WriteString("\n")

	tools := m.report.Tools()
	for i, name := range tools {
		res := m.report.Scans[name]
		cursor := "  "
		if i == m.cursor {
			cursor = styles.CursorStyle.Render("> ")
		}

		status := styles.StatusStyle(string(res.Status)).Render(fmt.Sprintf("%-10s", res.Status))
		detail := res.ResultsFile
		if res.Error != "" {
			detail = res.Error
		}
		b.WriteString(fmt.Sprintf("%s%-10s %s %s\n", cursor, name, status, styles.HelpStyle.Render(detail)))
	}

	if m.cursor < len(tools) {
		b.WriteString("\n")
		b.WriteString(m.detailView(m.report.Scans[tools[m.cursor]]))
	}

	if m.report.ReportFile != "" {
		b.WriteString(fmt.Sprintf("\nCombined report: %s\n", m.report.ReportFile))
	}

	if m.exported {
		b.WriteString("\n")
		b.WriteString(styles.SuccessStyle.Render("Results exported to " + exportFile))
	}
	if m.exportErr != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(m.exportErr))
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("↑/↓ select • e export JSON • esc back • q quit"))

	return b.String()
}

func (m ResultsModel) summaryLine() string {
	parts := []string{}
	for _, s := range []types.Status{types.StatusCompleted, types.StatusFailed, types.StatusTimeout} {
		if c := m.report.CountStatus(s); c > 0 {
			style := styles.StatusStyle(string(s))
			parts = append(parts, style.Render(fmt.Sprintf("%s: %d", s, c)))
		}
	}
	return fmt.Sprintf("Tools: %d  [%s]", len(m.report.Scans), strings.Join(parts, "  "))
}

func (m ResultsModel) detailView(res *types.JobResult) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Tool: %s", res.Tool))
	lines = append(lines, fmt.Sprintf("Status: %s", res.Status))
	lines = append(lines, fmt.Sprintf("Duration: %s", res.Duration().Round(10*time.Millisecond)))
	if res.TextFile != "" {
		lines = append(lines, fmt.Sprintf("Text artifact: %s", res.TextFile))
	}
	if res.ResultsFile != "" {
		lines = append(lines, fmt.Sprintf("JSON artifact: %s", res.ResultsFile))
	}
	if res.Error != "" {
		lines = append(lines, fmt.Sprintf("Error: %s", res.Error))
	}
	return styles.BorderStyle.Render(strings.Join(lines, "\n"))
}

func (m *ResultsModel) exportJSON() {
	data, err := json.MarshalIndent(m.report, "", "  ")
	if err != nil {
		m.exportErr = fmt.Sprintf("export failed: %v", err)
		return
	}

	if err := os.WriteFile(exportFile, data, 0o644); err != nil {
		m.exportErr = fmt.Sprintf("export failed: %v", err)
		return
	}

	m.exported = true
	m.exportErr = ""
}
