package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/netscapy/netscapy/internal/engine"
	"github.com/netscapy/netscapy/internal/tui/styles"
	"github.com/netscapy/netscapy/pkg/types"
)

// ScanCompleteMsg is sent when the whole scan finishes.
type ScanCompleteMsg struct {
	Report *types.CombinedReport
	Err    error
}

// ToolDoneMsg is sent each time one tool finishes.
type ToolDoneMsg struct {
	Done   int
	Total  int
	Result *types.JobResult
}

// ScanConfig carries everything the scan view needs to drive the engine.
type ScanConfig struct {
	Engine    *engine.Engine
	Target    types.Target
	Tools     []string
	OutputDir string
	Workers   int
	Timeout   time.Duration
}

// ScanModel is the view model for the scan progress view.
type ScanModel struct {
	spinner spinner.Model
	cfg     ScanConfig
	ctx     context.Context
	cancel  context.CancelFunc
	events  chan ToolDoneMsg
	lines   []string
	done    int
	total   int
}

// NewScanModel creates a scan progress view for the given configuration.
func NewScanModel(cfg ScanConfig) ScanModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.ColorAccent)

	ctx, cancel := context.WithCancel(context.Background())
	return ScanModel{
		spinner: sp,
		cfg:     cfg,
		ctx:     ctx,
		cancel:  cancel,
		events:  make(chan ToolDoneMsg, len(cfg.Tools)+1),
		total:   len(cfg.Tools),
	}
}

// Init starts the spinner and launches the scan.
func (m ScanModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runScan(), m.waitForTool())
}

// Cancel aborts the running scan. Completed results are still persisted.
func (m ScanModel) Cancel() {
	if m.cancel != nil {
		m.cancel()
	}
}

// Update handles spinner ticks and per-tool completion events.
func (m ScanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ToolDoneMsg:
		m.done = msg.Done
		m.total = msg.Total
		m.lines = append(m.lines, toolLine(msg.Result))
		return m, m.waitForTool()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the scan progress.
func (m ScanModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Netscapy — Scanning"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s Scanning %s  (%d/%d tools done)\n\n",
		m.spinner.View(),
		styles.SelectedStyle.Render(m.cfg.Target.String()),
		m.done, m.total))

	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("esc cancel • ctrl+c quit"))

	return b.String()
}

// runScan drives the engine in the background. Per-tool completions flow
// through the events channel; the returned message carries the final report.
func (m ScanModel) runScan() tea.Cmd {
	ctx := m.ctx
	cfg := m.cfg
	events := m.events

	return func() tea.Msg {
		rep, err := cfg.Engine.Scan(ctx, engine.Request{
			Target:    cfg.Target.String(),
			Tools:     cfg.Tools,
			OutputDir: cfg.OutputDir,
			Workers:   cfg.Workers,
			Timeout:   cfg.Timeout,
			OnProgress: func(done, total int, res *types.JobResult) {
				events <- ToolDoneMsg{Done: done, Total: total, Result: res}
			},
		})
		return ScanCompleteMsg{Report: rep, Err: err}
	}
}

// waitForTool blocks until the next per-tool completion event.
func (m ScanModel) waitForTool() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		return <-events
	}
}

func toolLine(res *types.JobResult) string {
	status := styles.StatusStyle(string(res.Status)).Render(string(res.Status))
	line := fmt.Sprintf("  %s %s", status, res.Tool)
	if res.Error != "" {
		line += "  " + styles.HelpStyle.Render(res.Error)
	}
	return line
}
