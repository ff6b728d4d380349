package output

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/netscapy/netscapy/pkg/types"
)

// TableFormatter renders a report as colored terminal tables, one section
// per tool.
type TableFormatter struct{}

func (f *TableFormatter) Format(w io.Writer, rep *types.CombinedReport) error {
	fmt.Fprintf(w, "\nTarget: %s\n", rep.Target)

	for _, name := range rep.Tools() {
		res := rep.Scans[name]

		if res.Status != types.StatusCompleted {
			fmt.Fprintf(w, "\n[%s] %s: %s\n", name, colorStatus(res.Status), res.Error)
			continue
		}

		fmt.Fprintf(w, "\n[%s] %s in %s\n", name, colorStatus(res.Status), res.Duration().Round(time.Millisecond))

		switch {
		case len(res.Ports) > 0:
			renderPorts(w, res.Ports)
		case len(res.Findings) > 0:
			renderFindings(w, res.Findings)
		case res.WebInfo != nil:
			renderWebInfo(w, res.WebInfo)
		default:
			fmt.Fprintln(w, "  No findings.")
		}

		if res.ParseError != "" {
			fmt.Fprintf(w, "  Output parsing failed: %s\n", res.ParseError)
		}
	}

	fmt.Fprintf(w, "\nSummary: %s\n", statusSummary(rep))
	return nil
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetColumnSeparator("│")
	return table
}

func renderPorts(w io.Writer, ports []types.Port) {
	table := newTable(w)
	table.SetHeader([]string{"Port", "Protocol", "State", "Service", "Version"})
	for _, p := range ports {
		table.Append([]string{strconv.Itoa(p.Number), p.Protocol, colorState(p.State), p.Service, p.Version})
	}
	table.Render()
}

func renderFindings(w io.Writer, findings []types.NiktoFinding) {
	table := newTable(w)
	table.SetHeader([]string{"Reference", "Finding"})
	for _, f := range findings {
		msg := f.Message
		if f.Reference != "" {
			msg = strings.TrimSpace(strings.TrimPrefix(msg, f.Reference+":"))
		}
		table.Append([]string{f.Reference, msg})
	}
	table.Render()
	fmt.Fprintf(w, "  %d findings\n", len(findings))
}

func renderWebInfo(w io.Writer, info *types.WhatWebInfo) {
	fmt.Fprintf(w, "  URL: %s\n", info.URL)
	if info.IP != "" {
		fmt.Fprintf(w, "  IP: %s\n", info.IP)
	}
	if info.HTTPStatus != 0 {
		fmt.Fprintf(w, "  HTTP status: %d\n", info.HTTPStatus)
	}
	if info.Server != "" {
		fmt.Fprintf(w, "  Server: %s\n", info.Server)
	}
	if info.Title != "" {
		fmt.Fprintf(w, "  Title: %s\n", info.Title)
	}
	if len(info.Technologies) == 0 {
		return
	}

	names := make([]string, 0, len(info.Technologies))
	for name := range info.Technologies {
		names = append(names, name)
	}
	sort.Strings(names)

	table := newTable(w)
	table.SetHeader([]string{"Technology", "Details"})
	for _, name := range names {
		table.Append([]string{name, strings.Join(info.Technologies[name], ", ")})
	}
	table.Render()
}

func colorStatus(s types.Status) string {
	switch s {
	case types.StatusCompleted:
		return color.GreenString(string(s))
	case types.StatusFailed:
		return color.RedString(string(s))
	case types.StatusTimeout:
		return color.YellowString(string(s))
	case types.StatusRunning:
		return color.CyanString(string(s))
	default:
		return string(s)
	}
}

func colorState(state string) string {
	switch {
	case state == "open":
		return color.GreenString(state)
	case strings.Contains(state, "filtered"):
		return color.YellowString(state)
	case state == "closed":
		return color.RedString(state)
	default:
		return state
	}
}

func statusSummary(rep *types.CombinedReport) string {
	return fmt.Sprintf("%d tools (%d completed, %d failed, %d timed out)",
		len(rep.Scans),
		rep.CountStatus(types.StatusCompleted),
		rep.CountStatus(types.StatusFailed),
		rep.CountStatus(types.StatusTimeout),
	)
}
