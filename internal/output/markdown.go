package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/netscapy/netscapy/pkg/types"
)

// MarkdownFormatter renders the report as Markdown tables suitable for
// pasting into docs, issues, or pull-request descriptions.
type MarkdownFormatter struct{}

func (f *MarkdownFormatter) Format(w io.Writer, rep *types.CombinedReport) error {
	fmt.Fprintf(w, "# Scan report: %s\n", rep.Target)

	for _, name := range rep.Tools() {
		res := rep.Scans[name]
		fmt.Fprintln(w)

		if res.Status != types.StatusCompleted {
			fmt.Fprintf(w, "## %s (%s)\n\n> %s\n", name, res.Status, res.Error)
			continue
		}

		fmt.Fprintf(w, "## %s\n\n", name)

		switch {
		case len(res.Ports) > 0:
			markdownPorts(w, res.Ports)
		case len(res.Findings) > 0:
			markdownFindings(w, res.Findings)
		case res.WebInfo != nil:
			markdownWebInfo(w, res.WebInfo)
		default:
			fmt.Fprintln(w, "_No findings._")
		}
	}

	fmt.Fprintf(w, "\n**Summary:** %s\n", statusSummary(rep))
	return nil
}

func markdownPorts(w io.Writer, ports []types.Port) {
	fmt.Fprintln(w, "| Port | Protocol | State | Service | Version |")
	fmt.Fprintln(w, "|------|----------|-------|---------|---------|")
	for _, p := range ports {
		fmt.Fprintf(w, "| %d | %s | %s | %s | %s |\n",
			p.Number, p.Protocol, p.State, escapeMarkdown(p.Service), escapeMarkdown(p.Version))
	}
}

func markdownFindings(w io.Writer, findings []types.NiktoFinding) {
	fmt.Fprintln(w, "| Reference | Finding |")
	fmt.Fprintln(w, "|-----------|---------|")
	for _, f := range findings {
		msg := f.Message
		if f.Reference != "" {
			msg = strings.TrimSpace(strings.TrimPrefix(msg, f.Reference+":"))
		}
		fmt.Fprintf(w, "| %s | %s |\n", f.Reference, escapeMarkdown(msg))
	}
}

func markdownWebInfo(w io.Writer, info *types.WhatWebInfo) {
	fmt.Fprintf(w, "- **URL:** %s\n", info.URL)
	if info.IP != "" {
		fmt.Fprintf(w, "- **IP:** %s\n", info.IP)
	}
	if info.HTTPStatus != 0 {
		fmt.Fprintf(w, "- **HTTP status:** %d\n", info.HTTPStatus)
	}
	if info.Server != "" {
		fmt.Fprintf(w, "- **Server:** %s\n", escapeMarkdown(info.Server))
	}
	if info.Title != "" {
		fmt.Fprintf(w, "- **Title:** %s\n", escapeMarkdown(info.Title))
	}
	if len(info.Technologies) == 0 {
		return
	}

	names := make([]string, 0, len(info.Technologies))
	for name := range info.Technologies {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Technology | Details |")
	fmt.Fprintln(w, "|------------|---------|")
	for _, name := range names {
		details := strings.Join(info.Technologies[name], ", ")
		fmt.Fprintf(w, "| %s | %s |\n", escapeMarkdown(name), escapeMarkdown(details))
	}
}

// escapeMarkdown escapes pipe characters that would break Markdown tables.
func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
