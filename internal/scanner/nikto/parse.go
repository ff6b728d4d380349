package nikto

import (
	"regexp"
	"strings"

	"github.com/netscapy/netscapy/pkg/types"
)

var referenceLine = regexp.MustCompile(`^([A-Z]+-\d+):\s*(.*)$`)

// metadataPrefixes are the report-header lines nikto also prints with a
// "+ " marker; they describe the scan itself, not a finding.
var metadataPrefixes = []string{
	"Target IP:",
	"Target Hostname:",
	"Target Port:",
	"Start Time:",
	"End Time:",
}

// ParseFindings extracts the "+ "-prefixed finding lines from nikto's text
// report. Reference ids (OSVDB, CVE) and the request path are split out when
// a line carries them; the full line is always kept as the message.
func ParseFindings(raw string) []types.NiktoFinding {
	var findings []types.NiktoFinding

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "+ ") {
			continue
		}
		msg := strings.TrimSpace(strings.TrimPrefix(line, "+ "))
		if msg == "" || isMetadata(msg) {
			continue
		}

		finding := types.NiktoFinding{Message: msg}

		rest := msg
		if m := referenceLine.FindStringSubmatch(rest); m != nil {
			finding.Reference = m[1]
			rest = m[2]
		}
		if strings.HasPrefix(rest, "/") {
			if idx := strings.Index(rest, ": "); idx > 0 {
				finding.Path = rest[:idx]
			}
		}

		findings = append(findings, finding)
	}
	return findings
}

func isMetadata(msg string) bool {
	for _, prefix := range metadataPrefixes {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return strings.HasSuffix(msg, "host(s) tested")
}
