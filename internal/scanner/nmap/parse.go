package nmap

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/netscapy/netscapy/pkg/types"
)

var portLine = regexp.MustCompile(`^(\d+)/(\w+)\s+([\w|]+)\s+(\S+)(?:\s+(.+))?$`)

// ParsePorts extracts the PORT table from nmap's normal output. The table
// starts after the "PORT STATE SERVICE" header and ends at the first blank
// line or the "Nmap done" trailer; script-output lines in between are
// ignored.
func ParsePorts(raw string) []types.Port {
	var ports []types.Port
	inTable := false

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "PORT") {
			inTable = true
			continue
		}
		if !inTable {
			continue
		}
		if trimmed == "" || strings.HasPrefix(trimmed, "Nmap done") || strings.HasPrefix(trimmed, "#") {
			break
		}

		m := portLine.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		number, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		ports = append(ports, types.Port{
			Number:   number,
			Protocol: m[2],
			State:    m[3],
			Service:  m[4],
			Version:  strings.TrimSpace(m[5]),
		})
	}
	return ports
}
