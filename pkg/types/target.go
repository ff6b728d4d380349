package types

import (
	"fmt"
	"strings"
)

// Target is what to scan: a hostname, IP address, or URL. It is handed to
// the underlying tools verbatim, so no validation happens beyond trimming
// and rejecting the empty string.
type Target string

// ParseTarget trims raw and rejects empty targets.
func ParseTarget(raw string) (Target, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("target cannot be empty")
	}
	return Target(raw), nil
}

func (t Target) String() string {
	return string(t)
}

var slugReplacer = strings.NewReplacer("/", "_", ":", "_")

// Slug returns a filename-safe form of the target. The mapping is stable, so
// rescanning the same target overwrites its previous artifacts.
func (t Target) Slug() string {
	return slugReplacer.Replace(string(t))
}

// URL returns the target as an http(s) URL for tools that want one,
// defaulting to http:// when no scheme is present.
func (t Target) URL() string {
	s := string(t)
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s
	}
	return "http://" + s
}
