package nikto

import (
	"context"
	"strings"
	"time"

	"github.com/netscapy/netscapy/internal/scanner"
	"github.com/netscapy/netscapy/pkg/types"
)

const (
	toolName    = "nikto"
	defaultArgs = "-ask no"
)

// Scanner shells out to the nikto binary for web server vulnerability
// scanning. Nikto's text report is kept verbatim and its finding lines are
// parsed on top of it.
type Scanner struct {
	// Binary is the executable name or path, overridable in tests.
	Binary string
}

// New creates a new nikto adapter.
func New() *Scanner {
	return &Scanner{Binary: toolName}
}

func (s *Scanner) Name() string        { return toolName }
func (s *Scanner) Description() string { return "Web server scanning with Nikto" }
func (s *Scanner) DefaultArgs() string { return defaultArgs }
func (s *Scanner) TextReport() bool    { return true }

// Run invokes nikto against the target. The host is always appended as a
// trailing "-host" argument so user args never have to carry it.
func (s *Scanner) Run(ctx context.Context, target types.Target, args string) (*types.JobResult, error) {
	if args == "" {
		args = defaultArgs
	}
	argv := append(scanner.SplitArgs(args), "-host", target.URL())

	res := &types.JobResult{
		Tool:      toolName,
		Target:    target,
		Status:    types.StatusRunning,
		StartedAt: time.Now(),
		Command:   s.Binary + " " + strings.Join(argv, " "),
	}

	if _, err := scanner.LookBinary(s.Binary); err != nil {
		res.Status = types.StatusFailed
		res.Error = err.Error()
		res.CompletedAt = time.Now()
		return res, nil
	}

	out := scanner.RunCommand(ctx, s.Binary, argv...)
	out.Apply(res)
	res.RawOutput = out.Stdout

	if res.Status == types.StatusCompleted {
		res.Findings = ParseFindings(out.Stdout)
	}
	return res, nil
}
