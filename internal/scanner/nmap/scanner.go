package nmap

import (
	"context"
	"strings"
	"time"

	"github.com/netscapy/netscapy/internal/scanner"
	"github.com/netscapy/netscapy/pkg/types"
)

const (
	toolName    = "nmap"
	defaultArgs = "-sV -sC -T4"
)

// Scanner shells out to the nmap binary for port and service discovery.
type Scanner struct {
	// Binary is the executable name or path, overridable in tests.
	Binary string
}

// New creates a new nmap adapter.
func New() *Scanner {
	return &Scanner{Binary: toolName}
}

func (s *Scanner) Name() string        { return toolName }
func (s *Scanner) Description() string { return "Port and service scanning with Nmap" }
func (s *Scanner) DefaultArgs() string { return defaultArgs }
func (s *Scanner) TextReport() bool    { return true }

// Run invokes nmap against the target and parses the PORT table out of its
// normal output. The target is passed to nmap verbatim as the last argument.
func (s *Scanner) Run(ctx context.Context, target types.Target, args string) (*types.JobResult, error) {
	if args == "" {
		args = defaultArgs
	}
	argv := append(scanner.SplitArgs(args), target.String())

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
		res.Ports = ParsePorts(out.Stdout)
	}
	return res, nil
}
