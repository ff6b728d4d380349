package whatweb

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/netscapy/netscapy/internal/scanner"
	"github.com/netscapy/netscapy/pkg/types"
)

const (
	toolName    = "whatweb"
	defaultArgs = "--color=never --no-errors -a 3"
)

// Scanner shells out to the whatweb binary for web technology
// fingerprinting. WhatWeb writes its JSON report to a private temp file via
// --log-json; the adapter reads and removes it after the run.
type Scanner struct {
	// Binary is the executable name or path, overridable in tests.
	Binary string
}

// New creates a new whatweb adapter.
func New() *Scanner {
	return &Scanner{Binary: toolName}
}

func (s *Scanner) Name() string        { return toolName }
func (s *Scanner) Description() string { return "Web technology fingerprinting with WhatWeb" }
func (s *Scanner) DefaultArgs() string { return defaultArgs }
func (s *Scanner) TextReport() bool    { return false }

// Run invokes whatweb against the target URL and parses the JSON log into a
// WhatWebInfo. A parse failure keeps the job completed and falls back to the
// raw stdout, clearly marked via ParseError.
func (s *Scanner) Run(ctx context.Context, target types.Target, args string) (*types.JobResult, error) {
	if args == "" {
		args = defaultArgs
	}

	res := &types.JobResult{
		Tool:      toolName,
		Target:    target,
		Status:    types.StatusRunning,
		StartedAt: time.Now(),
	}

	if _, err := scanner.LookBinary(s.Binary); err != nil {
		res.Status = types.StatusFailed
		res.Error = err.Error()
		res.CompletedAt = time.Now()
		return res, nil
	}

	tmp, err := os.CreateTemp("", "whatweb-*.json")
	if err != nil {
		res.Status = types.StatusFailed
		res.Error = fmt.Sprintf("creating whatweb log file: %v", err)
		res.CompletedAt = time.Now()
		return res, nil
	}
	logPath := tmp.Name()
	tmp.Close()
	defer os.Remove(logPath)

	argv := append([]string{"--log-json", logPath}, scanner.SplitArgs(args)...)
	argv = append(argv, target.URL())
	res.Command = s.Binary + " " + strings.Join(argv, " ")

	out := scanner.RunCommand(ctx, s.Binary, argv...)
	out.Apply(res)
	if res.Status != types.StatusCompleted {
		return res, nil
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		res.ParseError = fmt.Sprintf("reading whatweb JSON log: %v", err)
		res.RawOutput = out.Stdout
		return res, nil
	}

	info, err := ParseReport(data)
	if err != nil {
		res.ParseError = err.Error()
		res.RawOutput = out.Stdout
		return res, nil
	}
	res.WebInfo = info
	return res, nil
}
