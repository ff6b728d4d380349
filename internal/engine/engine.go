package engine

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/netscapy/netscapy/internal/report"
	"github.com/netscapy/netscapy/internal/scanner"
	"github.com/netscapy/netscapy/pkg/types"
)

// DefaultOutputDir is where artifacts land when a request does not say
// otherwise.
const DefaultOutputDir = "output/reports"

// Request describes one scan: a target, the tools to run against it, and
// how to run them.
type Request struct {
	Target    string
	Tools     []string
	ToolArgs  map[string]string // per-tool args, replacing the tool's defaults
	OutputDir string
	Workers   int
	Timeout   time.Duration

	// OnProgress is called as each tool finishes, including tools that were
	// requested but are not registered. Calls are serialized.
	OnProgress func(done, total int, res *types.JobResult)
}

// Engine resolves scan requests against a tool registry, runs the jobs, and
// persists the artifacts.
type Engine struct {
	registry *scanner.Registry
}

// New creates an engine backed by the given registry.
func New(registry *scanner.Registry) *Engine {
	return &Engine{registry: registry}
}

// Registry exposes the engine's tool registry.
func (e *Engine) Registry() *scanner.Registry { return e.registry }

// Scan runs every requested tool against the target and returns a report
// with exactly one entry per requested tool. Unknown tools become failed
// entries, and tool failures or artifact write failures never abort the
// remaining work. Scan errors only when the request itself is unusable, and
// in that case nothing has been written.
func (e *Engine) Scan(ctx context.Context, req Request) (*types.CombinedReport, error) {
	target, err := types.ParseTarget(req.Target)
	if err != nil {
		return nil, ErrEmptyTarget
	}

	requested := dedupe(req.Tools)
	if len(requested) == 0 {
		return nil, ErrNoTools
	}

	var jobs []scanner.Job
	var unknown []*types.JobResult
	textByTool := make(map[string]bool)
	for _, name := range requested {
		tool, err := e.registry.Get(name)
		if err != nil {
			log.WithField("tool", name).Warn("requested tool is not registered")
			unknown = append(unknown, unknownResult(name, target, err))
			continue
		}
		textByTool[name] = tool.TextReport()
		jobs = append(jobs, scanner.Job{Tool: tool, Args: req.ToolArgs[name]})
	}
	if len(jobs) == 0 {
		return nil, ErrNoValidTools
	}

	outDir := req.OutputDir
	if outDir == "" {
		outDir = DefaultOutputDir
	}
	writer, err := report.NewWriter(outDir)
	if err != nil {
		return nil, err
	}

	opts := scanner.DefaultOptions()
	if req.Workers > 0 {
		opts.Workers = req.Workers
	}
	if req.Timeout > 0 {
		opts.Timeout = req.Timeout
	}

	rep := &types.CombinedReport{
		Target: target,
		Scans:  make(map[string]*types.JobResult, len(requested)),
		Metadata: types.ReportMetadata{
			StartTime: time.Now(),
			ToolsUsed: requested,
		},
	}

	total := len(requested)
	done := 0
	notify := func(res *types.JobResult) {
		done++
		if req.OnProgress != nil {
			req.OnProgress(done, total, res)
		}
	}

	for _, res := range unknown {
		rep.Scans[res.Tool] = res
		notify(res)
	}

	log.WithFields(log.Fields{
		"target":  target.String(),
		"tools":   len(jobs),
		"workers": opts.Workers,
	}).Info("starting scan")

	runner := scanner.NewRunner(opts)
	results := runner.RunAll(ctx, target, jobs, func(res *types.JobResult) {
		if err := writer.WriteToolResult(res, textByTool[res.Tool]); err != nil {
			log.WithError(err).WithField("tool", res.Tool).Error("failed to persist result")
		}
		notify(res)
	})
	for _, res := range results {
		rep.Scans[res.Tool] = res
	}

	rep.Metadata.EndTime = time.Now()

	if path, err := writer.WriteCombined(rep); err != nil {
		log.WithError(err).Error("failed to persist combined report")
	} else {
		rep.ReportFile = path
	}

	log.WithFields(log.Fields{
		"target":    target.String(),
		"completed": rep.CountStatus(types.StatusCompleted),
		"failed":    rep.CountStatus(types.StatusFailed),
		"timeout":   rep.CountStatus(types.StatusTimeout),
	}).Info("scan finished")

	return rep, nil
}

// dedupe trims the names and removes blanks and duplicates, keeping the
// first occurrence of each.
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// unknownResult synthesizes the failed report entry for a tool that was
// requested but is not registered.
func unknownResult(name string, target types.Target, err error) *types.JobResult {
	now := time.Now()
	return &types.JobResult{
		Tool:        name,
		Target:      target,
		Status:      types.StatusFailed,
		StartedAt:   now,
		CompletedAt: now,
		Error:       err.Error(),
	}
}
