package scanner

import (
	"context"
	"errors"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/netscapy/netscapy/pkg/types"
)

// Job pairs a tool with the argument string it should run with.
type Job struct {
	Tool Tool
	Args string
}

// Runner executes jobs concurrently, bounded by Options.Workers.
type Runner struct {
	opts Options
}

// NewRunner creates a runner with the given options, clamping them to
// usable values.
func NewRunner(opts Options) *Runner {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultOptions().Timeout
	}
	return &Runner{opts: opts}
}

// RunAll executes every job against the target and returns exactly one
// result per job, in completion order. Each job gets its own timeout, and a
// failing or hanging tool never prevents the others from finishing. onResult,
// when non-nil, is invoked serially as each job completes.
func (r *Runner) RunAll(ctx context.Context, target types.Target, jobs []Job, onResult func(*types.JobResult)) []*types.JobResult {
	sem := make(chan struct{}, r.opts.Workers)
	var mu sync.Mutex
	var results []*types.JobResult
	var wg sync.WaitGroup

	collect := func(res *types.JobResult) {
		mu.Lock()
		defer mu.Unlock()
		results = append(results, res)
		if onResult != nil {
			onResult(res)
		}
	}

	for _, job := range jobs {
		wg.Add(1)
		go func(job Job) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				collect(abortedResult(job, target, ctx.Err()))
				return
			}

			collect(r.runOne(ctx, target, job))
		}(job)
	}

	wg.Wait()
	return results
}

func (r *Runner) runOne(ctx context.Context, target types.Target, job Job) *types.JobResult {
	jobCtx, cancel := context.WithTimeout(ctx, r.opts.Timeout)
	defer cancel()

	log.WithFields(log.Fields{
		"tool":    job.Tool.Name(),
		"target":  target.String(),
		"timeout": r.opts.Timeout,
	}).Debug("starting job")

	res, err := job.Tool.Run(jobCtx, target, job.Args)
	if err != nil || res == nil {
		res = abortedResult(job, target, err)
	}

	log.WithFields(log.Fields{
		"tool":     res.Tool,
		"status":   res.Status,
		"duration": res.Duration(),
	}).Info("job finished")
	return res
}

// abortedResult synthesizes a failure result for a job that never produced
// one, so callers still see one result per requested tool.
func abortedResult(job Job, target types.Target, err error) *types.JobResult {
	now := time.Now()
	res := &types.JobResult{
		Tool:        job.Tool.Name(),
		Target:      target,
		Status:      types.StatusFailed,
		StartedAt:   now,
		CompletedAt: now,
	}
	switch {
	case errors.Is(err, context.Canceled):
		// Same label whether the cancel hit a running subprocess or a job
		// still waiting for a worker slot.
		res.Error = "scan canceled"
	case err != nil:
		res.Error = err.Error()
	default:
		res.Error = "tool returned no result"
	}
	return res
}
