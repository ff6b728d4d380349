package jobs

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/netscapy/netscapy/internal/engine"
	"github.com/netscapy/netscapy/pkg/types"
)

// newID generates job IDs. Extracted as a variable for testing.
var newID = uuid.NewString

// Options carries the scan parameters the manager applies to every job.
type Options struct {
	OutputDir string
	Workers   int
	Timeout   time.Duration
}

// Manager owns the lifecycle of web scan jobs: create, execute in the
// background, track progress, keep results in memory.
type Manager struct {
	mu      sync.RWMutex
	jobs    map[string]*Job
	args    map[string]map[string]string
	cancels map[string]context.CancelFunc
	engine  *engine.Engine
	opts    Options
}

// NewManager creates a job manager that executes scans on the given engine.
func NewManager(eng *engine.Engine, opts Options) *Manager {
	return &Manager{
		jobs:    make(map[string]*Job),
		args:    make(map[string]map[string]string),
		cancels: make(map[string]context.CancelFunc),
		engine:  eng,
		opts:    opts,
	}
}

// Create registers a new pending scan job. The job does not run until
// Start is called.
func (m *Manager) Create(target types.Target, tools []string, toolArgs map[string]string) *Job {
	m.mu.Lock()
	defer m.mu.Unlock()

	job := &Job{
		ID:        newID(),
		Target:    target,
		Tools:     tools,
		Status:    StatusPending,
		CreatedAt: time.Now(),
		Progress:  JobProgress{TotalTools: len(tools)},
	}
	m.jobs[job.ID] = job
	m.args[job.ID] = toolArgs
	return snapshot(job)
}

// Start launches the scan job in a background goroutine.
func (m *Manager) Start(jobID string) error {
	m.mu.Lock()
	job, ok := m.jobs[jobID]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("job %q not found", jobID)
	}
	toolArgs := m.args[jobID]
	delete(m.args, jobID)
	job.Status = StatusRunning
	job.StartedAt = time.Now()
	m.mu.Unlock()

	go m.execute(job, toolArgs)
	return nil
}

func (m *Manager) execute(job *Job, toolArgs map[string]string) {
	ctx, cancel := context.WithCancel(context.Background())

	m.mu.Lock()
	m.cancels[job.ID] = cancel
	m.mu.Unlock()

	defer func() {
		cancel()
		m.mu.Lock()
		delete(m.cancels, job.ID)
		m.mu.Unlock()
	}()

	rep, err := m.engine.Scan(ctx, engine.Request{
		Target:    job.Target.String(),
		Tools:     job.Tools,
		ToolArgs:  toolArgs,
		OutputDir: m.opts.OutputDir,
		Workers:   m.opts.Workers,
		Timeout:   m.opts.Timeout,
		OnProgress: func(done, total int, res *types.JobResult) {
			m.mu.Lock()
			job.Progress.CompletedTools = done
			job.Progress.TotalTools = total
			job.Progress.LastTool = res.Tool
			m.mu.Unlock()
		},
	})

	m.mu.Lock()
	defer m.mu.Unlock()
	job.CompletedAt = time.Now()
	if err != nil {
		job.Status = StatusFailed
		job.Error = err.Error()
		log.WithError(err).WithField("job", job.ID).Error("web scan failed")
		return
	}
	job.Report = rep
	job.Status = StatusCompleted
}

// snapshot copies a job under the manager's lock so callers can read or
// encode it while the scan keeps mutating the live one. The report pointer
// is safe to share: it is attached exactly once, when the job is terminal,
// and never mutated afterwards.
func snapshot(j *Job) *Job {
	copied := *j
	return &copied
}

// Get returns a point-in-time copy of a job by ID.
func (m *Manager) Get(jobID string) (*Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	job, ok := m.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("job %q not found", jobID)
	}
	return snapshot(job), nil
}

// List returns copies of all jobs sorted by CreatedAt descending.
func (m *Manager) List() []*Job {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*Job, 0, len(m.jobs))
	for _, j := range m.jobs {
		result = append(result, snapshot(j))
	}
	sort.Slice(result, func(i, k int) bool {
		return result[i].CreatedAt.After(result[k].CreatedAt)
	})
	return result
}

// Delete removes a job, canceling it first if it is still running. Artifacts
// already written by the scan stay on disk.
func (m *Manager) Delete(jobID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.jobs[jobID]; !ok {
		return fmt.Errorf("job %q not found", jobID)
	}
	if cancel, ok := m.cancels[jobID]; ok {
		cancel()
	}
	delete(m.jobs, jobID)
	delete(m.args, jobID)
	return nil
}
