package jobs

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netscapy/netscapy/internal/engine"
	"github.com/netscapy/netscapy/internal/scanner"
	"github.com/netscapy/netscapy/pkg/types"
)

type fakeTool struct {
	name  string
	delay time.Duration
}

func (f *fakeTool) Name() string        { return f.name }
func (f *fakeTool) Description() string { return f.name + " fake" }
func (f *fakeTool) DefaultArgs() string { return "" }
func (f *fakeTool) TextReport() bool    { return false }

func (f *fakeTool) Run(ctx context.Context, target types.Target, args string) (*types.JobResult, error) {
	start := time.Now()
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return &types.JobResult{
				Tool:        f.name,
				Target:      target,
				Status:      types.StatusFailed,
				StartedAt:   start,
				CompletedAt: time.Now(),
				Error:       "scan canceled",
			}, nil
		}
	}
	return &types.JobResult{
		Tool:        f.name,
		Target:      target,
		Status:      types.StatusCompleted,
		StartedAt:   start,
		CompletedAt: time.Now(),
	}, nil
}

func newTestManager(t *testing.T, tools ...scanner.Tool) *Manager {
	t.Helper()
	reg := scanner.NewRegistry()
	for _, tool := range tools {
		reg.Register(tool)
	}
	return NewManager(engine.New(reg), Options{
		OutputDir: t.TempDir(),
		Workers:   2,
		Timeout:   5 * time.Second,
	})
}

func TestManagerCreateIsPending(t *testing.T) {
	m := newTestManager(t, &fakeTool{name: "nmap"})

	job := m.Create("example.com", []string{"nmap"}, nil)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, StatusPending, job.Status)
	assert.Equal(t, 1, job.Progress.TotalTools)
}

func TestManagerStartCompletesJob(t *testing.T) {
	m := newTestManager(t, &fakeTool{name: "nmap"}, &fakeTool{name: "whatweb"})

	job := m.Create("example.com", []string{"nmap", "whatweb"}, nil)
	require.NoError(t, m.Start(job.ID))

	assert.Eventually(t, func() bool {
		j, err := m.Get(job.ID)
		return err == nil && j.Status == StatusCompleted
	}, 5*time.Second, 10*time.Millisecond)

	j, err := m.Get(job.ID)
	require.NoError(t, err)
	require.NotNil(t, j.Report)
	assert.Len(t, j.Report.Scans, 2)
	assert.Equal(t, 2, j.Progress.CompletedTools)
	assert.False(t, j.CompletedAt.IsZero())
}

func TestManagerStartUnknownJob(t *testing.T) {
	m := newTestManager(t, &fakeTool{name: "nmap"})
	assert.Error(t, m.Start("no-such-id"))
}

func TestManagerJobFailsWhenRequestInvalid(t *testing.T) {
	m := newTestManager(t, &fakeTool{name: "nmap"})

	// No registered tool matches, so the engine rejects the request.
	job := m.Create("example.com", []string{"bogus"}, nil)
	require.NoError(t, m.Start(job.ID))

	assert.Eventually(t, func() bool {
		j, _ := m.Get(job.ID)
		return j.Status == StatusFailed
	}, 5*time.Second, 10*time.Millisecond)

	j, _ := m.Get(job.ID)
	assert.NotEmpty(t, j.Error)
	assert.Nil(t, j.Report)
}

func TestManagerGetReturnsCopy(t *testing.T) {
	m := newTestManager(t, &fakeTool{name: "nmap"})

	job := m.Create("example.com", []string{"nmap"}, nil)

	j, err := m.Get(job.ID)
	require.NoError(t, err)
	j.Status = StatusFailed
	j.Progress.CompletedTools = 99

	// Mutating the returned job must not leak into the manager's copy.
	fresh, err := m.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, fresh.Status)
	assert.Equal(t, 0, fresh.Progress.CompletedTools)
}

func TestManagerGetEncodableWhileRunning(t *testing.T) {
	m := newTestManager(t,
		&fakeTool{name: "nmap", delay: 50 * time.Millisecond},
		&fakeTool{name: "nikto", delay: 80 * time.Millisecond},
		&fakeTool{name: "whatweb", delay: 110 * time.Millisecond},
	)

	job := m.Create("example.com", []string{"nmap", "nikto", "whatweb"}, nil)
	require.NoError(t, m.Start(job.ID))

	// Encode the job the way the API does, repeatedly, while the scan is
	// mutating status and progress in the background.
	deadline := time.Now().Add(5 * time.Second)
	for {
		require.True(t, time.Now().Before(deadline), "job never completed")

		j, err := m.Get(job.ID)
		require.NoError(t, err)
		_, err = json.Marshal(j)
		require.NoError(t, err)
		for _, l := range m.List() {
			_, err = json.Marshal(l)
			require.NoError(t, err)
		}

		if j.Status == StatusCompleted {
			require.NotNil(t, j.Report)
			assert.Equal(t, 3, j.Progress.CompletedTools)
			break
		}
	}
}

func TestManagerGetUnknown(t *testing.T) {
	m := newTestManager(t, &fakeTool{name: "nmap"})
	_, err := m.Get("missing")
	assert.Error(t, err)
}

func TestManagerListSortedByCreation(t *testing.T) {
	m := newTestManager(t, &fakeTool{name: "nmap"})

	first := m.Create("one.example.com", []string{"nmap"}, nil)
	time.Sleep(5 * time.Millisecond)
	second := m.Create("two.example.com", []string{"nmap"}, nil)

	list := m.List()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestManagerDeleteCancelsRunningJob(t *testing.T) {
	m := newTestManager(t, &fakeTool{name: "nmap", delay: 10 * time.Second})

	job := m.Create("example.com", []string{"nmap"}, nil)
	require.NoError(t, m.Start(job.ID))

	assert.Eventually(t, func() bool {
		j, _ := m.Get(job.ID)
		return j.Status == StatusRunning
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, m.Delete(job.ID))
	_, err := m.Get(job.ID)
	assert.Error(t, err)
}

func TestManagerDeleteUnknown(t *testing.T) {
	m := newTestManager(t, &fakeTool{name: "nmap"})
	assert.Error(t, m.Delete("missing"))
}
