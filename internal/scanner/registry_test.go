package scanner

import (
	"context"
	"testing"
	"time"

	"github.com/netscapy/netscapy/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockTool struct {
	name string
}

func (m *mockTool) Name() string        { return m.name }
func (m *mockTool) Description() string { return "mock tool" }
func (m *mockTool) DefaultArgs() string { return "-mock" }
func (m *mockTool) TextReport() bool    { return true }
func (m *mockTool) Run(_ context.Context, target types.Target, _ string) (*types.JobResult, error) {
	now := time.Now()
	return &types.JobResult{
		Tool:        m.name,
		Target:      target,
		Status:      types.StatusCompleted,
		StartedAt:   now,
		CompletedAt: now,
		RawOutput:   "mock output",
	}, nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	tool := &mockTool{name: "test"}
	r.Register(tool)

	got, err := r.Get("test")
	require.NoError(t, err)
	assert.Equal(t, tool, got)
}

func TestRegistry_GetNotFound(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get("nonexistent")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRegistry_All_SortedByName(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockTool{name: "b"})
	r.Register(&mockTool{name: "a"})

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].Name())
	assert.Equal(t, "b", all[1].Name())
}

func TestRegistry_Names(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockTool{name: "whatweb"})
	r.Register(&mockTool{name: "nmap"})

	assert.Equal(t, []string{"nmap", "whatweb"}, r.Names())
}
