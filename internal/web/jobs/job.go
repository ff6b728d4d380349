package jobs

import (
	"time"

	"github.com/netscapy/netscapy/pkg/types"
)

// JobStatus is the lifecycle state of one web scan job.
type JobStatus string

const (
	StatusPending   JobStatus = "pending"
	StatusRunning   JobStatus = "running"
	StatusCompleted JobStatus = "completed"
	StatusFailed    JobStatus = "failed"
)

// JobProgress tracks tool-level progress within a job.
type JobProgress struct {
	TotalTools     int    `json:"total_tools"`
	CompletedTools int    `json:"completed_tools"`
	LastTool       string `json:"last_tool,omitempty"`
}

// Job is one asynchronous scan started from the web interface. Report stays
// nil until the underlying scan finishes.
type Job struct {
	ID          string                `json:"id"`
	Target      types.Target          `json:"target"`
	Tools       []string              `json:"tools"`
	Status      JobStatus             `json:"status"`
	Report      *types.CombinedReport `json:"report,omitempty"`
	Error       string                `json:"error,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	StartedAt   time.Time             `json:"started_at,omitempty"`
	CompletedAt time.Time             `json:"completed_at,omitempty"`
	Progress    JobProgress           `json:"progress"`
}

// CountStatus returns how many tools finished with the given status, or zero
// while the scan is still running.
func (j *Job) CountStatus(s types.Status) int {
	if j.Report == nil {
		return 0
	}
	return j.Report.CountStatus(s)
}
