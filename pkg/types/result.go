package types

import (
	"sort"
	"time"
)

// Status is the lifecycle state of a scan job.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusTimeout   Status = "timeout"
)

// Terminal reports whether the status is a final one.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusTimeout
}

// Port is one entry from the port scanner's PORT table.
type Port struct {
	Number   int    `json:"port"`
	Protocol string `json:"protocol"`
	State    string `json:"state"`
	Service  string `json:"service"`
	Version  string `json:"version,omitempty"`
}

// NiktoFinding is one "+ "-prefixed line from a nikto text report, with the
// reference id and request path split out when they are present.
type NiktoFinding struct {
	Reference string `json:"reference,omitempty"`
	Path      string `json:"path,omitempty"`
	Message   string `json:"message"`
}

// WhatWebInfo is the fingerprint whatweb reports for one URL.
type WhatWebInfo struct {
	URL          string              `json:"url"`
	IP           string              `json:"ip,omitempty"`
	HTTPStatus   int                 `json:"http_status,omitempty"`
	Server       string              `json:"server,omitempty"`
	Title        string              `json:"title,omitempty"`
	Technologies map[string][]string `json:"technologies,omitempty"`
}

// JobResult is the outcome of running one tool against one target. Exactly
// one JobResult exists per requested tool, whether or not the run succeeded.
type JobResult struct {
	Tool        string    `json:"tool"`
	Target      Target    `json:"target"`
	Status      Status    `json:"status"`
	Command     string    `json:"command,omitempty"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
	ExitCode    int       `json:"exit_code,omitempty"`

	// RawOutput holds the captured stdout for tools whose report is text.
	RawOutput string `json:"raw_output,omitempty"`

	// Tool-specific parsed payloads. At most one of these is set.
	Ports    []Port         `json:"ports,omitempty"`
	Findings []NiktoFinding `json:"findings,omitempty"`
	WebInfo  *WhatWebInfo   `json:"web_info,omitempty"`

	// ParseError records a structured-output parse failure. The job itself
	// still counts as completed when the tool exited cleanly.
	ParseError string `json:"parse_error,omitempty"`

	Error string `json:"error,omitempty"`

	// Artifact paths, filled in once the result has been persisted.
	TextFile    string `json:"txt_file,omitempty"`
	ResultsFile string `json:"results_file,omitempty"`
}

// Duration returns how long the job ran.
func (r *JobResult) Duration() time.Duration {
	return r.CompletedAt.Sub(r.StartedAt)
}

// ReportMetadata records when a scan ran and which tools it covered.
type ReportMetadata struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	ToolsUsed []string  `json:"tools_used"`
}

// CombinedReport maps every requested tool to its JobResult for one target.
type CombinedReport struct {
	Target   Target                `json:"target"`
	Scans    map[string]*JobResult `json:"scans"`
	Metadata ReportMetadata        `json:"metadata"`

	// ReportFile is where the combined artifact landed, once persisted.
	ReportFile string `json:"-"`
}

// Tools returns the report's tool names in sorted order.
func (r *CombinedReport) Tools() []string {
	names := make([]string, 0, len(r.Scans))
	for name := range r.Scans {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CountStatus returns how many tools finished with the given status.
func (r *CombinedReport) CountStatus(s Status) int {
	n := 0
	for _, res := range r.Scans {
		if res.Status == s {
			n++
		}
	}
	return n
}
