package api

import (
	"bytes"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/netscapy/netscapy/internal/output"
	"github.com/netscapy/netscapy/internal/scanner"
	"github.com/netscapy/netscapy/internal/web/jobs"
	"github.com/netscapy/netscapy/pkg/types"
)

// Handlers holds dependencies for the REST API handlers.
type Handlers struct {
	Manager  *jobs.Manager
	Registry *scanner.Registry
}

// NewHandlers creates API handlers with the given dependencies.
func NewHandlers(manager *jobs.Manager, registry *scanner.Registry) *Handlers {
	return &Handlers{Manager: manager, Registry: registry}
}

// CreateScan handles POST /api/v1/scans.
func (h *Handlers) CreateScan(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreateScanRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	target, err := types.ParseTarget(req.Target)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid target: "+err.Error())
		return
	}

	toolNames := req.Tools
	if len(toolNames) == 0 || (len(toolNames) == 1 && toolNames[0] == "all") {
		all := h.Registry.All()
		toolNames = make([]string, len(all))
		for i, tool := range all {
			toolNames[i] = tool.Name()
		}
	}

	job := h.Manager.Create(target, toolNames, req.ToolArgs)
	if err := h.Manager.Start(job.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to start scan: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":     job.ID,
		"status": jobs.StatusRunning,
	})
}

// ListScans handles GET /api/v1/scans.
func (h *Handlers) ListScans(w http.ResponseWriter, r *http.Request) {
	jobList := h.Manager.List()

	type scanSummary struct {
		ID        string         `json:"id"`
		Target    string         `json:"target"`
		Status    jobs.JobStatus `json:"status"`
		CreatedAt time.Time      `json:"created_at"`
		Tools     []string       `json:"tools"`
		Completed int            `json:"completed_tools"`
		Failed    int            `json:"failed_tools"`
	}

	summaries := make([]scanSummary, len(jobList))
	for i, j := range jobList {
		summaries[i] = scanSummary{
			ID:        j.ID,
			Target:    j.Target.String(),
			Status:    j.Status,
			CreatedAt: j.CreatedAt,
			Tools:     j.Tools,
			Completed: j.CountStatus(types.StatusCompleted),
			Failed:    j.CountStatus(types.StatusFailed) + j.CountStatus(types.StatusTimeout),
		}
	}

	writeJSON(w, http.StatusOK, summaries)
}

// GetScan handles GET /api/v1/scans/{id}.
func (h *Handlers) GetScan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	job, err := h.Manager.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, job)
}

// GetScanReport handles GET /api/v1/scans/{id}/report.
func (h *Handlers) GetScanReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	job, err := h.Manager.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	if job.Status != jobs.StatusCompleted || job.Report == nil {
		writeError(w, http.StatusConflict, "scan is not yet completed")
		return
	}

	formatter := &output.HTMLFormatter{}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, job.Report); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to render report: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// DeleteScan handles DELETE /api/v1/scans/{id}.
func (h *Handlers) DeleteScan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Manager.Delete(id); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
