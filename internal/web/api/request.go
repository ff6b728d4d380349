package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// CreateScanRequest is the JSON body for POST /api/v1/scans.
type CreateScanRequest struct {
	Target   string            `json:"target"`
	Tools    []string          `json:"tools"`
	ToolArgs map[string]string `json:"tool_args,omitempty"`
}

// decodeCreateScanRequest reads and validates the request body.
func decodeCreateScanRequest(r *http.Request) (*CreateScanRequest, error) {
	var req CreateScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if req.Target == "" {
		return nil, fmt.Errorf("target is required")
	}

	return &req, nil
}
