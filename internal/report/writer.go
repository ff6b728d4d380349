package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/netscapy/netscapy/pkg/types"
)

// Writer persists per-tool and combined scan artifacts under one output
// directory. Filenames derive only from tool name and target, so rerunning a
// scan overwrites the previous artifacts instead of accumulating new ones.
// Writes are serialized; results may arrive from concurrent workers.
type Writer struct {
	outDir string
	mu     sync.Mutex
}

// NewWriter creates the output directory if absent and returns a writer
// bound to it.
func NewWriter(outDir string) (*Writer, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", outDir, err)
	}
	return &Writer{outDir: outDir}, nil
}

// Dir returns the output directory the writer is bound to.
func (w *Writer) Dir() string { return w.outDir }

// TextPath returns the deterministic path of a tool's text artifact.
func (w *Writer) TextPath(tool string, target types.Target) string {
	return filepath.Join(w.outDir, fmt.Sprintf("%s_scan_%s.txt", tool, target.Slug()))
}

// JSONPath returns the deterministic path of a tool's structured artifact.
func (w *Writer) JSONPath(tool string, target types.Target) string {
	return filepath.Join(w.outDir, fmt.Sprintf("%s_scan_%s.json", tool, target.Slug()))
}

// CombinedPath returns the deterministic path of the combined artifact.
func (w *Writer) CombinedPath(target types.Target) string {
	return filepath.Join(w.outDir, fmt.Sprintf("combined_results_%s.json", target.Slug()))
}

// WriteToolResult persists the artifacts for one job result and records
// their paths on the result. Text-report tools get a verbatim text artifact
// next to the structured one. A failure on one artifact is logged and
// reported but never blocks the sibling artifact.
func (w *Writer) WriteToolResult(res *types.JobResult, textReport bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var firstErr error

	if textReport && res.RawOutput != "" {
		path := w.TextPath(res.Tool, res.Target)
		if err := os.WriteFile(path, []byte(res.RawOutput), 0o644); err != nil {
			firstErr = fmt.Errorf("writing %s: %w", path, err)
			log.WithError(err).WithField("path", path).Error("text artifact write failed")
		} else {
			res.TextFile = path
		}
	}

	path := w.JSONPath(res.Tool, res.Target)
	if err := writeJSON(path, res); err != nil {
		if firstErr == nil {
			firstErr = fmt.Errorf("writing %s: %w", path, err)
		}
		log.WithError(err).WithField("path", path).Error("structured artifact write failed")
	} else {
		res.ResultsFile = path
	}

	return firstErr
}

// toolSummary is the per-tool slice of the combined artifact.
type toolSummary struct {
	Status      types.Status `json:"status"`
	ResultsFile string       `json:"results_file,omitempty"`
	TextFile    string       `json:"txt_file,omitempty"`
	Error       string       `json:"error,omitempty"`
}

type combinedDocument struct {
	Target   types.Target           `json:"target"`
	Scans    map[string]toolSummary `json:"scans"`
	Metadata types.ReportMetadata   `json:"metadata"`
}

// WriteCombined persists the combined artifact summarizing every requested
// tool's outcome. It is written even when every individual tool failed, and
// must only be called once all individual results are in.
func (w *Writer) WriteCombined(rep *types.CombinedReport) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	doc := combinedDocument{
		Target:   rep.Target,
		Scans:    make(map[string]toolSummary, len(rep.Scans)),
		Metadata: rep.Metadata,
	}
	for name, res := range rep.Scans {
		doc.Scans[name] = toolSummary{
			Status:      res.Status,
			ResultsFile: res.ResultsFile,
			TextFile:    res.TextFile,
			Error:       res.Error,
		}
	}

	path := w.CombinedPath(rep.Target)
	if err := writeJSON(path, doc); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
