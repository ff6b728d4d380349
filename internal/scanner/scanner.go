package scanner

import (
	"context"
	"time"

	"github.com/netscapy/netscapy/pkg/types"
)

// Tool is the core interface every external-tool adapter implements. Run
// invokes the underlying binary once and reports the outcome in the result's
// Status and Error fields; the error return is reserved for internal
// failures, so a broken tool never takes down a whole scan.
type Tool interface {
	Name() string
	Description() string
	DefaultArgs() string
	// TextReport reports whether the tool's primary output is a plain-text
	// report (as opposed to structured data).
	TextReport() bool
	Run(ctx context.Context, target types.Target, args string) (*types.JobResult, error)
}

// Options holds runner-wide execution parameters.
type Options struct {
	Workers int
	Timeout time.Duration
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		Workers: 3,
		Timeout: 10 * time.Minute,
	}
}
