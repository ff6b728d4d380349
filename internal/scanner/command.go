package scanner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/netscapy/netscapy/pkg/types"
)

// CommandResult is the captured outcome of one child process run.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	TimedOut bool
	Err      error
}

// LookBinary verifies that the named binary is discoverable on PATH and
// returns its resolved path.
func LookBinary(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s binary not found in PATH: %w", name, err)
	}
	return path, nil
}

// SplitArgs splits a free-form argument string on whitespace. Quoting is not
// interpreted; arguments are passed to the tool exactly as written.
func SplitArgs(s string) []string {
	return strings.Fields(s)
}

// RunCommand executes the binary with args, capturing stdout and stderr
// separately. The context controls the process lifetime: when it expires the
// process is killed and the result is classified as timed out or canceled.
func RunCommand(ctx context.Context, binary string, args ...string) CommandResult {
	// Binary names come from the tool registry and args from user flags;
	// nothing here passes through a shell.
	cmd := exec.CommandContext(ctx, binary, args...) // #nosec G204

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	res := CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	switch {
	case ctx.Err() == context.DeadlineExceeded:
		res.TimedOut = true
		res.Err = errors.New("tool timed out")
	case ctx.Err() == context.Canceled:
		res.Err = errors.New("scan canceled")
	case err != nil:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			res.Err = fmt.Errorf("exit status %d", res.ExitCode)
		} else {
			res.ExitCode = -1
			res.Err = err
		}
	}
	return res
}

// Apply copies the execution outcome onto a job result and classifies the
// final status. Adapters layer their output parsing on top.
func (c CommandResult) Apply(res *types.JobResult) {
	res.CompletedAt = time.Now()
	res.ExitCode = c.ExitCode

	switch {
	case c.TimedOut:
		res.Status = types.StatusTimeout
		res.Error = c.Err.Error()
	case c.Err != nil:
		res.Status = types.StatusFailed
		if line := lastLine(c.Stderr); line != "" {
			res.Error = fmt.Sprintf("%v: %s", c.Err, line)
		} else {
			res.Error = c.Err.Error()
		}
	default:
		res.Status = types.StatusCompleted
	}
}

// lastLine returns the last non-empty line of s, trimmed.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
