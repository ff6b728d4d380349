package scanner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/netscapy/netscapy/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommand_CapturesOutput(t *testing.T) {
	res := RunCommand(context.Background(), "sh", "-c", "echo hello; echo oops >&2")
	require.NoError(t, res.Err)
	assert.Equal(t, "hello\n", res.Stdout)
	assert.Equal(t, "oops\n", res.Stderr)
	assert.Equal(t, 0, res.ExitCode)
	assert.False(t, res.TimedOut)
}

func TestRunCommand_NonZeroExit(t *testing.T) {
	res := RunCommand(context.Background(), "sh", "-c", "echo broken >&2; exit 3")
	require.Error(t, res.Err)
	assert.Equal(t, 3, res.ExitCode)
	assert.False(t, res.TimedOut)
}

func TestRunCommand_Timeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	res := RunCommand(ctx, "sleep", "10")
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.True(t, res.TimedOut)
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "timed out")
}

func TestRunCommand_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	res := RunCommand(ctx, "sleep", "10")
	assert.False(t, res.TimedOut)
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "canceled")
}

func TestRunCommand_MissingBinary(t *testing.T) {
	res := RunCommand(context.Background(), "netscapy-no-such-binary")
	require.Error(t, res.Err)
	assert.Equal(t, -1, res.ExitCode)
}

func TestLookBinary(t *testing.T) {
	path, err := LookBinary("sh")
	require.NoError(t, err)
	assert.NotEmpty(t, path)
}

func TestLookBinary_Missing(t *testing.T) {
	_, err := LookBinary("netscapy-no-such-binary")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found in PATH")
}

func TestSplitArgs(t *testing.T) {
	assert.Equal(t, []string{"-sV", "-sC", "-T4"}, SplitArgs("-sV -sC -T4"))
	assert.Empty(t, SplitArgs("   "))
	assert.Empty(t, SplitArgs(""))
}

func TestCommandResult_Apply_Success(t *testing.T) {
	res := &types.JobResult{StartedAt: time.Now()}
	CommandResult{Stdout: "output"}.Apply(res)

	assert.Equal(t, types.StatusCompleted, res.Status)
	assert.Empty(t, res.Error)
	assert.False(t, res.CompletedAt.IsZero())
}

func TestCommandResult_Apply_Timeout(t *testing.T) {
	res := &types.JobResult{}
	CommandResult{TimedOut: true, Err: errors.New("tool timed out")}.Apply(res)

	assert.Equal(t, types.StatusTimeout, res.Status)
	assert.Equal(t, "tool timed out", res.Error)
}

func TestCommandResult_Apply_StderrInError(t *testing.T) {
	res := &types.JobResult{}
	CommandResult{
		Err:      errors.New("exit status 1"),
		ExitCode: 1,
		Stderr:   "warming up\nfatal: bad flag\n",
	}.Apply(res)

	assert.Equal(t, types.StatusFailed, res.Status)
	assert.Contains(t, res.Error, "exit status 1")
	assert.Contains(t, res.Error, "fatal: bad flag")
	assert.Equal(t, 1, res.ExitCode)
}
