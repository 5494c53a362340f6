package agent

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Failure classes for external process execution.
var (
	ErrSpawnFailed   = errors.New("agent: spawn failed")
	ErrTimeout       = errors.New("agent: timeout")
	ErrAbnormalExit  = errors.New("agent: abnormal exit")
	ErrEmptyResponse = errors.New("agent: empty response")
)

// How long after killing a timed-out process we wait for its pipes to drain
// before giving up on them.
const waitDelay = 5 * time.Second

// RunResult is the captured output of a completed process.
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// runFunc is the seam between agents and real process execution, so agent
// behavior can be tested without spawning anything.
type runFunc func(ctx context.Context, timeout time.Duration, name string, args ...string) (RunResult, error)

// Run spawns name with args (no shell, no stdin), captures stdout and stderr
// fully, and enforces timeout. On timeout the process is killed before Run
// returns and no partial output is reported. Errors wrap ErrSpawnFailed,
// ErrTimeout or ErrAbnormalExit.
func Run(ctx context.Context, timeout time.Duration, name string, args ...string) (RunResult, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	err := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return RunResult{}, fmt.Errorf("%w: %s did not finish within %s", ErrTimeout, name, timeout)
	}
	if ctx.Err() == context.Canceled {
		return RunResult{}, fmt.Errorf("agent: run cancelled: %w", context.Canceled)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			return RunResult{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: code},
				fmt.Errorf("%w: %s exited with status %d: %s", ErrAbnormalExit, name, code, strings.TrimSpace(stderr.String()))
		}
		return RunResult{}, fmt.Errorf("%w: %s: %v", ErrSpawnFailed, name, err)
	}
	return RunResult{Stdout: stdout.String(), Stderr: stderr.String()}, nil
}
