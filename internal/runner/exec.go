package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Scanner buffer sizing for long spotdl output lines
const (
	InitialScanBufferSize = 64 * 1024
	MaxScanBufferSize     = 1024 * 1024
)

// ExecRunner runs commands with os/exec, merging stderr into stdout so the
// captured line sequence matches what a terminal user would see.
type ExecRunner struct{}

// NewExecRunner creates a new process runner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts the command and blocks until it exits or ctx is canceled.
// Every output line is trimmed, collected into the result, and passed to
// onLine as it arrives. A non-zero exit is not an error; the exit code is
// reported in the result so the caller can classify the captured output.
// On cancellation the partial result is returned together with the context
// error.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string, onLine func(string)) (*Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout pipe: %w", err)
	}
	// StdoutPipe wired cmd.Stdout to the pipe's write end; sharing it keeps
	// both streams in one ordered sequence.
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrBinaryNotFound, name)
		}
		return nil, fmt.Errorf("failed to start %s: %w", name, err)
	}

	result := &Result{Lines: []string{}}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, InitialScanBufferSize), MaxScanBufferSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		result.Lines = append(result.Lines, line)
		if onLine != nil {
			onLine(line)
		}
	}

	err = cmd.Wait()
	switch {
	case err == nil:
		result.ExitCode = 0
	case ctx.Err() != nil:
		result.ExitCode = -1
		return result, ctx.Err()
	default:
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			result.ExitCode = -1
			return result, fmt.Errorf("command %s did not finish: %w", name, err)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	return result, nil
}
