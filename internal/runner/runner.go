package runner

import (
	"context"
	"errors"
)

// ErrBinaryNotFound reports that the external command is not installed or
// not reachable through PATH.
var ErrBinaryNotFound = errors.New("binary not found")

// Result holds everything captured from one finished command.
type Result struct {
	Lines    []string // trimmed output lines, stderr merged into stdout
	ExitCode int      // process exit code, -1 when the process did not exit normally
}

// CommandRunner starts one external process and streams its combined output.
// Implementations call onLine sequentially for every captured line when the
// callback is non-nil.
type CommandRunner interface {
	Run(ctx context.Context, name string, args []string, onLine func(string)) (*Result, error)
}
