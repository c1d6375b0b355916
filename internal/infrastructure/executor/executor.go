package executor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/doeshing/devzap/internal/domain"
	"github.com/doeshing/devzap/internal/ports"
)

// LocalExecutor runs suggested commands on the host shell. It is the only
// component that mutates the host environment.
type LocalExecutor struct {
	shell string
}

// NewLocalExecutor builds a new executor, shell defaults to /bin/sh.
func NewLocalExecutor(shell string) *LocalExecutor {
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}
	return &LocalExecutor{shell: shell}
}

// Shell returns the shell commands are run through.
func (e *LocalExecutor) Shell() string {
	return e.shell
}

// Execute implements ports.CommandExecutor. Spawn failures and non-zero
// exits are folded into the result; the caller reports them, nothing
// escalates.
func (e *LocalExecutor) Execute(ctx context.Context, command string) domain.ExecutionResult {
	c := exec.CommandContext(ctx, e.shell, "-c", command)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	start := time.Now()
	err := c.Run()
	duration := time.Since(start).Milliseconds()

	result := domain.ExecutionResult{
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
		DurationMS: duration,
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.Ran = true
	case errors.As(err, &exitErr):
		// The process spawned; it just failed.
		result.Ran = true
		result.ExitCode = exitErr.ExitCode()
		result.Err = err
	default:
		// Spawn failure: command/shell not found, permission denied.
		result.Err = err
		result.ExitCode = -1
	}
	return result
}

var _ ports.CommandExecutor = (*LocalExecutor)(nil)
