// ABOUTME: Runner capability for executing an argv and capturing exit code + stdout
// ABOUTME: ExecRunner is the os/exec implementation with a timeout and process-group kill

package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"
)

// DefaultTimeout bounds a single probe command.
const DefaultTimeout = 5 * time.Second

// ErrEmptyCommand is returned when Run is called without an argv.
var ErrEmptyCommand = errors.New("process: empty command")

// Result is the outcome of a finished command. A non-zero ExitCode is a
// normal result, not an error.
type Result struct {
	ExitCode int
	Stdout   string
}

// Runner executes an argv vector and captures its standard output.
type Runner interface {
	Run(ctx context.Context, argv ...string) (Result, error)
}

// RunnerFunc adapts a plain function to the Runner interface.
type RunnerFunc func(ctx context.Context, argv ...string) (Result, error)

// Run calls f(ctx, argv...).
func (f RunnerFunc) Run(ctx context.Context, argv ...string) (Result, error) {
	return f(ctx, argv...)
}

// ExecRunner runs commands with os/exec. Stderr is discarded.
type ExecRunner struct {
	// Timeout overrides DefaultTimeout when positive.
	Timeout time.Duration
	// Stdin is attached to the child so tty-bound commands (stty) can see
	// the terminal. Nil means the null device.
	Stdin io.Reader
}

// NewExecRunner returns an ExecRunner wired to the process's stdin.
func NewExecRunner(timeout time.Duration) *ExecRunner {
	return &ExecRunner{Timeout: timeout, Stdin: os.Stdin}
}

// Run executes argv[0] with the remaining arguments. It returns an error
// only when the command cannot be started or the timeout expires.
func (r *ExecRunner) Run(ctx context.Context, argv ...string) (Result, error) {
	if len(argv) == 0 {
		return Result{}, ErrEmptyCommand
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = r.Stdin
	setProcGroup(cmd)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	cmd.Cancel = func() error {
		return killProcGroup(cmd)
	}

	runErr := cmd.Run()

	switch err := ctx.Err(); {
	case errors.Is(err, context.DeadlineExceeded):
		return Result{}, fmt.Errorf("command %q timed out after %v: %w", argv[0], timeout, err)
	case err != nil:
		return Result{}, fmt.Errorf("command %q canceled: %w", argv[0], err)
	}

	var exitErr *exec.ExitError
	switch {
	case runErr == nil:
		return Result{ExitCode: 0, Stdout: stdout.String()}, nil
	case errors.As(runErr, &exitErr):
		return Result{ExitCode: exitErr.ExitCode(), Stdout: stdout.String()}, nil
	default:
		return Result{}, fmt.Errorf("running %q: %w", argv[0], runErr)
	}
}
