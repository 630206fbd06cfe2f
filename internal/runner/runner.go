package runner

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

// Result captures the outcome of one completed command invocation. Stdout
// and Stderr are only populated when the command ran with Capture set.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Options control a single Run call.
type Options struct {
	// RequireSuccess turns a non-zero exit into an *ExitError instead of
	// a populated Result.
	RequireSuccess bool
	// Capture records stdout/stderr into the Result while still streaming
	// them to the Runner's writers.
	Capture bool
	// Dir is the working directory for the command. Empty means inherit.
	Dir string
	// Env is the full environment for the command. Nil means inherit the
	// process environment.
	Env []string
}

// Runner executes external commands. Stdout and Stderr can be set for
// testing; they default to os.Stdout/os.Stderr. Timeout bounds each
// invocation; zero means no deadline.
type Runner struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Timeout time.Duration
}

// New returns a Runner with the given per-command timeout.
func New(timeout time.Duration) *Runner {
	return &Runner{Timeout: timeout}
}

// Run executes argv and waits for completion. argv[0] is resolved on PATH
// first; a miss returns *NotFoundError. With RequireSuccess a non-zero exit
// returns *ExitError carrying the exact exit code and captured output.
// Without it, a fully populated Result is returned regardless of exit code.
func (r *Runner) Run(ctx context.Context, argv []string, opts Options) (*Result, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty command")
	}

	bin, err := exec.LookPath(argv[0])
	if err != nil {
		return nil, &NotFoundError{Name: argv[0]}
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, bin, argv[1:]...)
	cmd.Dir = opts.Dir
	cmd.Env = opts.Env

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	if opts.Capture {
		cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
		cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)
	} else {
		cmd.Stdout = stdout
		cmd.Stderr = stderr
	}

	runErr := cmd.Run()

	result := &Result{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if runErr == nil {
		return result, nil
	}

	if ctx.Err() == context.DeadlineExceeded {
		return nil, &TimeoutError{Argv: argv}
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		if !opts.RequireSuccess {
			return result, nil
		}
		return nil, &ExitError{
			Argv:     argv,
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
		}
	}

	return nil, fmt.Errorf("executing %s: %w", argv[0], runErr)
}

// RunQuiet is Run with output captured but not echoed to the Runner's
// writers. Used for read-only lookups whose raw output is post-processed
// before display.
func (r *Runner) RunQuiet(ctx context.Context, argv []string, opts Options) (*Result, error) {
	quiet := *r
	quiet.Stdout = io.Discard
	quiet.Stderr = io.Discard
	opts.Capture = true
	return quiet.Run(ctx, argv, opts)
}
