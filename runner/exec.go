package runner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

type Options struct {
	RunAs   string
	Timeout time.Duration
}

type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Exec runs commands and captures their output. A non-zero exit status is
// reported in Result.ExitCode; the returned error is reserved for commands
// that could not be started or did not finish in time.
type Exec struct{}

func (e *Exec) Run(opts Options, name string, args ...string) (Result, error) {
	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	name, args = asUser(opts.RunAs, name, args)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Stdout: strings.TrimRight(stdout.String(), "\n"),
		Stderr: strings.TrimRight(stderr.String(), "\n"),
	}

	if ctx.Err() == context.DeadlineExceeded {
		return result, fmt.Errorf("timed out after %s running %s %s", opts.Timeout, name, strings.Join(args, " "))
	}

	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			return result, fmt.Errorf("failed to execute %s: %s", name, err)
		}
		result.ExitCode = exitCode(exitErr)
	}

	return result, nil
}
