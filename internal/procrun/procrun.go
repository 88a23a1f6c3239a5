// Package procrun executes one external command and captures everything
// about it: output streams, exit status, and harness-measured wall time.
// It knows nothing about metric semantics.
package procrun

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

type State int

const (
	// Completed means the process ran to termination, successfully or not;
	// consult ExitCode.
	Completed State = iota
	// TimedOut means the deadline elapsed and the process was killed.
	TimedOut
	// LaunchFailed means the process never started (missing executable,
	// missing working directory); consult LaunchErr.
	LaunchFailed
)

type Invocation struct {
	Path    string
	Args    []string
	Dir     string
	Timeout time.Duration
}

// Result records one execution. Duration is measured by the harness clock
// and is never taken from anything the subprocess reports.
type Result struct {
	State     State
	ExitCode  int
	Stdout    string
	Stderr    string
	Duration  time.Duration
	LaunchErr string
}

// Run blocks until the process terminates or the timeout elapses. On
// timeout the process is forcibly killed; it is never left running. Launch
// failures come back as a LaunchFailed result, not an error.
func Run(ctx context.Context, inv Invocation) *Result {
	ctx, cancel := context.WithTimeout(ctx, inv.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...)
	cmd.Dir = inv.Dir
	// Reclaim the output pipes even if the killed process leaves
	// grandchildren holding them open.
	cmd.WaitDelay = 5 * time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	res := &Result{
		Stdout:   sanitize(stdout.String()),
		Stderr:   sanitize(stderr.String()),
		Duration: time.Since(start),
	}

	switch {
	case ctx.Err() == context.DeadlineExceeded:
		res.State = TimedOut
	case err == nil:
		res.State = Completed
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.State = Completed
			res.ExitCode = exitErr.ExitCode()
		} else {
			res.State = LaunchFailed
			res.LaunchErr = err.Error()
		}
	}
	return res
}

// sanitize replaces undecodable byte sequences so captured output is always
// valid UTF-8. The algorithms under test mix encodings in their console
// output; a malformed line must never poison the whole capture.
func sanitize(s string) string {
	return strings.ToValidUTF8(s, "�")
}
