// Package runner drives the benchmark: repeated trials of one algorithm
// under one condition, and sweeps of trials across a parameter range.
// Execution is strictly sequential; concurrent trials would contend for
// CPU and skew the timings.
package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/YuWang03/cluebench/internal/config"
	"github.com/YuWang03/cluebench/internal/procrun"
	"github.com/YuWang03/cluebench/internal/result"
)

type Outcome int

const (
	Success Outcome = iota
	ParseFailure
	ProcessFailure
	Timeout
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case ParseFailure:
		return "parse_failure"
	case ProcessFailure:
		return "process_failure"
	case Timeout:
		return "timeout"
	}
	return "unknown"
}

// Trial is one execution attempt. Detail carries the failure reason or an
// output snippet for diagnosis; it is empty on success.
type Trial struct {
	Outcome Outcome
	Value   float64
	Detail  string
	Elapsed time.Duration
}

type TrialOpts struct {
	Algorithm   *config.Algorithm
	ProjectDir  string
	Condition   float64
	Metric      string
	Repetitions int
	Timeout     time.Duration
}

// Report is the outcome of all repetitions for one (algorithm, condition)
// pair. Sample is nil when every repetition failed — absence, not zero.
// First is the first repetition's outcome verbatim, so operators can see
// why a configuration failed rather than just that it failed.
type Report struct {
	Sample *result.Sample
	First  Trial
	Trials []Trial
}

// RunTrials performs the repetitions sequentially in increasing index
// order, so warm-up effects stay observable in the raw trial list.
func RunTrials(ctx context.Context, opts *TrialOpts) *Report {
	reps := opts.Repetitions
	if reps < 1 {
		reps = 1
	}

	rep := &Report{}
	var values []float64
	for i := 0; i < reps; i++ {
		tr := runOnce(ctx, opts)
		rep.Trials = append(rep.Trials, tr)
		if i == 0 {
			rep.First = tr
		}
		if tr.Outcome == Success {
			values = append(values, tr.Value)
		}
	}

	if len(values) > 0 {
		rep.Sample = &result.Sample{
			Value:     median(values),
			Succeeded: len(values),
			Failed:    reps - len(values),
		}
	}
	return rep
}

func runOnce(ctx context.Context, opts *TrialOpts) Trial {
	inv, err := BuildInvocation(opts.Algorithm, opts.ProjectDir, opts.Condition, opts.Timeout)
	if err != nil {
		return Trial{Outcome: ProcessFailure, Detail: err.Error()}
	}

	res := procrun.Run(ctx, inv)
	tr := Trial{Elapsed: res.Duration}
	switch res.State {
	case procrun.TimedOut:
		tr.Outcome = Timeout
		tr.Detail = fmt.Sprintf("killed after %s", opts.Timeout)
		return tr
	case procrun.LaunchFailed:
		tr.Outcome = ProcessFailure
		tr.Detail = res.LaunchErr
		return tr
	}
	if res.ExitCode != 0 {
		tr.Outcome = ProcessFailure
		tr.Detail = fmt.Sprintf("exit code %d: %s", res.ExitCode, snippet(res.Stderr))
		return tr
	}

	value, ok := opts.Algorithm.Metrics[opts.Metric].Extract(res.Stdout)
	if !ok {
		tr.Outcome = ParseFailure
		tr.Detail = fmt.Sprintf("no %s value recognized in output: %s", opts.Metric, snippet(res.Stdout))
		return tr
	}
	tr.Outcome = Success
	tr.Value = value
	return tr
}

// BuildInvocation assembles the command line for one run:
// <runtime> -cp <bin[:lib/*.jar]> <entrypoint> <map-file> [mode-flag]
// [condition]. The JVM classpath flag is skipped for non-java runtimes,
// which invoke the entrypoint directly. A missing bin directory is a
// launch failure for that trial, not for the sweep.
func BuildInvocation(a *config.Algorithm, projectDir string, condition float64, timeout time.Duration) (procrun.Invocation, error) {
	var args []string
	if a.Runtime == "java" {
		binDir := filepath.Join(projectDir, "bin")
		if _, err := os.Stat(binDir); err != nil {
			return procrun.Invocation{}, fmt.Errorf("bin directory not found: %s", binDir)
		}
		classpath := binDir
		jars, _ := filepath.Glob(filepath.Join(projectDir, "lib", "*.jar"))
		sort.Strings(jars)
		for _, jar := range jars {
			classpath += string(os.PathListSeparator) + jar
		}
		args = append(args, "-cp", classpath)
	}
	args = append(args, a.Entrypoint, filepath.Join(projectDir, a.MapFile))
	if a.ModeFlag != "" {
		args = append(args, a.ModeFlag)
	}
	if a.PassCondition {
		args = append(args, result.Label(condition))
	}
	return procrun.Invocation{
		Path:    a.Runtime,
		Args:    args,
		Dir:     projectDir,
		Timeout: timeout,
	}, nil
}

// median with the usual interpolation: an even count averages the two
// middle values.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

func snippet(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 200 {
		return s[:200] + "…"
	}
	if s == "" {
		return "(empty)"
	}
	return s
}
