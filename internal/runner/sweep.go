package runner

import (
	"context"

	"github.com/YuWang03/cluebench/internal/config"
	"github.com/YuWang03/cluebench/internal/result"
)

type SweepOpts struct {
	Config     *config.Config
	Sweep      config.Sweep
	Algorithms []config.Algorithm
	Trials     int
	Timeout    string // "quick" or "full"

	// OnResult, when set, is called after every (condition, algorithm)
	// cell so the caller can show progress. The runner itself prints
	// nothing.
	OnResult func(algo string, condition float64, rep *Report)
}

// RunSweep measures every (algorithm × condition) pair for one independent
// variable. Conditions form the outer loop and algorithms the inner one, so
// partial progress is visible per condition across all algorithms. A failed
// pair leaves its cell absent and the sweep continues; nothing here aborts
// a sweep.
func RunSweep(ctx context.Context, opts *SweepOpts) *result.Table {
	table := result.NewTable(opts.Sweep.Variable, result.Measured)
	for _, a := range opts.Algorithms {
		table.AddAlgorithm(a.Name)
	}
	for _, v := range opts.Sweep.Values {
		table.AddCondition(v)
	}

	timeout := opts.Config.Timeouts.Full()
	if opts.Timeout == "quick" {
		timeout = opts.Config.Timeouts.Quick()
	}
	trials := opts.Trials
	if trials < 1 {
		trials = opts.Config.Trials
	}

	for _, condition := range opts.Sweep.Values {
		for i := range opts.Algorithms {
			a := &opts.Algorithms[i]
			rep := RunTrials(ctx, &TrialOpts{
				Algorithm:   a,
				ProjectDir:  opts.Config.ProjectDir(a),
				Condition:   condition,
				Metric:      opts.Sweep.Metric,
				Repetitions: trials,
				Timeout:     timeout,
			})
			if rep.Sample != nil {
				table.Put(a.Name, condition, *rep.Sample)
			}
			if opts.OnResult != nil {
				opts.OnResult(a.Name, condition, rep)
			}
		}
	}
	return table
}
