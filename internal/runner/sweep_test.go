package runner_test

import (
	"context"
	"testing"

	"github.com/YuWang03/cluebench/internal/config"
	"github.com/YuWang03/cluebench/internal/extract"
	"github.com/YuWang03/cluebench/internal/result"
	"github.com/YuWang03/cluebench/internal/runner"
)

func TestRunSweepSparseOnPartialFailure(t *testing.T) {
	x := fakeAlgo(t, "X", `echo "Time: 5 ms"`)
	// Y fails only when the swept condition is 3 ($2 is the condition).
	y := fakeAlgo(t, "Y", `
if [ "$2" = "3" ]; then exit 1; fi
echo "Time: 10 ms"
`)
	y.PassCondition = true

	cfg := &config.Config{
		Timeouts:  config.Timeouts{QuickS: 10, FullS: 10},
		Trials:    1,
		Workspace: ".",
	}
	sweep := config.Sweep{
		Variable: "clues",
		Values:   []float64{2, 3, 4},
		Metric:   extract.KindDuration,
	}

	var calls int
	table := runner.RunSweep(context.Background(), &runner.SweepOpts{
		Config:     cfg,
		Sweep:      sweep,
		Algorithms: []config.Algorithm{x, y},
		Trials:     1,
		Timeout:    "quick",
		OnResult: func(algo string, condition float64, rep *runner.Report) {
			calls++
		},
	})

	if calls != 6 {
		t.Errorf("OnResult calls: got %d, want 6", calls)
	}
	if table.Variable != "clues" || table.Provenance != result.Measured {
		t.Errorf("table header: %q/%q", table.Variable, table.Provenance)
	}
	if table.Len() != 5 {
		t.Errorf("samples: got %d, want 5 of 6", table.Len())
	}
	if _, ok := table.Get("Y", 3); ok {
		t.Error("expected (Y, 3) to be absent")
	}
	for _, cond := range []float64{2, 3, 4} {
		if s, ok := table.Get("X", cond); !ok || s.Value != 5 {
			t.Errorf("(X, %v): got (%+v, %v)", cond, s, ok)
		}
	}
	// Both algorithms and all conditions keep their declared positions
	// even with the failed cell.
	algos := table.Algorithms()
	if len(algos) != 2 || algos[0] != "X" || algos[1] != "Y" {
		t.Errorf("algorithms: %v", algos)
	}
	conds := table.Conditions()
	if len(conds) != 3 || conds[0] != 2 || conds[2] != 4 {
		t.Errorf("conditions: %v", conds)
	}
}
