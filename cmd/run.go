package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/YuWang03/cluebench/internal/config"
	"github.com/YuWang03/cluebench/internal/demo"
	"github.com/YuWang03/cluebench/internal/report"
	"github.com/YuWang03/cluebench/internal/result"
	"github.com/YuWang03/cluebench/internal/runner"
)

var (
	flagAlgorithm string
	flagSweep     string
	flagTrials    int
	flagQuick     bool
	flagDemo      bool
	flagRunFormat string
)

var (
	okLine   = color.New(color.FgGreen)
	failLine = color.New(color.FgRed)
	headLine = color.New(color.Bold)
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute the benchmark sweeps",
		RunE:  runBenchmark,
	}
	cmd.Flags().StringVar(&flagAlgorithm, "algorithm", "", "filter to a single algorithm")
	cmd.Flags().StringVar(&flagSweep, "sweep", "", "filter to a single swept variable")
	cmd.Flags().IntVar(&flagTrials, "trials", 0, "override repetition count")
	cmd.Flags().BoolVar(&flagQuick, "quick", false, "single trial per pair with the quick timeout")
	cmd.Flags().BoolVar(&flagDemo, "demo", false, "use synthetic demonstration data instead of live measurement")
	cmd.Flags().StringVar(&flagRunFormat, "format", "table", "report format (table, markdown, json)")
	return cmd
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	trials := cfg.Trials
	if flagTrials > 0 {
		trials = flagTrials
	}
	if flagQuick {
		trials = 1
	}

	runDir, err := result.CreateRunDir(cfg.Results.Dir)
	if err != nil {
		return err
	}
	fmt.Printf("Run directory: %s\n", runDir)

	var tables []*result.Table
	if flagDemo {
		headLine.Println("Using synthetic demonstration data")
		tables = demo.Tables()
	} else {
		tables = runSweeps(cfg, trials)
	}

	for _, table := range tables {
		if err := result.Save(table, result.TablePath(runDir, table.Variable)); err != nil {
			return err
		}
	}

	fmt.Println("\n--- Results ---")
	for _, table := range tables {
		fmt.Println()
		if err := report.Generate(table, flagRunFormat, os.Stdout); err != nil {
			return err
		}
	}
	return nil
}

func runSweeps(cfg *config.Config, trials int) []*result.Table {
	algorithms := filterAlgorithms(cfg.Algorithms, flagAlgorithm)
	sweeps := filterSweeps(cfg.Sweeps, flagSweep)
	timeout := "full"
	if flagQuick {
		timeout = "quick"
	}

	ctx := context.Background()
	var tables []*result.Table
	for _, sweep := range sweeps {
		headLine.Printf("\nSweeping %s over %v (%d trials per pair)\n",
			sweep.Variable, sweep.Values, trials)
		bar := progressbar.NewOptions(len(sweep.Values)*len(algorithms),
			progressbar.OptionSetDescription(sweep.Variable),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
		)

		table := runner.RunSweep(ctx, &runner.SweepOpts{
			Config:     cfg,
			Sweep:      sweep,
			Algorithms: algorithms,
			Trials:     trials,
			Timeout:    timeout,
			OnResult: func(algo string, condition float64, rep *runner.Report) {
				fmt.Println()
				if rep.Sample != nil {
					okLine.Printf("  ✓ %s @ %s=%s: %.2f ms (%d/%d trials)\n",
						algo, sweep.Variable, result.Label(condition),
						rep.Sample.Value, rep.Sample.Succeeded,
						rep.Sample.Succeeded+rep.Sample.Failed)
				} else {
					failLine.Printf("  ✗ %s @ %s=%s: %s (%s)\n",
						algo, sweep.Variable, result.Label(condition),
						rep.First.Outcome, rep.First.Detail)
				}
				bar.Add(1)
			},
		})
		fmt.Println()
		tables = append(tables, table)
	}
	return tables
}

func filterAlgorithms(algos []config.Algorithm, name string) []config.Algorithm {
	if name == "" {
		return algos
	}
	var filtered []config.Algorithm
	for _, a := range algos {
		if a.Name == name {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

func filterSweeps(sweeps []config.Sweep, variable string) []config.Sweep {
	if variable == "" {
		return sweeps
	}
	var filtered []config.Sweep
	for _, s := range sweeps {
		if s.Variable == variable {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
