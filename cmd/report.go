package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/YuWang03/cluebench/internal/config"
	"github.com/YuWang03/cluebench/internal/report"
	"github.com/YuWang03/cluebench/internal/result"
)

var flagFormat string

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [run-dir]",
		Short: "Generate summary from stored results",
		RunE: func(cmd *cobra.Command, args []string) error {
			var runDir string
			if len(args) > 0 {
				resolved, err := filepath.EvalSymlinks(args[0])
				if err != nil {
					return fmt.Errorf("resolving run dir: %w", err)
				}
				runDir = resolved
			} else {
				cfg, err := config.Load(cfgFile)
				if err != nil {
					return err
				}
				runDir, err = result.LatestRunDir(cfg.Results.Dir)
				if err != nil {
					return err
				}
			}

			paths, err := filepath.Glob(filepath.Join(runDir, "*.json"))
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no result documents in %s", runDir)
			}
			sort.Strings(paths)

			for i, path := range paths {
				table, err := result.Load(path)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Println()
				}
				if err := report.Generate(table, flagFormat, os.Stdout); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&flagFormat, "format", "table", "output format (table, markdown, json)")
	return cmd
}
