package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/YuWang03/cluebench/internal/config"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that every configured algorithm project is runnable",
		Long:  "Verify each algorithm's project directory, compiled classes, and map file exist before committing to a long benchmark run.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			failures := 0
			for i := range cfg.Algorithms {
				a := &cfg.Algorithms[i]
				headLine.Printf("%s\n", a.Name)
				dir := cfg.ProjectDir(a)

				checks := []struct {
					label string
					path  string
					dir   bool
				}{
					{"project dir", dir, true},
					{"map file", filepath.Join(dir, a.MapFile), false},
				}
				if a.Runtime == "java" {
					checks = append(checks, struct {
						label string
						path  string
						dir   bool
					}{"bin dir", filepath.Join(dir, "bin"), true})
				}

				for _, c := range checks {
					info, err := os.Stat(c.path)
					switch {
					case err != nil:
						failLine.Printf("  ✗ %s: %s\n", c.label, c.path)
						failures++
					case c.dir && !info.IsDir():
						failLine.Printf("  ✗ %s: %s is not a directory\n", c.label, c.path)
						failures++
					default:
						okLine.Printf("  ✓ %s: %s\n", c.label, c.path)
					}
				}
			}

			if failures > 0 {
				return fmt.Errorf("%d check(s) failed", failures)
			}
			fmt.Printf("\nAll %d algorithm(s) ready.\n", len(cfg.Algorithms))
			return nil
		},
	}
}
