package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YuWang03/cluebench/internal/config"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured algorithms and sweeps",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			fmt.Println("Algorithms:")
			for i := range cfg.Algorithms {
				a := &cfg.Algorithms[i]
				fmt.Printf("  - %s (%s: %s in %s)\n", a.Name, a.Runtime, a.Entrypoint, cfg.ProjectDir(a))
			}
			fmt.Println("\nSweeps:")
			for _, s := range cfg.Sweeps {
				fmt.Printf("  - %s over %v [%s]\n", s.Variable, s.Values, s.Metric)
			}
			return nil
		},
	}
}
