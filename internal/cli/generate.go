package cli

import (
	"github.com/spf13/cobra"

	"cpu-scheduler/internal/workload"
)

func newGenerateCmd() *cobra.Command {
	var (
		count  int
		seed   int64
		format string
		opts   workload.GenerateOptions
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random workload file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Count, opts.Seed = count, seed
			descs, err := workload.Generate(opts)
			if err != nil {
				return err
			}
			return workload.Write(cmd.OutOrStdout(), format, descs)
		},
	}

	defaults := workload.DefaultGenerateOptions(0, 0)
	cmd.Flags().IntVarP(&count, "count", "n", 5, "Number of processes")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "Output format (csv, yaml, json)")
	cmd.Flags().IntVar(&opts.MaxArrival, "max-arrival", defaults.MaxArrival, "Latest arrival time")
	cmd.Flags().IntVar(&opts.MaxBurst, "max-burst", defaults.MaxBurst, "Longest burst")
	cmd.Flags().IntVar(&opts.MaxPriority, "max-priority", defaults.MaxPriority, "Largest priority value")

	return cmd
}
