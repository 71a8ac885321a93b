package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/schedulers"
)

const algorithmAll = "all"

func newRunCmd(a *app) *cobra.Command {
	var (
		flags     workloadFlags
		algorithm string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate one algorithm and print its Gantt chart and schedule table",
		Example: `  cpusched run -a rr --quantum 2 -i workloads/example.csv
  cpusched run -a all --random 8 --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := flags.workload()
			if err != nil {
				return err
			}
			opts := flags.options(cmd, a)

			var results []schedulers.Result
			if algorithm == algorithmAll {
				results, err = schedulers.RunAll(w, opts)
			} else {
				var s schedulers.Scheduler
				if s, err = schedulers.New(algorithm, opts); err == nil {
					var res schedulers.Result
					res, err = schedulers.Run(s, w)
					results = append(results, res)
				}
			}
			if err != nil {
				return err
			}

			a.logger.Debug("simulated", "processes", w.Len(), "algorithms", len(results))
			for _, res := range results {
				report.WriteResult(cmd.OutOrStdout(), report.Title(res.Algorithm), res)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", schedulers.AlgorithmFCFS,
		fmt.Sprintf("Algorithm: %s or %s", strings.Join(schedulers.Names(), ", "), algorithmAll))

	return cmd
}
