package cli

import (
	"github.com/spf13/cobra"

	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/schedulers"
)

func newCompareCmd(a *app) *cobra.Command {
	var flags workloadFlags

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every algorithm on the same workload and print one summary row each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := flags.workload()
			if err != nil {
				return err
			}
			results, err := schedulers.RunAll(w, flags.options(cmd, a))
			if err != nil {
				return err
			}
			report.WriteComparison(cmd.OutOrStdout(), results)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
