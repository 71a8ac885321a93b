package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/workload"
)

// workloadFlags are shared by the commands that simulate a workload.
type workloadFlags struct {
	input   string
	random  int
	seed    int64
	quantum int
	levels  []int
}

func (f *workloadFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Workload file (.csv, .yaml, .json)")
	cmd.Flags().IntVar(&f.random, "random", 0, "Generate this many random processes instead of reading a file")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "Seed for --random")
	cmd.Flags().IntVar(&f.quantum, "quantum", 0, "Round robin time quantum (default from config)")
	cmd.Flags().IntSliceVar(&f.levels, "levels", nil, "Multilevel feedback queue quanta, e.g. 4,8 (default from config)")
}

func (f *workloadFlags) workload() (*core.Workload, error) {
	var (
		descs []core.Descriptor
		err   error
	)
	switch {
	case f.input != "":
		descs, err = workload.Load(f.input)
	case f.random > 0:
		descs, err = workload.Generate(workload.DefaultGenerateOptions(f.random, f.seed))
	default:
		return nil, errors.New("either --input or --random is required")
	}
	if err != nil {
		return nil, err
	}
	return core.NewWorkload(descs)
}

func (f *workloadFlags) options(cmd *cobra.Command, a *app) schedulers.Options {
	opts := a.cfg.SchedulerOptions()
	if cmd.Flags().Changed("quantum") {
		opts.TimeQuantum = f.quantum
	}
	if cmd.Flags().Changed("levels") {
		opts.LevelsTimeQuantum = f.levels
	}
	opts.Logger = a.logger
	return opts
}
