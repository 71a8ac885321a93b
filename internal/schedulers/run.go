package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/metrics"
)

// Result is everything one simulation pass produces.
type Result struct {
	Algorithm string
	Timeline  core.Timeline
	Cpu       core.CpuMetric
	Report    metrics.Report
}

// Run schedules w with s and calculates the metrics of the completed run.
// No result is returned when the workload or the scheduler parameters are invalid.
func Run(s Scheduler, w *core.Workload) (Result, error) {
	timeline, err := s.Schedule(w)
	if err != nil {
		return Result{}, err
	}
	if err := timeline.Validate(); err != nil {
		return Result{}, fmt.Errorf("%s: %w", s.Name(), err)
	}
	report, err := metrics.Calculate(w.Processes())
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", s.Name(), err)
	}
	return Result{
		Algorithm: s.Name(),
		Timeline:  timeline,
		Cpu:       core.MeasureCpu(timeline),
		Report:    report,
	}, nil
}

// RunAll runs every registered algorithm against the same workload, one after another.
func RunAll(w *core.Workload, opts Options) ([]Result, error) {
	names := Names()
	results := make([]Result, 0, len(names))
	for _, name := range names {
		s, err := New(name, opts)
		if err != nil {
			return nil, err
		}
		res, err := Run(s, w)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
