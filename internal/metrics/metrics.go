// Package metrics derives per-process and aggregate timing figures from a completed run.
package metrics

import (
	"errors"
	"fmt"

	"cpu-scheduler/internal/core"
)

var ErrIncompleteRun = errors.New("incomplete run")

// ProcessMetrics holds the derived timings of one finished process.
type ProcessMetrics struct {
	ProcessID      int
	ArrivalTime    int
	BurstTime      int
	Priority       int
	StartTime      int
	FinishTime     int
	ExecutionSpan  int // FinishTime - StartTime
	TurnaroundTime int
	WaitingTime    int
	ResponseTime   int
}

// Report is the result of Calculate, in the input order of the processes.
type Report struct {
	Processes             []ProcessMetrics
	AverageTurnaroundTime float64
	AverageWaitingTime    float64
	AverageResponseTime   float64
}

// Calculate computes turnaround and waiting time for every process plus their means.
// Every process must be finished; an empty set yields an empty report.
func Calculate(processes []core.Process) (Report, error) {
	details := make([]ProcessMetrics, 0, len(processes))
	for i := range processes {
		p := &processes[i]
		if !p.Finished() {
			return Report{}, fmt.Errorf("%w: process %d has no finish time", ErrIncompleteRun, p.ID)
		}
		details = append(details, ProcessMetrics{
			ProcessID:      p.ID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			StartTime:      p.StartTime,
			FinishTime:     p.FinishTime,
			ExecutionSpan:  p.FinishTime - p.StartTime,
			TurnaroundTime: p.TurnaroundTime(),
			WaitingTime:    p.WaitingTime(),
			ResponseTime:   p.ResponseTime(),
		})
	}

	report := Report{Processes: details}
	report.AverageWaitingTime, report.AverageResponseTime, report.AverageTurnaroundTime = CalculateAverage(details)
	return report, nil
}

// CalculateAverage returns the arithmetic means over details, all zero when details is empty.
func CalculateAverage(details []ProcessMetrics) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(details) == 0 {
		return
	}

	var waitingTimeSum, responseTimeSum, turnAroundTimeSum int
	for _, d := range details {
		waitingTimeSum += d.WaitingTime
		responseTimeSum += d.ResponseTime
		turnAroundTimeSum += d.TurnaroundTime
	}

	count := float64(len(details))
	averageWaitingTime = float64(waitingTimeSum) / count
	averageResponseTime = float64(responseTimeSum) / count
	averageTurnAroundTime = float64(turnAroundTimeSum) / count
	return
}
