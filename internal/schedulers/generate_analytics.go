package schedulers

import (
	"cpu-scheduler/internal/metrics"
	"cpu-scheduler/internal/responses"
)

// GenerateResponse converts a result into its wire representation.
func GenerateResponse(res Result) responses.ScheduleResponse {
	timeline := make([]responses.SliceResponse, len(res.Timeline))
	for i, s := range res.Timeline {
		timeline[i] = responses.SliceResponse{ProcessId: s.ProcessID, StartTime: s.Start, EndTime: s.End}
	}

	details := make([]responses.ProcessResponse, len(res.Report.Processes))
	for i, p := range res.Report.Processes {
		details[i] = generateProcessDetails(p)
	}

	return responses.ScheduleResponse{
		Algorithm:             res.Algorithm,
		TotalTime:             res.Cpu.TotalTime,
		IdleTime:              res.Cpu.IdleTime,
		ContextSwitches:       res.Timeline.ContextSwitches(),
		AverageWaitingTime:    res.Report.AverageWaitingTime,
		AverageResponseTime:   res.Report.AverageResponseTime,
		AverageTurnAroundTime: res.Report.AverageTurnaroundTime,
		CpuUtilization:        res.Cpu.Utilization(),
		CpuThroughput:         res.Cpu.Throughput(len(details)),
		Timeline:              timeline,
		Details:               details,
	}
}

func generateProcessDetails(p metrics.ProcessMetrics) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      p.ProcessID,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		Priority:       p.Priority,
		StartTime:      p.StartTime,
		FinishTime:     p.FinishTime,
		ExecutionTime:  p.ExecutionSpan,
		ResponseTime:   p.ResponseTime,
		TurnAroundTime: p.TurnaroundTime,
		WaitingTime:    p.WaitingTime,
	}
}
