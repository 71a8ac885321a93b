package requests

import "cpu-scheduler/internal/core"

type Job struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
}

// ScheduleRequests is the body of every scheduling endpoint. TimeQuantum and
// LevelsTimeQuantum override the configured defaults when present.
type ScheduleRequests struct {
	Jobs              []Job `json:"jobs"`
	TimeQuantum       *int  `json:"time_quantum,omitempty"`
	LevelsTimeQuantum []int `json:"levels_time_quantum,omitempty"`
}

// Descriptors converts the jobs into workload descriptors, keeping their order.
func (r *ScheduleRequests) Descriptors() []core.Descriptor {
	descs := make([]core.Descriptor, len(r.Jobs))
	for i, job := range r.Jobs {
		descs[i] = core.Descriptor{
			ID:          job.ProcessId,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
			Priority:    job.Priority,
		}
	}
	return descs
}

// FromDescriptors builds a request body for the given workload.
func FromDescriptors(descs []core.Descriptor) ScheduleRequests {
	jobs := make([]Job, len(descs))
	for i, d := range descs {
		jobs[i] = Job{ProcessId: d.ID, ArrivalTime: d.ArrivalTime, BurstTime: d.BurstTime, Priority: d.Priority}
	}
	return ScheduleRequests{Jobs: jobs}
}
