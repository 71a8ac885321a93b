package responses

import "time"

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	Priority       int `json:"priority"`
	StartTime      int `json:"start_time"`
	FinishTime     int `json:"finish_time"`
	ExecutionTime  int `json:"execution_time"`
	ResponseTime   int `json:"response_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
}

type SliceResponse struct {
	ProcessId int `json:"process_id"`
	StartTime int `json:"start_time"`
	EndTime   int `json:"end_time"`
}

type ScheduleResponse struct {
	RunId                 string            `json:"run_id,omitempty"`
	Algorithm             string            `json:"algorithm"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	ContextSwitches       int               `json:"context_switches"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Timeline              []SliceResponse   `json:"timeline"`
	Details               []ProcessResponse `json:"details"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// RunResponse is a stored run as returned by the run history endpoints.
type RunResponse struct {
	RunId     string            `json:"run_id"`
	Algorithm string            `json:"algorithm"`
	CreatedAt time.Time         `json:"created_at"`
	Jobs      int               `json:"jobs"`
	Result    *ScheduleResponse `json:"result,omitempty"`
}
