package core

// Unset marks a StartTime or FinishTime whose defining event has not happened yet.
const Unset = -1

// Descriptor is the immutable description of one process in a workload.
type Descriptor struct {
	ID          int `json:"process_id" yaml:"id"`
	ArrivalTime int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int `json:"burst_time" yaml:"burst_time"`
	Priority    int `json:"priority" yaml:"priority"`
}

// Process is a Descriptor plus the scheduling state mutated by an engine during one run.
// Lower Priority values are more urgent.
type Process struct {
	Descriptor

	RemainingTime int
	StartTime     int
	FinishTime    int
}

func newProcess(d Descriptor) Process {
	p := Process{Descriptor: d}
	p.reset()
	return p
}

func (p *Process) reset() {
	p.RemainingTime = p.BurstTime
	p.StartTime = Unset
	p.FinishTime = Unset
}

// Started reports whether the process has been dispatched at least once.
func (p *Process) Started() bool { return p.StartTime != Unset }

// Finished reports whether the process has completed its burst.
func (p *Process) Finished() bool { return p.FinishTime != Unset }

// Dispatch records the first dispatch instant. Later calls are no-ops.
func (p *Process) Dispatch(clock int) {
	if !p.Started() {
		p.StartTime = clock
	}
}

// Run consumes up to units of CPU time and returns how many were used.
// The process is finished when its remaining time reaches zero at clock+used.
func (p *Process) Run(clock, units int) int {
	if units > p.RemainingTime {
		units = p.RemainingTime
	}
	p.RemainingTime -= units
	if p.RemainingTime == 0 && !p.Finished() {
		p.FinishTime = clock + units
	}
	return units
}

// TurnaroundTime is FinishTime - ArrivalTime. Only meaningful once Finished.
func (p *Process) TurnaroundTime() int { return p.FinishTime - p.ArrivalTime }

// WaitingTime is TurnaroundTime - BurstTime. Only meaningful once Finished.
func (p *Process) WaitingTime() int { return p.TurnaroundTime() - p.BurstTime }

// ResponseTime is StartTime - ArrivalTime. Only meaningful once Started.
func (p *Process) ResponseTime() int { return p.StartTime - p.ArrivalTime }
