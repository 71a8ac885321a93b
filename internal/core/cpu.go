package core

// CpuMetric summarises how the single simulated CPU spent its logical time.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Utilization is UtilizationTime / TotalTime, or 0 when nothing ran.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Throughput is completed processes per unit of logical time.
func (m CpuMetric) Throughput(completed int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(completed) / float64(m.TotalTime)
}

// MeasureCpu derives the CPU metric from a timeline.
func MeasureCpu(t Timeline) CpuMetric {
	return CpuMetric{
		TotalTime:       t.Makespan(),
		UtilizationTime: t.Duration(),
		IdleTime:        t.IdleTime(),
	}
}
