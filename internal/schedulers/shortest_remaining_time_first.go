package schedulers

// NewShortestRemainingTimeFirst re-evaluates every time unit and runs the process
// with the least remaining time, preempting the running one when a shorter job arrives.
func NewShortestRemainingTimeFirst() *Preemptive {
	return &Preemptive{name: AlgorithmSRTF, key: byRemaining}
}
