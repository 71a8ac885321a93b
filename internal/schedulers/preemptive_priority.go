package schedulers

// NewPreemptivePriority re-evaluates every time unit and runs the most urgent process.
// A newly arrived process with a strictly lower priority value preempts at its arrival instant.
func NewPreemptivePriority() *Preemptive {
	return &Preemptive{name: AlgorithmPreemptivePriority, key: byPriority}
}
