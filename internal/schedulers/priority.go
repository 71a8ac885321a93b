package schedulers

// NewPriority picks the arrived process with the lowest priority value,
// ties by arrival time and then input order. The chosen job runs to completion.
func NewPriority() *NonPreemptive {
	return &NonPreemptive{name: AlgorithmPriority, key: byPriority}
}
