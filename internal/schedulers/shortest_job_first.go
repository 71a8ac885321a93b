package schedulers

// NewShortestJobFirst picks the arrived process with the smallest burst time,
// ties by arrival time and then input order. The chosen job runs to completion.
func NewShortestJobFirst() *NonPreemptive {
	return &NonPreemptive{name: AlgorithmSJF, key: byBurst}
}
