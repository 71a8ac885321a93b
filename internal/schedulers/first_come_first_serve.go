package schedulers

// NewFirstComeFirstServe orders processes by arrival time, ties by input order.
func NewFirstComeFirstServe() *NonPreemptive {
	return &NonPreemptive{name: AlgorithmFCFS, key: byArrival}
}
