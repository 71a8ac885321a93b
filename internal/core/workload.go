package core

import (
	"errors"
	"fmt"
)

var ErrInvalidWorkload = errors.New("invalid workload")

// Workload is the single authoritative store of processes for a simulation.
// Processes keep their input order; that index doubles as the final tie-break key,
// and queues refer to processes by index only.
type Workload struct {
	procs []Process
	index map[int]int
}

// NewWorkload validates the descriptors and builds a workload ready to be scheduled.
func NewWorkload(descriptors []Descriptor) (*Workload, error) {
	if len(descriptors) == 0 {
		return nil, fmt.Errorf("%w: no processes", ErrInvalidWorkload)
	}

	w := &Workload{
		procs: make([]Process, 0, len(descriptors)),
		index: make(map[int]int, len(descriptors)),
	}
	for _, d := range descriptors {
		if d.BurstTime <= 0 {
			return nil, fmt.Errorf("%w: process %d has burst time %d", ErrInvalidWorkload, d.ID, d.BurstTime)
		}
		if d.ArrivalTime < 0 {
			return nil, fmt.Errorf("%w: process %d has arrival time %d", ErrInvalidWorkload, d.ID, d.ArrivalTime)
		}
		if _, dup := w.index[d.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate process id %d", ErrInvalidWorkload, d.ID)
		}
		w.index[d.ID] = len(w.procs)
		w.procs = append(w.procs, newProcess(d))
	}
	return w, nil
}

// Len returns the number of processes.
func (w *Workload) Len() int { return len(w.procs) }

// At returns the process stored at index i. The pointer aliases the workload's storage.
func (w *Workload) At(i int) *Process { return &w.procs[i] }

// Lookup returns the process with the given id.
func (w *Workload) Lookup(id int) (*Process, bool) {
	i, ok := w.index[id]
	if !ok {
		return nil, false
	}
	return &w.procs[i], true
}

// Reset restores every process to its pre-run state.
func (w *Workload) Reset() {
	for i := range w.procs {
		w.procs[i].reset()
	}
}

// Processes returns a snapshot of all processes in input order.
func (w *Workload) Processes() []Process {
	out := make([]Process, len(w.procs))
	copy(out, w.procs)
	return out
}

// Descriptors returns the input descriptors in input order.
func (w *Workload) Descriptors() []Descriptor {
	out := make([]Descriptor, len(w.procs))
	for i := range w.procs {
		out[i] = w.procs[i].Descriptor
	}
	return out
}

// TotalBurst is the sum of every process's burst time.
func (w *Workload) TotalBurst() int {
	total := 0
	for i := range w.procs {
		total += w.procs[i].BurstTime
	}
	return total
}

// MaxBurst is the largest burst time in the workload.
func (w *Workload) MaxBurst() int {
	longest := 0
	for i := range w.procs {
		if w.procs[i].BurstTime > longest {
			longest = w.procs[i].BurstTime
		}
	}
	return longest
}
