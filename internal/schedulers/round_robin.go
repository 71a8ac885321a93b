package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
)

// RoundRobin serves a strict FIFO ready queue, granting each dispatch at most
// TimeQuantum units. Every slice is its own timeline entry.
type RoundRobin struct {
	traced
	timeQuantum int
}

// NewRoundRobin returns a round robin scheduler. timeQuantum must be positive.
func NewRoundRobin(timeQuantum int) (*RoundRobin, error) {
	if timeQuantum <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuantum, timeQuantum)
	}
	return &RoundRobin{timeQuantum: timeQuantum}, nil
}

func (s *RoundRobin) Name() string { return AlgorithmRoundRobin }

// TimeQuantum returns the slice length.
func (s *RoundRobin) TimeQuantum() int { return s.timeQuantum }

func (s *RoundRobin) Schedule(w *core.Workload) (core.Timeline, error) {
	if s.timeQuantum <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuantum, s.timeQuantum)
	}
	if err := checkWorkload(w); err != nil {
		return nil, err
	}
	w.Reset()
	log := s.log().With("algorithm", AlgorithmRoundRobin, "time_quantum", s.timeQuantum)

	pending := newPendingQueue(w)
	var ready fifoQueue
	timeline := make(core.Timeline, 0, w.Len())

	clock := 0
	for pending.Len() > 0 || ready.Len() > 0 {
		pending.admit(clock, ready.push)
		if ready.Len() == 0 {
			log.Debug("cpu idle", "from", clock, "to", pending.nextArrival())
			clock = pending.nextArrival()
			continue
		}

		i := ready.pop()
		p := w.At(i)
		p.Dispatch(clock)
		used := p.Run(clock, s.timeQuantum)
		timeline = append(timeline, core.Slice{ProcessID: p.ID, Start: clock, End: clock + used})
		log.Debug("slice", "pid", p.ID, "start", clock, "end", clock+used, "remaining", p.RemainingTime)
		clock += used

		// processes that arrived during the slice, or exactly at its end, queue
		// ahead of the incumbent
		pending.admit(clock, ready.push)
		if !p.Finished() {
			ready.push(i)
		}
	}
	return timeline, nil
}
