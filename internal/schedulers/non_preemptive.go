package schedulers

import "cpu-scheduler/internal/core"

// NonPreemptive runs the selected process to completion in a single slice.
// Selection only happens when the CPU becomes free.
type NonPreemptive struct {
	traced
	name string
	key  selectionKey
}

func (s *NonPreemptive) Name() string { return s.name }

func (s *NonPreemptive) Schedule(w *core.Workload) (core.Timeline, error) {
	if err := checkWorkload(w); err != nil {
		return nil, err
	}
	w.Reset()
	log := s.log().With("algorithm", s.name)

	pending := newPendingQueue(w)
	ready := newReadyQueue(w, s.key)
	timeline := make(core.Timeline, 0, w.Len())

	clock := 0
	for pending.Len() > 0 || ready.Len() > 0 {
		pending.admit(clock, ready.push)
		if ready.Len() == 0 {
			log.Debug("cpu idle", "from", clock, "to", pending.nextArrival())
			clock = pending.nextArrival()
			continue
		}

		p := w.At(ready.pop())
		p.Dispatch(clock)
		used := p.Run(clock, p.RemainingTime)
		timeline = append(timeline, core.Slice{ProcessID: p.ID, Start: clock, End: clock + used})
		log.Debug("dispatch", "pid", p.ID, "start", clock, "end", clock+used)
		clock += used
	}
	return timeline, nil
}
