package schedulers

import "cpu-scheduler/internal/core"

// Preemptive advances the clock one unit at a time and re-selects among the ready
// processes and the running one before every unit. A change of winner closes the
// running slice at the current clock.
type Preemptive struct {
	traced
	name string
	key  selectionKey
}

func (s *Preemptive) Name() string { return s.name }

func (s *Preemptive) Schedule(w *core.Workload) (core.Timeline, error) {
	if err := checkWorkload(w); err != nil {
		return nil, err
	}
	w.Reset()
	log := s.log().With("algorithm", s.name)

	pending := newPendingQueue(w)
	ready := newReadyQueue(w, s.key)
	timeline := make(core.Timeline, 0, w.Len())

	clock := 0
	running := none
	sliceStart := 0
	for pending.Len() > 0 || ready.Len() > 0 || running != none {
		pending.admit(clock, ready.push)
		if running == none && ready.Len() == 0 {
			log.Debug("cpu idle", "from", clock, "to", pending.nextArrival())
			clock = pending.nextArrival()
			continue
		}

		if ready.Len() > 0 && (running == none || ready.before(ready.peek(), running)) {
			next := ready.pop()
			if running != none {
				preempted := w.At(running)
				timeline = append(timeline, core.Slice{ProcessID: preempted.ID, Start: sliceStart, End: clock})
				ready.push(running)
				log.Debug("preempt", "pid", preempted.ID, "by", w.At(next).ID, "at", clock)
			}
			running = next
			sliceStart = clock
			w.At(running).Dispatch(clock)
			log.Debug("dispatch", "pid", w.At(running).ID, "at", clock)
		}

		p := w.At(running)
		clock += p.Run(clock, 1)
		if p.Finished() {
			timeline = append(timeline, core.Slice{ProcessID: p.ID, Start: sliceStart, End: clock})
			log.Debug("finish", "pid", p.ID, "at", clock)
			running = none
		}
	}
	return timeline, nil
}
