package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
)

// MultilevelFeedbackQueue keeps one FIFO queue per level. Level i grants
// levelsTimeQuantum[i] units per dispatch; the extra last level is first come
// first serve. New arrivals enter level 0 and a process that uses up its
// quantum without finishing drops one level. The highest non-empty level is
// always served first; a slice is never interrupted.
type MultilevelFeedbackQueue struct {
	traced
	levelsTimeQuantum []int
}

// NewMultilevelFeedbackQueue needs at least one quantum and every quantum must be positive.
func NewMultilevelFeedbackQueue(levelsTimeQuantum []int) (*MultilevelFeedbackQueue, error) {
	if err := validateLevels(levelsTimeQuantum); err != nil {
		return nil, err
	}
	quanta := make([]int, len(levelsTimeQuantum))
	copy(quanta, levelsTimeQuantum)
	return &MultilevelFeedbackQueue{levelsTimeQuantum: quanta}, nil
}

func validateLevels(levelsTimeQuantum []int) error {
	if len(levelsTimeQuantum) == 0 {
		return fmt.Errorf("%w: no feedback levels", ErrInvalidQuantum)
	}
	for level, q := range levelsTimeQuantum {
		if q <= 0 {
			return fmt.Errorf("%w: level %d has quantum %d", ErrInvalidQuantum, level, q)
		}
	}
	return nil
}

func (s *MultilevelFeedbackQueue) Name() string { return AlgorithmMLFQ }

// Levels returns the number of queues, including the final first come first serve level.
func (s *MultilevelFeedbackQueue) Levels() int { return len(s.levelsTimeQuantum) + 1 }

func (s *MultilevelFeedbackQueue) Schedule(w *core.Workload) (core.Timeline, error) {
	if err := validateLevels(s.levelsTimeQuantum); err != nil {
		return nil, err
	}
	if err := checkWorkload(w); err != nil {
		return nil, err
	}
	w.Reset()
	log := s.log().With("algorithm", AlgorithmMLFQ)

	pending := newPendingQueue(w)
	levels := make([]fifoQueue, s.Levels())
	timeline := make(core.Timeline, 0, w.Len())

	enter := func(i int) { levels[0].push(i) }

	clock := 0
	for {
		pending.admit(clock, enter)
		current := s.highestReady(levels)
		if current == none {
			if pending.Len() == 0 {
				break
			}
			log.Debug("cpu idle", "from", clock, "to", pending.nextArrival())
			clock = pending.nextArrival()
			continue
		}

		i := levels[current].pop()
		p := w.At(i)
		p.Dispatch(clock)
		used := p.Run(clock, s.timeQuantum(current, p))
		timeline = append(timeline, core.Slice{ProcessID: p.ID, Start: clock, End: clock + used})
		log.Debug("slice", "pid", p.ID, "level", current, "start", clock, "end", clock+used)
		clock += used

		pending.admit(clock, enter)
		if !p.Finished() {
			levels[s.nextLevel(current)].push(i)
		}
	}
	return timeline, nil
}

func (s *MultilevelFeedbackQueue) highestReady(levels []fifoQueue) int {
	for l := range levels {
		if levels[l].Len() > 0 {
			return l
		}
	}
	return none
}

// timeQuantum is the slice granted at a level; the last level runs the process to completion.
func (s *MultilevelFeedbackQueue) timeQuantum(level int, p *core.Process) int {
	if level < len(s.levelsTimeQuantum) {
		return s.levelsTimeQuantum[level]
	}
	return p.RemainingTime
}

func (s *MultilevelFeedbackQueue) nextLevel(level int) int {
	if level+1 < s.Levels() {
		return level + 1
	}
	return level
}
