// Package schedulers implements the CPU scheduling disciplines over a core.Workload.
//
// Every engine follows the same control loop on a logical integer clock: admit the
// processes that have arrived, jump over idle gaps, otherwise select the next process
// according to the discipline and advance the clock while recording the timeline.
// Engines reset the workload before running and mutate its processes in place.
package schedulers

import (
	"errors"
	"fmt"
	"log/slog"

	"cpu-scheduler/internal/core"
)

var (
	ErrInvalidQuantum   = errors.New("invalid time quantum")
	ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")
)

// Algorithm names accepted by New.
const (
	AlgorithmFCFS               = "fcfs"
	AlgorithmSJF                = "sjf"
	AlgorithmPriority           = "priority"
	AlgorithmSRTF               = "srtf"
	AlgorithmPreemptivePriority = "preemptive-priority"
	AlgorithmRoundRobin         = "rr"
	AlgorithmMLFQ               = "mlfq"
)

// Scheduler simulates one discipline over a workload and returns its timeline.
type Scheduler interface {
	Name() string
	Schedule(w *core.Workload) (core.Timeline, error)
}

// Options carries the parameters some disciplines need.
type Options struct {
	TimeQuantum       int   // round robin
	LevelsTimeQuantum []int // multilevel feedback queue, one quantum per non-final level
	Logger            *slog.Logger
}

// Names lists every algorithm in the order RunAll executes them.
func Names() []string {
	return []string{
		AlgorithmFCFS,
		AlgorithmSJF,
		AlgorithmPriority,
		AlgorithmSRTF,
		AlgorithmPreemptivePriority,
		AlgorithmRoundRobin,
		AlgorithmMLFQ,
	}
}

// New builds the scheduler registered under name.
func New(name string, opts Options) (Scheduler, error) {
	var (
		s   Scheduler
		err error
	)
	switch name {
	case AlgorithmFCFS:
		s = NewFirstComeFirstServe()
	case AlgorithmSJF:
		s = NewShortestJobFirst()
	case AlgorithmPriority:
		s = NewPriority()
	case AlgorithmSRTF:
		s = NewShortestRemainingTimeFirst()
	case AlgorithmPreemptivePriority:
		s = NewPreemptivePriority()
	case AlgorithmRoundRobin:
		s, err = NewRoundRobin(opts.TimeQuantum)
	case AlgorithmMLFQ:
		s, err = NewMultilevelFeedbackQueue(opts.LevelsTimeQuantum)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	if err != nil {
		return nil, err
	}
	if opts.Logger != nil {
		if t, ok := s.(interface{ SetLogger(*slog.Logger) }); ok {
			t.SetLogger(opts.Logger)
		}
	}
	return s, nil
}

// traced gives engines an optional debug logger. Without one nothing is written.
type traced struct {
	logger *slog.Logger
}

// SetLogger enables dispatch tracing at debug level.
func (t *traced) SetLogger(l *slog.Logger) { t.logger = l }

func (t *traced) log() *slog.Logger {
	if t.logger == nil {
		return discard
	}
	return t.logger
}

var discard = slog.New(slog.DiscardHandler)

func checkWorkload(w *core.Workload) error {
	if w == nil || w.Len() == 0 {
		return fmt.Errorf("%w: no processes", core.ErrInvalidWorkload)
	}
	return nil
}
