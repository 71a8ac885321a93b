package core

import "fmt"

// Slice is one contiguous interval [Start, End) during which ProcessID held the CPU.
type Slice struct {
	ProcessID int `json:"process_id"`
	Start     int `json:"start_time"`
	End       int `json:"end_time"`
}

// Duration is End - Start.
func (s Slice) Duration() int { return s.End - s.Start }

// Timeline is the ordered execution record of one run. Idle gaps are not recorded.
type Timeline []Slice

// Duration is the total CPU time covered by the timeline.
func (t Timeline) Duration() int {
	total := 0
	for _, s := range t {
		total += s.Duration()
	}
	return total
}

// Makespan is the end of the last slice, or 0 for an empty timeline.
func (t Timeline) Makespan() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].End
}

// IdleTime is the time within [0, Makespan) not covered by any slice.
func (t Timeline) IdleTime() int {
	return t.Makespan() - t.Duration()
}

// ContextSwitches counts dispatches of a process different from the previous one.
// The first dispatch is not a switch.
func (t Timeline) ContextSwitches() int {
	switches := 0
	for i := 1; i < len(t); i++ {
		if t[i].ProcessID != t[i-1].ProcessID {
			switches++
		}
	}
	return switches
}

// ForProcess returns the slices belonging to one process, in order.
func (t Timeline) ForProcess(id int) Timeline {
	var out Timeline
	for _, s := range t {
		if s.ProcessID == id {
			out = append(out, s)
		}
	}
	return out
}

// Validate checks that slices are non-empty, sorted by start and non-overlapping.
func (t Timeline) Validate() error {
	for i, s := range t {
		if s.End <= s.Start {
			return fmt.Errorf("slice %d of process %d is empty: [%d, %d)", i, s.ProcessID, s.Start, s.End)
		}
		if i > 0 && s.Start < t[i-1].End {
			return fmt.Errorf("slice %d of process %d starts at %d before previous slice ends at %d",
				i, s.ProcessID, s.Start, t[i-1].End)
		}
	}
	return nil
}
