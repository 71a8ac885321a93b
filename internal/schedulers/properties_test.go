package schedulers

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

func propertyWorkloads(t *testing.T) map[string]*core.Workload {
	t.Helper()
	set := map[string]*core.Workload{
		"two processes": twoProcesses(t),
		"idle gaps":     workload(t, proc(1, 2, 3, 1), proc(2, 9, 1, 0), proc(3, 9, 4, 2), proc(4, 30, 2, 0)),
		"same arrival":  workload(t, proc(1, 0, 4, 3), proc(2, 0, 4, 3), proc(3, 0, 1, 1), proc(4, 0, 9, 2)),
		"single":        workload(t, proc(42, 7, 5, 0)),
	}
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 5; n++ {
		descs := make([]core.Descriptor, 3+rng.Intn(8))
		for i := range descs {
			descs[i] = proc(i+1, rng.Intn(20), 1+rng.Intn(9), rng.Intn(5))
		}
		set[fmt.Sprintf("random %d", n)] = workload(t, descs...)
	}
	return set
}

func TestSchedulingProperties(t *testing.T) {
	opts := Options{TimeQuantum: 3, LevelsTimeQuantum: []int{2, 4}}
	for wname, w := range propertyWorkloads(t) {
		for _, name := range Names() {
			t.Run(wname+"/"+name, func(t *testing.T) {
				res, err := Run(mustNew(t, name, opts), w)
				require.NoError(t, err)

				require.NoError(t, res.Timeline.Validate())
				assert.Equal(t, w.TotalBurst(), res.Timeline.Duration(), "timeline covers every burst exactly once")

				for i := 0; i < w.Len(); i++ {
					p := w.At(i)
					own := res.Timeline.ForProcess(p.ID)
					require.NotEmpty(t, own)

					assert.Equal(t, p.BurstTime, own.Duration(), "process %d", p.ID)
					assert.Equal(t, p.StartTime, own[0].Start, "process %d", p.ID)
					assert.Equal(t, p.FinishTime, own[len(own)-1].End, "process %d", p.ID)
					assert.GreaterOrEqual(t, own[0].Start, p.ArrivalTime, "process %d", p.ID)
					assert.Zero(t, p.RemainingTime, "process %d", p.ID)
				}

				for _, m := range res.Report.Processes {
					assert.GreaterOrEqual(t, m.WaitingTime, 0, "process %d", m.ProcessID)
					assert.GreaterOrEqual(t, m.TurnaroundTime, m.BurstTime, "process %d", m.ProcessID)
				}
			})
		}
	}
}

func TestLargeQuantumRoundRobinMatchesFCFSOnRandomWorkloads(t *testing.T) {
	for wname, w := range propertyWorkloads(t) {
		t.Run(wname, func(t *testing.T) {
			fcfs, err := NewFirstComeFirstServe().Schedule(w)
			require.NoError(t, err)

			rr, err := NewRoundRobin(w.MaxBurst())
			require.NoError(t, err)
			got, err := rr.Schedule(w)
			require.NoError(t, err)

			assert.Equal(t, fcfs, got)
		})
	}
}

func TestSchedulingIsDeterministic(t *testing.T) {
	opts := Options{TimeQuantum: 2, LevelsTimeQuantum: []int{1, 3}}
	for _, name := range Names() {
		w := workload(t, proc(1, 0, 3, 1), proc(2, 0, 3, 1), proc(3, 1, 3, 1), proc(4, 1, 3, 1))
		first, err := mustNew(t, name, opts).Schedule(w)
		require.NoError(t, err)
		second, err := mustNew(t, name, opts).Schedule(w)
		require.NoError(t, err)
		assert.Equal(t, first, second, name)
	}
}
