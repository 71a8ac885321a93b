package schedulers

import (
	"container/heap"
	"sort"

	"cpu-scheduler/internal/core"
)

// none marks an empty running slot.
const none = -1

// pendingQueue holds the processes that have not arrived yet, ordered by
// arrival time and then input order. It stores workload indices only.
type pendingQueue struct {
	w     *core.Workload
	order []int
}

func newPendingQueue(w *core.Workload) *pendingQueue {
	order := make([]int, w.Len())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return w.At(order[i]).ArrivalTime < w.At(order[j]).ArrivalTime
	})
	return &pendingQueue{w: w, order: order}
}

func (q *pendingQueue) Len() int { return len(q.order) }

// admit hands every process with arrival time <= clock to add, in arrival order.
func (q *pendingQueue) admit(clock int, add func(int)) int {
	n := 0
	for len(q.order) > 0 && q.w.At(q.order[0]).ArrivalTime <= clock {
		add(q.order[0])
		q.order = q.order[1:]
		n++
	}
	return n
}

// nextArrival is the arrival time of the earliest pending process. The queue must not be empty.
func (q *pendingQueue) nextArrival() int {
	return q.w.At(q.order[0]).ArrivalTime
}

// selectionKey is the primary ordering attribute of a ready queue; smaller runs first.
type selectionKey func(p *core.Process) int

func byArrival(p *core.Process) int   { return p.ArrivalTime }
func byBurst(p *core.Process) int     { return p.BurstTime }
func byPriority(p *core.Process) int  { return p.Priority }
func byRemaining(p *core.Process) int { return p.RemainingTime }

// readyQueue is a binary heap of workload indices ordered by (key, arrival time, input order).
// The explicit secondary keys make selection deterministic even though the heap is not stable.
type readyQueue struct {
	w     *core.Workload
	key   selectionKey
	items []int
}

func newReadyQueue(w *core.Workload, key selectionKey) *readyQueue {
	return &readyQueue{w: w, key: key, items: make([]int, 0, w.Len())}
}

// before reports whether the process at index a is selected ahead of the one at index b.
func (q *readyQueue) before(a, b int) bool {
	pa, pb := q.w.At(a), q.w.At(b)
	if ka, kb := q.key(pa), q.key(pb); ka != kb {
		return ka < kb
	}
	if pa.ArrivalTime != pb.ArrivalTime {
		return pa.ArrivalTime < pb.ArrivalTime
	}
	return a < b
}

func (q *readyQueue) Len() int           { return len(q.items) }
func (q *readyQueue) Less(i, j int) bool { return q.before(q.items[i], q.items[j]) }
func (q *readyQueue) Swap(i, j int)      { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *readyQueue) Push(x any) { q.items = append(q.items, x.(int)) }

func (q *readyQueue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}

func (q *readyQueue) push(i int) { heap.Push(q, i) }
func (q *readyQueue) pop() int   { return heap.Pop(q).(int) }
func (q *readyQueue) peek() int  { return q.items[0] }

// fifoQueue is a strict first-in first-out queue of workload indices.
type fifoQueue struct {
	items []int
}

func (q *fifoQueue) Len() int { return len(q.items) }

func (q *fifoQueue) push(i int) { q.items = append(q.items, i) }

func (q *fifoQueue) pop() int {
	item := q.items[0]
	q.items = q.items[1:]
	return item
}
