// Package report renders simulation results as text: a Gantt strip, the per-process
// schedule table and a cross-algorithm comparison.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
)

const cellWidth = 8

// WriteResult writes the title, Gantt chart and schedule table of one run.
func WriteResult(w io.Writer, title string, res schedulers.Result) {
	WriteTitle(w, title)
	WriteGantt(w, res.Timeline)
	writeArrivals(w, res)
	WriteSchedule(w, res)
}

func WriteTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

type ganttCell struct {
	label      string
	start, end int
}

func ganttCells(tl core.Timeline) []ganttCell {
	cells := make([]ganttCell, 0, len(tl))
	clock := 0
	for _, s := range tl {
		if s.Start > clock {
			cells = append(cells, ganttCell{label: "idle", start: clock, end: s.Start})
		}
		cells = append(cells, ganttCell{label: fmt.Sprintf("P%d", s.ProcessID), start: s.Start, end: s.End})
		clock = s.End
	}
	return cells
}

// WriteGantt draws one cell per timeline slice, with idle gaps shown explicitly,
// followed by the slice boundaries.
func WriteGantt(w io.Writer, tl core.Timeline) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	cells := ganttCells(tl)
	if len(cells) == 0 {
		_, _ = fmt.Fprintf(w, "(empty)\n\n")
		return
	}

	var bar, axis strings.Builder
	bar.WriteString("|")
	for _, c := range cells {
		pad := max(cellWidth-len(c.label), 0)
		left := pad / 2
		right := pad - left
		bar.WriteString(strings.Repeat(" ", left) + c.label + strings.Repeat(" ", right) + "|")
		axis.WriteString(fmt.Sprintf("%-*d", cellWidth+1, c.start))
	}
	axis.WriteString(fmt.Sprint(cells[len(cells)-1].end))

	_, _ = fmt.Fprintln(w, bar.String())
	_, _ = fmt.Fprintln(w, axis.String())
	_, _ = fmt.Fprintln(w)
}

func writeArrivals(w io.Writer, res schedulers.Result) {
	marks := make([]string, len(res.Report.Processes))
	for i, p := range res.Report.Processes {
		marks[i] = fmt.Sprintf("P%d@%d", p.ProcessID, p.ArrivalTime)
	}
	_, _ = fmt.Fprintf(w, "Arrivals: %s\n\n", strings.Join(marks, " "))
}

// WriteSchedule writes the per-process table with averages in the footer.
func WriteSchedule(w io.Writer, res schedulers.Result) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, 0, len(res.Report.Processes))
	for _, p := range res.Report.Processes {
		rows = append(rows, []string{
			fmt.Sprint(p.ProcessID),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.StartTime),
			fmt.Sprint(p.FinishTime),
			fmt.Sprint(p.ExecutionSpan),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.ResponseTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Priority", "Start", "Finish", "ET", "Turnaround", "Wait", "Response"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", res.Report.AverageTurnaroundTime),
		fmt.Sprintf("Average\n%.2f", res.Report.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", res.Report.AverageResponseTime)})
	table.Render()

	_, _ = fmt.Fprintf(w, "Makespan %d, idle %d, utilization %.2f%%, throughput %.2f/t, context switches %d\n\n",
		res.Cpu.TotalTime, res.Cpu.IdleTime, res.Cpu.Utilization()*100,
		res.Cpu.Throughput(len(res.Report.Processes)), res.Timeline.ContextSwitches())
}

// WriteComparison writes one summary row per algorithm.
func WriteComparison(w io.Writer, results []schedulers.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "Avg Turnaround", "Avg Response", "Makespan", "Idle", "Utilization", "Switches"})
	for _, res := range results {
		table.Append([]string{
			res.Algorithm,
			fmt.Sprintf("%.2f", res.Report.AverageWaitingTime),
			fmt.Sprintf("%.2f", res.Report.AverageTurnaroundTime),
			fmt.Sprintf("%.2f", res.Report.AverageResponseTime),
			fmt.Sprint(res.Cpu.TotalTime),
			fmt.Sprint(res.Cpu.IdleTime),
			fmt.Sprintf("%.2f%%", res.Cpu.Utilization()*100),
			fmt.Sprint(res.Timeline.ContextSwitches()),
		})
	}
	table.Render()
}

// Title is the human readable name of an algorithm, falling back to name itself.
func Title(name string) string {
	switch name {
	case schedulers.AlgorithmFCFS:
		return "First-come, first-serve"
	case schedulers.AlgorithmSJF:
		return "Shortest-job-first"
	case schedulers.AlgorithmPriority:
		return "Non-preemptive priority"
	case schedulers.AlgorithmSRTF:
		return "Shortest-remaining-time-first"
	case schedulers.AlgorithmPreemptivePriority:
		return "Preemptive priority"
	case schedulers.AlgorithmRoundRobin:
		return "Round-robin"
	case schedulers.AlgorithmMLFQ:
		return "Multilevel feedback queue"
	default:
		return name
	}
}
