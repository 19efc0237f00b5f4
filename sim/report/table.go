package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/sched-sim/sched-sim/sim"
	"github.com/sched-sim/sched-sim/sim/workload"
)

// WriteProcessTable prints the per-process outcome table, sorted by pid,
// followed by the aggregate metrics.
func WriteProcessTable(w io.Writer, result *sim.SchedulingResult) {
	fmt.Fprintf(w, "Process Details for %s\n", result.Algorithm)

	processes := sim.CloneProcesses(result.Processes)
	sort.Slice(processes, func(i, j int) bool { return processes[i].PID < processes[j].PID })

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Priority", "Completion", "Turnaround", "Waiting", "Response"})
	for _, p := range processes {
		table.Append([]string{
			strconv.Itoa(p.PID),
			strconv.Itoa(p.ArrivalTime),
			strconv.Itoa(p.BurstTime),
			strconv.Itoa(p.Priority),
			strconv.Itoa(p.CompletionTime),
			strconv.Itoa(p.TurnaroundTime),
			strconv.Itoa(p.WaitingTime),
			strconv.Itoa(p.ResponseTime),
		})
	}
	table.Render()

	fmt.Fprintf(w, "Average Waiting Time    : %.2f\n", result.AvgWaitingTime)
	fmt.Fprintf(w, "Average Turnaround Time : %.2f\n", result.AvgTurnaroundTime)
	fmt.Fprintf(w, "Average Response Time   : %.2f\n", result.AvgResponseTime)
	fmt.Fprintf(w, "Throughput              : %.4f processes/tick\n", result.Throughput)
	fmt.Fprintf(w, "CPU Utilization         : %.2f%%\n", result.CPUUtilization)
	fmt.Fprintf(w, "Context Switches        : %d\n", result.ContextSwitches)
	fmt.Fprintf(w, "Total Time              : %d\n", result.TotalTime)
}

// WriteComparison prints one row per algorithm so the disciplines can be
// compared side by side.
func WriteComparison(w io.Writer, results []*sim.SchedulingResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg WT", "Avg TAT", "Avg RT", "Throughput", "CPU %", "CS"})
	for _, res := range results {
		table.Append([]string{
			res.Algorithm,
			fmt.Sprintf("%.2f", res.AvgWaitingTime),
			fmt.Sprintf("%.2f", res.AvgTurnaroundTime),
			fmt.Sprintf("%.2f", res.AvgResponseTime),
			fmt.Sprintf("%.4f", res.Throughput),
			fmt.Sprintf("%.2f", res.CPUUtilization),
			strconv.Itoa(res.ContextSwitches),
		})
	}
	table.Render()
}

// WriteSummary prints dataset statistics ahead of a comparison run.
func WriteSummary(w io.Writer, name string, s workload.Summary) {
	fmt.Fprintf(w, "Dataset: %s\n", name)
	fmt.Fprintf(w, "Processes           : %d\n", s.Count)
	fmt.Fprintf(w, "Total Burst Time    : %d\n", s.TotalBurst)
	fmt.Fprintf(w, "Average Burst Time  : %.2f\n", s.MeanBurst)
	fmt.Fprintf(w, "Arrival Time Range  : %d - %d\n", s.MinArrival, s.MaxArrival)
	fmt.Fprintf(w, "Priority Range      : %d - %d\n", s.MinPriority, s.MaxPriority)
}
