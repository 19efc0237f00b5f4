package sim

// SchedulingResult carries the finalized process list, the execution
// timeline, and aggregate metrics for one algorithm run. It is read-only
// once produced; any presentation layer (text table, chart, CSV) consumes
// it without the engine knowing about the rendering.
type SchedulingResult struct {
	Algorithm string
	Processes []Process
	Gantt     []GanttEntry

	AvgWaitingTime    float64
	AvgTurnaroundTime float64
	AvgResponseTime   float64
	Throughput        float64 // processes completed per tick
	CPUUtilization    float64 // percent of elapsed time spent executing
	TotalTime         int     // max completion time across processes
	ContextSwitches   int     // boundaries between Gantt entries
}

// calculateMetrics derives the aggregates shared by every algorithm.
// Average response time is computed over processes whose response time was
// actually recorded; after a complete run that is all of them. Every
// division-by-zero case (no processes, zero elapsed time) yields 0.
func calculateMetrics(algorithm string, processes []Process, chart []GanttEntry) *SchedulingResult {
	res := &SchedulingResult{
		Algorithm: algorithm,
		Processes: processes,
		Gantt:     chart,
	}

	var totalBurst, totalWaiting, totalTurnaround, totalResponse, responded int
	for _, p := range processes {
		totalBurst += p.BurstTime
		totalWaiting += p.WaitingTime
		totalTurnaround += p.TurnaroundTime
		if p.ResponseTime >= 0 {
			totalResponse += p.ResponseTime
			responded++
		}
		if p.CompletionTime > res.TotalTime {
			res.TotalTime = p.CompletionTime
		}
	}

	if n := len(processes); n > 0 {
		res.AvgWaitingTime = float64(totalWaiting) / float64(n)
		res.AvgTurnaroundTime = float64(totalTurnaround) / float64(n)
	}
	if responded > 0 {
		res.AvgResponseTime = float64(totalResponse) / float64(responded)
	}
	if res.TotalTime > 0 {
		res.CPUUtilization = float64(totalBurst) / float64(res.TotalTime) * 100
		res.Throughput = float64(len(processes)) / float64(res.TotalTime)
	}
	if len(chart) > 0 {
		res.ContextSwitches = len(chart) - 1
	}
	return res
}
