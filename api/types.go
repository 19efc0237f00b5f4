package api

import "github.com/sched-sim/sched-sim/sim"

// ProcessInput is the JSON shape of one process in a schedule request.
type ProcessInput struct {
	PID         int `json:"pid"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
}

// ScheduleRequest carries the process set and the algorithm parameters.
// TimeQuantum applies to round robin (0 falls back to the server default),
// Preemptive to priority scheduling.
type ScheduleRequest struct {
	Processes   []ProcessInput `json:"processes"`
	TimeQuantum int            `json:"time_quantum,omitempty"`
	Preemptive  bool           `json:"preemptive,omitempty"`
}

func (r *ScheduleRequest) processes() []sim.Process {
	processes := make([]sim.Process, 0, len(r.Processes))
	for _, in := range r.Processes {
		processes = append(processes, sim.NewProcess(in.PID, in.ArrivalTime, in.BurstTime, in.Priority))
	}
	return processes
}

// GanttSlice is one timeline entry in a response.
type GanttSlice struct {
	PID   int `json:"pid"`
	Start int `json:"start"`
	End   int `json:"end"`
}

// ProcessOutcome is the finalized state of one process.
type ProcessOutcome struct {
	PID            int `json:"pid"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	Priority       int `json:"priority"`
	StartTime      int `json:"start_time"`
	CompletionTime int `json:"completion_time"`
	TurnaroundTime int `json:"turnaround_time"`
	WaitingTime    int `json:"waiting_time"`
	ResponseTime   int `json:"response_time"`
}

// ScheduleResponse mirrors sim.SchedulingResult for JSON consumers.
type ScheduleResponse struct {
	Algorithm         string           `json:"algorithm"`
	Processes         []ProcessOutcome `json:"processes"`
	Gantt             []GanttSlice     `json:"gantt"`
	AvgWaitingTime    float64          `json:"average_waiting_time"`
	AvgTurnaroundTime float64          `json:"average_turnaround_time"`
	AvgResponseTime   float64          `json:"average_response_time"`
	Throughput        float64          `json:"throughput"`
	CPUUtilization    float64          `json:"cpu_utilization"`
	TotalTime         int              `json:"total_time"`
	ContextSwitches   int              `json:"context_switches"`
}

func toResponse(res *sim.SchedulingResult) ScheduleResponse {
	out := ScheduleResponse{
		Algorithm:         res.Algorithm,
		Processes:         make([]ProcessOutcome, 0, len(res.Processes)),
		Gantt:             make([]GanttSlice, 0, len(res.Gantt)),
		AvgWaitingTime:    res.AvgWaitingTime,
		AvgTurnaroundTime: res.AvgTurnaroundTime,
		AvgResponseTime:   res.AvgResponseTime,
		Throughput:        res.Throughput,
		CPUUtilization:    res.CPUUtilization,
		TotalTime:         res.TotalTime,
		ContextSwitches:   res.ContextSwitches,
	}
	for _, p := range res.Processes {
		out.Processes = append(out.Processes, ProcessOutcome{
			PID:            p.PID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			StartTime:      p.StartTime,
			CompletionTime: p.CompletionTime,
			TurnaroundTime: p.TurnaroundTime,
			WaitingTime:    p.WaitingTime,
			ResponseTime:   p.ResponseTime,
		})
	}
	for _, entry := range res.Gantt {
		out.Gantt = append(out.Gantt, GanttSlice{PID: entry.PID, Start: entry.Start, End: entry.End})
	}
	return out
}
