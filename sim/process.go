// Defines the Process value type that models a single schedulable process.
// Immutable inputs (pid, arrival, burst, priority) plus the outcome fields a
// simulation run fills in.

package sim

import "fmt"

// Sentinel for outcome fields that have not been set yet.
const unset = -1

// Process models one process in a scheduling run.
// PID identifies the process and must be unique within a run. Outcome fields
// start at their sentinels and are stamped by the algorithm that executes the
// process; the identities
//
//	TurnaroundTime = CompletionTime - ArrivalTime
//	WaitingTime    = TurnaroundTime - BurstTime
//	ResponseTime   = StartTime - ArrivalTime
//
// hold for every process once a run finishes.
type Process struct {
	PID         int // unique identifier, >= 0
	ArrivalTime int // tick at which the process becomes runnable, >= 0
	BurstTime   int // total CPU ticks required, > 0
	Priority    int // lower number = more urgent (default 0)

	RemainingTime  int // burst ticks left; reaches exactly 0 at completion
	StartTime      int // tick the process first got the CPU (-1 until then)
	ResponseTime   int // StartTime - ArrivalTime (-1 until first run)
	CompletionTime int // tick the process finished
	TurnaroundTime int // CompletionTime - ArrivalTime
	WaitingTime    int // TurnaroundTime - BurstTime
}

// NewProcess builds a process with RemainingTime primed to the burst and all
// outcome fields at their sentinels.
func NewProcess(pid, arrivalTime, burstTime, priority int) Process {
	return Process{
		PID:           pid,
		ArrivalTime:   arrivalTime,
		BurstTime:     burstTime,
		Priority:      priority,
		RemainingTime: burstTime,
		StartTime:     unset,
		ResponseTime:  unset,
	}
}

// String returns a human-readable representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("P%d(AT=%d, BT=%d, P=%d)", p.PID, p.ArrivalTime, p.BurstTime, p.Priority)
}

// CloneProcesses returns an independent copy of processes. Process is a plain
// value type, so copying the slice is a deep copy.
func CloneProcesses(processes []Process) []Process {
	out := make([]Process, len(processes))
	copy(out, processes)
	return out
}

// markStarted records the first CPU grant. Later grants are no-ops.
func (p *Process) markStarted(now int) {
	if p.StartTime == unset {
		p.StartTime = now
		p.ResponseTime = now - p.ArrivalTime
	}
}

// finish stamps the derived outcome fields at completion time now.
func (p *Process) finish(now int) {
	p.CompletionTime = now
	p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
}
