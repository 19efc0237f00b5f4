package sim

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// FCFS runs First-Come-First-Served: processes execute to completion in
// arrival order, ties resolved by input order. Non-preemptive. The clock
// jumps forward when the next process has not arrived yet, so the CPU
// idles instead of busy-waiting.
func (s *Simulator) FCFS() (*SchedulingResult, error) {
	working := s.snapshot()
	logrus.Debugf("fcfs: scheduling %d processes", len(working))

	sort.SliceStable(working, func(i, j int) bool {
		return working[i].ArrivalTime < working[j].ArrivalTime
	})

	now := 0
	chart := make([]GanttEntry, 0, len(working))
	for i := range working {
		p := &working[i]
		if now < p.ArrivalTime {
			now = p.ArrivalTime
		}
		p.markStarted(now)

		start := now
		now += p.BurstTime
		p.RemainingTime = 0
		chart = append(chart, GanttEntry{PID: p.PID, Start: start, End: now})
		p.finish(now)
	}

	return calculateMetrics("FCFS", working, chart), nil
}
