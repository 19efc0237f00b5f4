package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// SJF runs non-preemptive Shortest-Job-First: at each decision point
// (a completion or an idle jump) the arrived, unfinished process with the
// smallest burst time is selected and runs to completion. Ties go to the
// first candidate in scan order, which is the input order of the process
// set. When nothing has arrived the clock jumps to the earliest arrival
// among unfinished processes.
func (s *Simulator) SJF() (*SchedulingResult, error) {
	working := s.snapshot()
	logrus.Debugf("sjf: scheduling %d processes", len(working))

	n := len(working)
	done := make([]bool, n)
	completed := 0
	now := 0
	var chart []GanttEntry

	for completed < n {
		idx := -1
		for i := range working {
			if done[i] || working[i].ArrivalTime > now {
				continue
			}
			if idx == -1 || working[i].BurstTime < working[idx].BurstTime {
				idx = i
			}
		}

		if idx == -1 {
			next := earliestArrival(working, done)
			if next <= now {
				logrus.Errorf("sjf: no candidate at tick %d with %d processes unfinished", now, n-completed)
				return nil, fmt.Errorf("%w: no runnable process at tick %d", ErrInvariantViolation, now)
			}
			now = next
			continue
		}

		p := &working[idx]
		p.markStarted(now)

		start := now
		now += p.BurstTime
		p.RemainingTime = 0
		chart = append(chart, GanttEntry{PID: p.PID, Start: start, End: now})
		p.finish(now)

		done[idx] = true
		completed++
	}

	return calculateMetrics("SJF", working, chart), nil
}

// earliestArrival returns the minimum arrival time among unfinished
// processes, or -1 when every process is done.
func earliestArrival(processes []Process, done []bool) int {
	next := -1
	for i := range processes {
		if done[i] {
			continue
		}
		if next == -1 || processes[i].ArrivalTime < next {
			next = processes[i].ArrivalTime
		}
	}
	return next
}
