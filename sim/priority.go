package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Priority runs priority scheduling, where a lower priority number means a
// more urgent process. The preemptive flag selects between the two
// variants: non-preemptive runs the chosen process to completion, while
// preemptive re-evaluates the selection at every tick so a newly arrived
// more urgent process takes the CPU at the next tick boundary.
//
// Tie-break for both variants: equal priorities go to the earlier arrival,
// then to the first candidate in scan order (input order).
func (s *Simulator) Priority(preemptive bool) (*SchedulingResult, error) {
	if preemptive {
		return s.priorityPreemptive()
	}
	return s.priorityNonPreemptive()
}

// selectByPriority picks the most urgent arrived candidate, applying the
// documented tie-break. eligible reports whether index i is still a
// candidate at all.
func selectByPriority(working []Process, now int, eligible func(i int) bool) int {
	idx := -1
	for i := range working {
		if !eligible(i) || working[i].ArrivalTime > now {
			continue
		}
		if idx == -1 ||
			working[i].Priority < working[idx].Priority ||
			(working[i].Priority == working[idx].Priority && working[i].ArrivalTime < working[idx].ArrivalTime) {
			idx = i
		}
	}
	return idx
}

func (s *Simulator) priorityNonPreemptive() (*SchedulingResult, error) {
	working := s.snapshot()
	logrus.Debugf("priority: scheduling %d processes (non-preemptive)", len(working))

	n := len(working)
	done := make([]bool, n)
	completed := 0
	now := 0
	var chart []GanttEntry

	for completed < n {
		idx := selectByPriority(working, now, func(i int) bool { return !done[i] })

		if idx == -1 {
			next := earliestArrival(working, done)
			if next <= now {
				logrus.Errorf("priority: no candidate at tick %d with %d processes unfinished", now, n-completed)
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

	return calculateMetrics("Priority (Non-Preemptive)", working, chart), nil
}

func (s *Simulator) priorityPreemptive() (*SchedulingResult, error) {
	working := s.snapshot()
	logrus.Debugf("priority: scheduling %d processes (preemptive)", len(working))

	n := len(working)
	completed := 0
	now := 0
	lastArrival := 0
	for _, p := range working {
		if p.ArrivalTime > lastArrival {
			lastArrival = p.ArrivalTime
		}
	}
	var chart []GanttEntry

	for completed < n {
		idx := selectByPriority(working, now, func(i int) bool { return working[i].RemainingTime > 0 })

		if idx == -1 {
			if now >= lastArrival {
				logrus.Errorf("priority: no candidate at tick %d with %d processes unfinished", now, n-completed)
				return nil, fmt.Errorf("%w: no runnable process at tick %d", ErrInvariantViolation, now)
			}
			// Nothing has arrived yet; idle for one tick.
			now++
			continue
		}

		p := &working[idx]
		p.markStarted(now)

		chart = appendRun(chart, p.PID, now, now+1)
		p.RemainingTime--
		now++

		if p.RemainingTime == 0 {
			p.finish(now)
			completed++
		}
	}

	return calculateMetrics("Priority (Preemptive)", working, chart), nil
}
