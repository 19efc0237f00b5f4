package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// SRTF runs Shortest-Remaining-Time-First, the preemptive analogue of SJF:
// at every tick the arrived process with the smallest positive remaining
// time executes for exactly one tick, so a newly arrived shorter job
// preempts the running one at the next tick boundary. Ties keep the first
// candidate in scan order. Consecutive ticks for the same pid merge into a
// single Gantt entry; a new entry starts only when the running pid changes.
func (s *Simulator) SRTF() (*SchedulingResult, error) {
	working := s.snapshot()
	logrus.Debugf("srtf: scheduling %d processes", len(working))

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
		idx := -1
		for i := range working {
			if working[i].ArrivalTime > now || working[i].RemainingTime <= 0 {
				continue
			}
			if idx == -1 || working[i].RemainingTime < working[idx].RemainingTime {
				idx = i
			}
		}

		if idx == -1 {
			if now >= lastArrival {
				logrus.Errorf("srtf: no candidate at tick %d with %d processes unfinished", now, n-completed)
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

	return calculateMetrics("SRTF", working, chart), nil
}
