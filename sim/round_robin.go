package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// RoundRobin runs the fixed-quantum FIFO discipline. The head of the ready
// queue executes for min(timeQuantum, remaining) ticks; each slice becomes
// its own Gantt entry, even when the same pid runs back to back after a
// full queue rotation. After a slice, processes that arrived by the new
// clock value are enqueued first (ordered by arrival time, then pid), and
// only then is the preempted process re-enqueued, so a process never blocks
// behind itself ahead of fresher arrivals. When the queue empties while
// work remains, the clock jumps to the next arrival and everything arrived
// by then enters in pid order, as does the initial tick-0 admission.
func (s *Simulator) RoundRobin(timeQuantum int) (*SchedulingResult, error) {
	if timeQuantum <= 0 {
		return nil, fmt.Errorf("%w: time quantum must be positive, got %d", ErrInvalidInput, timeQuantum)
	}

	working := s.snapshot()
	logrus.Debugf("rr: scheduling %d processes with quantum %d", len(working), timeQuantum)

	n := len(working)
	queued := make([]bool, n)
	queue := make([]int, 0, n)
	completed := 0
	now := 0
	var chart []GanttEntry

	// admit enqueues every not-yet-queued process that has arrived by now.
	// byArrival selects the arrival-then-pid ordering used after a slice;
	// initial and idle-jump admissions use plain pid order.
	admit := func(byArrival bool) {
		var ready []int
		for i := range working {
			if !queued[i] && working[i].ArrivalTime <= now {
				ready = append(ready, i)
			}
		}
		sort.Slice(ready, func(a, b int) bool {
			pa, pb := working[ready[a]], working[ready[b]]
			if byArrival && pa.ArrivalTime != pb.ArrivalTime {
				return pa.ArrivalTime < pb.ArrivalTime
			}
			return pa.PID < pb.PID
		})
		for _, i := range ready {
			queue = append(queue, i)
			queued[i] = true
		}
	}

	admit(false)

	for completed < n {
		if len(queue) == 0 {
			next := -1
			for i := range working {
				if !queued[i] && (next == -1 || working[i].ArrivalTime < next) {
					next = working[i].ArrivalTime
				}
			}
			if next <= now {
				logrus.Errorf("rr: empty ready queue at tick %d with %d processes unfinished", now, n-completed)
				return nil, fmt.Errorf("%w: empty ready queue at tick %d", ErrInvariantViolation, now)
			}
			now = next
			admit(false)
			continue
		}

		idx := queue[0]
		queue = queue[1:]
		p := &working[idx]
		p.markStarted(now)

		slice := min(timeQuantum, p.RemainingTime)
		start := now
		now += slice
		p.RemainingTime -= slice
		chart = append(chart, GanttEntry{PID: p.PID, Start: start, End: now})

		// New arrivals enter before the preempted process goes back.
		admit(true)

		if p.RemainingTime > 0 {
			queue = append(queue, idx)
		} else {
			p.finish(now)
			completed++
		}
	}

	return calculateMetrics(fmt.Sprintf("Round Robin (Q=%d)", timeQuantum), working, chart), nil
}
