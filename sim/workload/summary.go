package workload

import (
	"gonum.org/v1/gonum/stat"

	"github.com/sched-sim/sched-sim/sim"
)

// Summary describes a dataset's shape before any simulation runs: the
// spread of arrivals, bursts and priorities plus the total CPU demand.
type Summary struct {
	Count      int
	TotalBurst int

	MinArrival, MaxArrival     int
	MeanArrival, StdDevArrival float64

	MinBurst, MaxBurst     int
	MeanBurst, StdDevBurst float64

	MinPriority, MaxPriority int
	MeanPriority             float64
}

// Summarize computes dataset statistics. An empty dataset yields a zero
// Summary.
func Summarize(processes []sim.Process) Summary {
	s := Summary{Count: len(processes)}
	if s.Count == 0 {
		return s
	}

	arrivals := make([]float64, s.Count)
	bursts := make([]float64, s.Count)
	priorities := make([]float64, s.Count)

	s.MinArrival, s.MaxArrival = processes[0].ArrivalTime, processes[0].ArrivalTime
	s.MinBurst, s.MaxBurst = processes[0].BurstTime, processes[0].BurstTime
	s.MinPriority, s.MaxPriority = processes[0].Priority, processes[0].Priority

	for i, p := range processes {
		arrivals[i] = float64(p.ArrivalTime)
		bursts[i] = float64(p.BurstTime)
		priorities[i] = float64(p.Priority)
		s.TotalBurst += p.BurstTime

		s.MinArrival = min(s.MinArrival, p.ArrivalTime)
		s.MaxArrival = max(s.MaxArrival, p.ArrivalTime)
		s.MinBurst = min(s.MinBurst, p.BurstTime)
		s.MaxBurst = max(s.MaxBurst, p.BurstTime)
		s.MinPriority = min(s.MinPriority, p.Priority)
		s.MaxPriority = max(s.MaxPriority, p.Priority)
	}

	s.MeanArrival = stat.Mean(arrivals, nil)
	s.MeanBurst = stat.Mean(bursts, nil)
	s.MeanPriority = stat.Mean(priorities, nil)
	if s.Count > 1 {
		s.StdDevArrival = stat.StdDev(arrivals, nil)
		s.StdDevBurst = stat.StdDev(bursts, nil)
	}
	return s
}
