package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sched-sim/sched-sim/sim"
)

func TestSummarize(t *testing.T) {
	processes := []sim.Process{
		sim.NewProcess(1, 0, 4, 1),
		sim.NewProcess(2, 4, 8, 3),
		sim.NewProcess(3, 8, 6, 2),
	}
	s := Summarize(processes)

	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 18, s.TotalBurst)
	assert.Equal(t, 0, s.MinArrival)
	assert.Equal(t, 8, s.MaxArrival)
	assert.InDelta(t, 4.0, s.MeanArrival, 1e-9)
	assert.InDelta(t, 4.0, s.StdDevArrival, 1e-9)
	assert.Equal(t, 4, s.MinBurst)
	assert.Equal(t, 8, s.MaxBurst)
	assert.InDelta(t, 6.0, s.MeanBurst, 1e-9)
	assert.Equal(t, 1, s.MinPriority)
	assert.Equal(t, 3, s.MaxPriority)
	assert.InDelta(t, 2.0, s.MeanPriority, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Count)
	assert.Zero(t, s.MeanBurst)
}

func TestSummarize_SingleProcessHasZeroSpread(t *testing.T) {
	s := Summarize([]sim.Process{sim.NewProcess(1, 5, 7, 2)})
	assert.Equal(t, 1, s.Count)
	assert.InDelta(t, 5.0, s.MeanArrival, 1e-9)
	assert.Zero(t, s.StdDevArrival)
	assert.Zero(t, s.StdDevBurst)
}
