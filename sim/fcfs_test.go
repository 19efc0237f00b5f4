package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFCFS_ClassicWorkload(t *testing.T) {
	s := mustSimulator(t, classicProcesses())
	res, err := s.FCFS()
	require.NoError(t, err)

	want := []GanttEntry{
		{PID: 1, Start: 0, End: 5},
		{PID: 2, Start: 5, End: 8},
		{PID: 3, Start: 8, End: 16},
		{PID: 4, Start: 16, End: 22},
	}
	assert.Equal(t, want, res.Gantt)
	assert.InDelta(t, 5.75, res.AvgWaitingTime, 1e-9)
	assert.InDelta(t, 11.25, res.AvgTurnaroundTime, 1e-9)
	assert.Equal(t, 22, res.TotalTime)
	assert.Equal(t, 3, res.ContextSwitches)
	assert.InDelta(t, 100.0, res.CPUUtilization, 1e-9)
	assert.InDelta(t, 4.0/22.0, res.Throughput, 1e-9)
}

func TestFCFS_IdlesUntilNextArrival(t *testing.T) {
	s := mustSimulator(t, []Process{
		NewProcess(1, 0, 2, 0),
		NewProcess(2, 10, 3, 0),
	})
	res, err := s.FCFS()
	require.NoError(t, err)

	want := []GanttEntry{
		{PID: 1, Start: 0, End: 2},
		{PID: 2, Start: 10, End: 13},
	}
	assert.Equal(t, want, res.Gantt)
	assert.Equal(t, 13, res.TotalTime)
	// 5 busy ticks out of 13 elapsed.
	assert.InDelta(t, 5.0/13.0*100, res.CPUUtilization, 1e-9)
}

func TestFCFS_SingleProcessReduction(t *testing.T) {
	s := mustSimulator(t, []Process{NewProcess(1, 4, 6, 0)})
	res, err := s.FCFS()
	require.NoError(t, err)

	p := byPID(t, res.Processes, 1)
	assert.Equal(t, 10, p.CompletionTime)
	assert.Equal(t, 0, p.WaitingTime)
	assert.Equal(t, 0, p.ResponseTime)
	assert.Equal(t, 4, p.StartTime)
}

func TestFCFS_ArrivalTieKeepsInputOrder(t *testing.T) {
	s := mustSimulator(t, []Process{
		NewProcess(5, 3, 2, 0),
		NewProcess(2, 3, 4, 0),
		NewProcess(9, 0, 1, 0),
	})
	res, err := s.FCFS()
	require.NoError(t, err)

	want := []GanttEntry{
		{PID: 9, Start: 0, End: 1},
		{PID: 5, Start: 3, End: 5},
		{PID: 2, Start: 5, End: 9},
	}
	assert.Equal(t, want, res.Gantt)
}
