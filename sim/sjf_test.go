package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSJF_ClassicWorkload(t *testing.T) {
	s := mustSimulator(t, classicProcesses())
	res, err := s.SJF()
	require.NoError(t, err)

	// Only P1 is present at tick 0; afterwards the shortest remaining jobs
	// win: P2(3), P4(6), P3(8).
	want := []GanttEntry{
		{PID: 1, Start: 0, End: 5},
		{PID: 2, Start: 5, End: 8},
		{PID: 4, Start: 8, End: 14},
		{PID: 3, Start: 14, End: 22},
	}
	assert.Equal(t, want, res.Gantt)
	assert.InDelta(t, 5.25, res.AvgWaitingTime, 1e-9)
}

func TestSJF_BurstTieGoesToScanOrder(t *testing.T) {
	s := mustSimulator(t, []Process{
		NewProcess(3, 0, 4, 0),
		NewProcess(1, 0, 4, 0),
		NewProcess(2, 0, 2, 0),
	})
	res, err := s.SJF()
	require.NoError(t, err)

	// P2 is shortest; the 4-tick tie resolves to P3, first in input order.
	want := []GanttEntry{
		{PID: 2, Start: 0, End: 2},
		{PID: 3, Start: 2, End: 6},
		{PID: 1, Start: 6, End: 10},
	}
	assert.Equal(t, want, res.Gantt)
}

func TestSJF_JumpsOverIdleGap(t *testing.T) {
	s := mustSimulator(t, []Process{
		NewProcess(1, 5, 3, 0),
		NewProcess(2, 6, 1, 0),
	})
	res, err := s.SJF()
	require.NoError(t, err)

	// Clock jumps from 0 to 5; P1 runs to completion before P2 despite the
	// shorter burst (non-preemptive).
	want := []GanttEntry{
		{PID: 1, Start: 5, End: 8},
		{PID: 2, Start: 8, End: 9},
	}
	assert.Equal(t, want, res.Gantt)

	p2 := byPID(t, res.Processes, 2)
	assert.Equal(t, 2, p2.WaitingTime)
	assert.Equal(t, 2, p2.ResponseTime)
}

func TestSJF_SingleProcessReduction(t *testing.T) {
	s := mustSimulator(t, []Process{NewProcess(1, 2, 7, 0)})
	res, err := s.SJF()
	require.NoError(t, err)

	p := byPID(t, res.Processes, 1)
	assert.Equal(t, 9, p.CompletionTime)
	assert.Equal(t, 0, p.WaitingTime)
	assert.Equal(t, 0, p.ResponseTime)
}
