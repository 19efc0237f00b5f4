package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sched-sim/sched-sim/sim"
	"github.com/sched-sim/sched-sim/sim/workload"
)

func classicResults(t *testing.T) []*sim.SchedulingResult {
	t.Helper()
	s, err := sim.NewSimulator([]sim.Process{
		sim.NewProcess(1, 0, 5, 2),
		sim.NewProcess(2, 1, 3, 1),
		sim.NewProcess(3, 2, 8, 3),
		sim.NewProcess(4, 3, 6, 4),
	})
	require.NoError(t, err)
	results, err := s.RunAll(2)
	require.NoError(t, err)
	return results
}

func TestWriteGantt(t *testing.T) {
	fcfs := classicResults(t)[0]

	var buf bytes.Buffer
	WriteGantt(&buf, fcfs)
	out := buf.String()

	assert.Contains(t, out, "Gantt Chart for FCFS")
	for _, cell := range []string{"P1", "P2", "P3", "P4"} {
		assert.Contains(t, out, cell)
	}
	// Final time marker is the last completion.
	assert.Contains(t, out, "22")
}

func TestWriteGantt_EmptyResult(t *testing.T) {
	s, err := sim.NewSimulator(nil)
	require.NoError(t, err)
	res, err := s.FCFS()
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteGantt(&buf, res)
	assert.Contains(t, buf.String(), "(no execution)")
}

func TestWriteProcessTable(t *testing.T) {
	fcfs := classicResults(t)[0]

	var buf bytes.Buffer
	WriteProcessTable(&buf, fcfs)
	out := buf.String()

	assert.Contains(t, out, "Process Details for FCFS")
	assert.Contains(t, out, "Average Waiting Time    : 5.75")
	assert.Contains(t, out, "CPU Utilization         : 100.00%")
	assert.Contains(t, out, "Context Switches        : 3")
}

func TestWriteComparison(t *testing.T) {
	var buf bytes.Buffer
	WriteComparison(&buf, classicResults(t))
	out := buf.String()

	for _, name := range []string{"FCFS", "SJF", "SRTF", "Priority (Non-Preemptive)", "Priority (Preemptive)", "Round Robin (Q=2)"} {
		assert.Contains(t, out, name)
	}
}

func TestWriteComparisonCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteComparisonCSV(&buf, classicResults(t)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	// Header plus one row per discipline.
	require.Len(t, records, 7)
	assert.Equal(t, summaryHeader, records[0])
	assert.Equal(t, "FCFS", records[1][0])
	assert.Equal(t, "5.75", records[1][1])
}

func TestWriteSummary(t *testing.T) {
	dataset := workload.NewGenerator(42).Uniform(10, 20, 15, 5)

	var buf bytes.Buffer
	WriteSummary(&buf, "uniform", workload.Summarize(dataset))
	out := buf.String()

	assert.Contains(t, out, "Dataset: uniform")
	assert.Contains(t, out, "Processes           : 10")
	assert.True(t, strings.Contains(out, "Arrival Time Range"))
}
