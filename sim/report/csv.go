package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sched-sim/sched-sim/sim"
)

var summaryHeader = []string{
	"algorithm",
	"avg_waiting_time",
	"avg_turnaround_time",
	"avg_response_time",
	"throughput",
	"cpu_utilization",
	"context_switches",
	"total_time",
}

// WriteComparisonCSV exports the aggregate metrics, one row per algorithm.
func WriteComparisonCSV(w io.Writer, results []*sim.SchedulingResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(summaryHeader); err != nil {
		return err
	}
	for _, res := range results {
		record := []string{
			res.Algorithm,
			strconv.FormatFloat(res.AvgWaitingTime, 'f', 2, 64),
			strconv.FormatFloat(res.AvgTurnaroundTime, 'f', 2, 64),
			strconv.FormatFloat(res.AvgResponseTime, 'f', 2, 64),
			strconv.FormatFloat(res.Throughput, 'f', 4, 64),
			strconv.FormatFloat(res.CPUUtilization, 'f', 2, 64),
			strconv.Itoa(res.ContextSwitches),
			strconv.Itoa(res.TotalTime),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveComparisonCSV writes the comparison summary to path.
func SaveComparisonCSV(path string, results []*sim.SchedulingResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := WriteComparisonCSV(f, results); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
