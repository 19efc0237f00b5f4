package workload

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sched-sim/sched-sim/sim"
)

// csvHeader matches the dataset files produced and consumed by the rest of
// the tooling: PID, Arrival_Time, Burst_Time, Priority.
var csvHeader = []string{"PID", "Arrival_Time", "Burst_Time", "Priority"}

// WriteCSV writes one row per process after the header.
func WriteCSV(w io.Writer, processes []sim.Process) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range processes {
		record := []string{
			strconv.Itoa(p.PID),
			strconv.Itoa(p.ArrivalTime),
			strconv.Itoa(p.BurstTime),
			strconv.Itoa(p.Priority),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the dataset to path.
func SaveCSV(path string, processes []sim.Process) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := WriteCSV(f, processes); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadCSV parses a process dataset. The header row is required; field
// validity (unique pids, positive bursts) is the engine's concern, enforced
// when the processes reach sim.NewSimulator.
func ReadCSV(r io.Reader) ([]sim.Process, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv dataset is empty, expected header %v", csvHeader)
	}
	if len(records[0]) != len(csvHeader) {
		return nil, fmt.Errorf("csv header %v, expected %v", records[0], csvHeader)
	}

	processes := make([]sim.Process, 0, len(records)-1)
	for i, record := range records[1:] {
		fields := make([]int, len(csvHeader))
		for j, raw := range record {
			v, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("row %d: parse %s %q: %w", i+1, csvHeader[j], raw, err)
			}
			fields[j] = v
		}
		processes = append(processes, sim.NewProcess(fields[0], fields[1], fields[2], fields[3]))
	}
	return processes, nil
}

// LoadCSV reads a process dataset from path.
func LoadCSV(path string) ([]sim.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f)
}
