package sim

import "testing"

// classicProcesses is the textbook four-process workload used across the
// algorithm tests: P1(AT=0,BT=5,pr=2), P2(AT=1,BT=3,pr=1),
// P3(AT=2,BT=8,pr=3), P4(AT=3,BT=6,pr=4).
func classicProcesses() []Process {
	return []Process{
		NewProcess(1, 0, 5, 2),
		NewProcess(2, 1, 3, 1),
		NewProcess(3, 2, 8, 3),
		NewProcess(4, 3, 6, 4),
	}
}

func mustSimulator(t *testing.T, processes []Process) *Simulator {
	t.Helper()
	s, err := NewSimulator(processes)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	return s
}

func ganttEqual(a, b []GanttEntry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// byPID returns the finalized process with the given pid.
func byPID(t *testing.T, processes []Process, pid int) Process {
	t.Helper()
	for _, p := range processes {
		if p.PID == pid {
			return p
		}
	}
	t.Fatalf("pid %d not found in result", pid)
	return Process{}
}
