package sim

import "fmt"

// validateProcesses applies the once-per-run input checks. An empty set is
// valid and simulates to an all-zero result.
func validateProcesses(processes []Process) error {
	seen := make(map[int]struct{}, len(processes))
	for _, p := range processes {
		if p.PID < 0 {
			return fmt.Errorf("%w: negative pid %d", ErrInvalidInput, p.PID)
		}
		if _, dup := seen[p.PID]; dup {
			return fmt.Errorf("%w: duplicate pid %d", ErrInvalidInput, p.PID)
		}
		seen[p.PID] = struct{}{}
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: process %d has non-positive burst time %d", ErrInvalidInput, p.PID, p.BurstTime)
		}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %d has negative arrival time %d", ErrInvalidInput, p.PID, p.ArrivalTime)
		}
	}
	return nil
}
