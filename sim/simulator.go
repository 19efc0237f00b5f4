// Core simulator object: holds the validated input snapshot and hands each
// algorithm run a fresh working copy, so runs never observe each other's
// mutations and repeated runs are bit-identical.

package sim

// Simulator replays one process set through the scheduling disciplines.
// Each algorithm call starts from an independent deep copy of the input, so
// a single Simulator can run all disciplines back to back, or the same one
// twice, with identical results every time. Runs are pure sequential
// computations with no shared mutable state.
type Simulator struct {
	original []Process
}

// NewSimulator validates the process set once and captures a pristine copy.
// Validation failures surface as ErrInvalidInput before any simulation
// starts. An empty set is valid: every algorithm then produces a result
// with empty process and Gantt lists and all-zero metrics.
func NewSimulator(processes []Process) (*Simulator, error) {
	if err := validateProcesses(processes); err != nil {
		return nil, err
	}
	return &Simulator{original: CloneProcesses(processes)}, nil
}

// snapshot returns a fresh working copy with all outcome fields reset to
// their creation-time sentinels, regardless of what the caller stored in
// them.
func (s *Simulator) snapshot() []Process {
	working := CloneProcesses(s.original)
	for i := range working {
		working[i].RemainingTime = working[i].BurstTime
		working[i].StartTime = unset
		working[i].ResponseTime = unset
		working[i].CompletionTime = 0
		working[i].TurnaroundTime = 0
		working[i].WaitingTime = 0
	}
	return working
}
