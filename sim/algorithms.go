package sim

import "fmt"

// Algorithm identifiers accepted by the CLI and the HTTP API.
const (
	AlgFCFS       = "fcfs"
	AlgSJF        = "sjf"
	AlgSRTF       = "srtf"
	AlgPriority   = "priority"
	AlgRoundRobin = "rr"
)

// Params carries the per-algorithm knobs. TimeQuantum applies to round
// robin, Preemptive to priority scheduling; the other disciplines ignore
// both.
type Params struct {
	TimeQuantum int
	Preemptive  bool
}

// Algorithms lists the valid algorithm identifiers in display order.
func Algorithms() []string {
	return []string{AlgFCFS, AlgSJF, AlgSRTF, AlgPriority, AlgRoundRobin}
}

// Run dispatches to the named discipline. Unknown names are reported as
// ErrInvalidInput.
func (s *Simulator) Run(algorithm string, params Params) (*SchedulingResult, error) {
	switch algorithm {
	case AlgFCFS:
		return s.FCFS()
	case AlgSJF:
		return s.SJF()
	case AlgSRTF:
		return s.SRTF()
	case AlgPriority:
		return s.Priority(params.Preemptive)
	case AlgRoundRobin:
		return s.RoundRobin(params.TimeQuantum)
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidInput, algorithm)
	}
}

// RunAll executes every discipline over the same input, each from its own
// fresh copy: FCFS, SJF, SRTF, both priority variants, and round robin with
// the given quantum. Results come back in that order.
func (s *Simulator) RunAll(timeQuantum int) ([]*SchedulingResult, error) {
	runs := []func() (*SchedulingResult, error){
		s.FCFS,
		s.SJF,
		s.SRTF,
		func() (*SchedulingResult, error) { return s.Priority(false) },
		func() (*SchedulingResult, error) { return s.Priority(true) },
		func() (*SchedulingResult, error) { return s.RoundRobin(timeQuantum) },
	}

	results := make([]*SchedulingResult, 0, len(runs))
	for _, run := range runs {
		res, err := run()
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
