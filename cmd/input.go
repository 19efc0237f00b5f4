package cmd

import (
	"fmt"

	"github.com/sched-sim/sched-sim/sim"
	"github.com/sched-sim/sched-sim/sim/workload"
)

// Input-source flags shared by run and compare. Precedence: scenario file,
// then CSV dataset, then a generated workload.
var (
	scenarioPath string
	csvPath      string
	workloadName string
	seed         int64
	numProcesses int
)

// buildWorkload synthesizes a named dataset with the defaults the original
// tooling ships.
func buildWorkload(g *workload.Generator, name string, n int) ([]sim.Process, error) {
	switch name {
	case "uniform":
		return g.Uniform(n, 20, 15, 5), nil
	case "burst-heavy":
		return g.BurstHeavy(n, 10), nil
	case "priority-focused":
		return g.PriorityFocused(n, 15), nil
	case "simultaneous":
		return g.SimultaneousArrival(n, 3), nil
	case "mixed":
		return g.Mixed(n, 25), nil
	default:
		return nil, fmt.Errorf("unknown workload %q (valid: uniform, burst-heavy, priority-focused, simultaneous, mixed)", name)
	}
}

// loadProcesses resolves the input source flags to a process set.
func loadProcesses() ([]sim.Process, error) {
	switch {
	case scenarioPath != "":
		sc, err := workload.LoadScenario(scenarioPath)
		if err != nil {
			return nil, err
		}
		return sc.Build(), nil
	case csvPath != "":
		return workload.LoadCSV(csvPath)
	default:
		return buildWorkload(workload.NewGenerator(seed), workloadName, numProcesses)
	}
}
