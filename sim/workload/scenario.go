package workload

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sched-sim/sched-sim/sim"
)

// Scenario is a yaml-declared workload: an explicit process list plus the
// algorithm selection and its parameters. Example:
//
//	name: textbook
//	algorithm: rr
//	time_quantum: 2
//	processes:
//	  - {pid: 1, arrival: 0, burst: 5, priority: 2}
//	  - {pid: 2, arrival: 1, burst: 3, priority: 1}
type Scenario struct {
	Name        string            `yaml:"name"`
	Algorithm   string            `yaml:"algorithm"`
	TimeQuantum int               `yaml:"time_quantum"`
	Preemptive  bool              `yaml:"preemptive"`
	Processes   []ScenarioProcess `yaml:"processes"`
}

// ScenarioProcess is one declared process row.
type ScenarioProcess struct {
	PID      int `yaml:"pid"`
	Arrival  int `yaml:"arrival"`
	Burst    int `yaml:"burst"`
	Priority int `yaml:"priority"`
}

// ParseScenario decodes a scenario document.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return &sc, nil
}

// LoadScenario reads and decodes a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	sc, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

// Build converts the declared rows into engine inputs.
func (sc *Scenario) Build() []sim.Process {
	processes := make([]sim.Process, 0, len(sc.Processes))
	for _, row := range sc.Processes {
		processes = append(processes, sim.NewProcess(row.PID, row.Arrival, row.Burst, row.Priority))
	}
	return processes
}

// Params returns the algorithm parameters the scenario declares.
func (sc *Scenario) Params() sim.Params {
	return sim.Params{TimeQuantum: sc.TimeQuantum, Preemptive: sc.Preemptive}
}
