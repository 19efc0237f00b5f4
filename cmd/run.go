package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sched-sim/sched-sim/sim"
	"github.com/sched-sim/sched-sim/sim/report"
	"github.com/sched-sim/sched-sim/sim/workload"
)

var (
	algorithm   string
	timeQuantum int
	preemptive  bool
)

// runCmd executes one scheduling discipline over the selected input and
// prints the Gantt chart and process table.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scheduling algorithm and print its timeline and metrics",
	Run: func(cmd *cobra.Command, args []string) {
		params := sim.Params{TimeQuantum: timeQuantum, Preemptive: preemptive}
		alg := algorithm

		var processes []sim.Process
		if scenarioPath != "" {
			sc, err := workload.LoadScenario(scenarioPath)
			if err != nil {
				logrus.Fatalf("load scenario: %v", err)
			}
			processes = sc.Build()
			// The scenario file picks the algorithm unless overridden.
			if sc.Algorithm != "" && !cmd.Flags().Changed("algorithm") {
				alg = sc.Algorithm
				params = sc.Params()
				if params.TimeQuantum == 0 {
					params.TimeQuantum = timeQuantum
				}
			}
		} else {
			var err error
			processes, err = loadProcesses()
			if err != nil {
				logrus.Fatalf("load input: %v", err)
			}
		}

		logrus.Infof("running %s over %d processes", alg, len(processes))

		s, err := sim.NewSimulator(processes)
		if err != nil {
			logrus.Fatalf("invalid process set: %v", err)
		}
		result, err := s.Run(alg, params)
		if err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}

		report.WriteGantt(os.Stdout, result)
		report.WriteProcessTable(os.Stdout, result)
	},
}

func init() {
	runCmd.Flags().StringVar(&algorithm, "algorithm", sim.AlgFCFS, "Algorithm (fcfs, sjf, srtf, priority, rr)")
	runCmd.Flags().IntVar(&timeQuantum, "quantum", 2, "Time quantum for round robin")
	runCmd.Flags().BoolVar(&preemptive, "preemptive", false, "Preemptive variant for priority scheduling")
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "CSV process dataset")
	runCmd.Flags().StringVar(&workloadName, "workload", "uniform", "Generated workload (uniform, burst-heavy, priority-focused, simultaneous, mixed)")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for workload generation")
	runCmd.Flags().IntVar(&numProcesses, "n", 10, "Number of generated processes")

	rootCmd.AddCommand(runCmd)
}
