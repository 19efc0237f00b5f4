// Synthesizes process datasets for exercising the scheduling disciplines.
// Every generator draws from a single seeded source, so the same seed always
// reproduces the same dataset.

package workload

import (
	"math/rand"

	"github.com/sched-sim/sched-sim/sim"
)

// Generator synthesizes process sets with pids 1..n.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator seeded for reproducible output.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// intn draws uniformly from [lo, hi] inclusive.
func (g *Generator) intn(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

// Uniform draws arrival, burst and priority uniformly at random.
func (g *Generator) Uniform(n, maxArrival, maxBurst, maxPriority int) []sim.Process {
	processes := make([]sim.Process, 0, n)
	for pid := 1; pid <= n; pid++ {
		processes = append(processes, sim.NewProcess(
			pid,
			g.intn(0, maxArrival),
			g.intn(1, maxBurst),
			g.intn(1, maxPriority),
		))
	}
	return processes
}

// BurstHeavy mixes mostly short jobs with a 30% share of long ones,
// useful for stressing SJF and SRTF.
func (g *Generator) BurstHeavy(n, maxArrival int) []sim.Process {
	processes := make([]sim.Process, 0, n)
	for pid := 1; pid <= n; pid++ {
		arrival := g.intn(0, maxArrival)
		var burst int
		if g.rng.Float64() < 0.3 {
			burst = g.intn(15, 30)
		} else {
			burst = g.intn(1, 8)
		}
		processes = append(processes, sim.NewProcess(pid, arrival, burst, g.intn(1, 5)))
	}
	return processes
}

// PriorityFocused assigns each process a distinct priority from a shuffled
// 1..n permutation, useful for exercising the priority disciplines.
func (g *Generator) PriorityFocused(n, maxArrival int) []sim.Process {
	perm := g.rng.Perm(n)
	processes := make([]sim.Process, 0, n)
	for pid := 1; pid <= n; pid++ {
		processes = append(processes, sim.NewProcess(
			pid,
			g.intn(0, maxArrival),
			g.intn(2, 12),
			perm[pid-1]+1,
		))
	}
	return processes
}

// SimultaneousArrival packs all arrivals into a small window, useful for
// round robin and the preemptive disciplines.
func (g *Generator) SimultaneousArrival(n, window int) []sim.Process {
	processes := make([]sim.Process, 0, n)
	for pid := 1; pid <= n; pid++ {
		processes = append(processes, sim.NewProcess(
			pid,
			g.intn(0, window),
			g.intn(3, 10),
			g.intn(1, 5),
		))
	}
	return processes
}

// Mixed produces a realistic blend: 20% CPU-bound long jobs at low urgency,
// 30% short jobs at high urgency, and 50% in between.
func (g *Generator) Mixed(n, maxArrival int) []sim.Process {
	processes := make([]sim.Process, 0, n)
	for pid := 1; pid <= n; pid++ {
		arrival := g.intn(0, maxArrival)
		var burst, priority int
		switch kind := g.rng.Float64(); {
		case kind < 0.2:
			burst = g.intn(15, 25)
			priority = g.intn(3, 5)
		case kind < 0.5:
			burst = g.intn(1, 5)
			priority = g.intn(1, 3)
		default:
			burst = g.intn(5, 12)
			priority = g.intn(2, 4)
		}
		processes = append(processes, sim.NewProcess(pid, arrival, burst, priority))
	}
	return processes
}
