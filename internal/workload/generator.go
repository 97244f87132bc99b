// Package workload supplies the two external collaborators the cores
// depend on but do not own: a seeded synthetic process generator for the
// scheduler, and a line-oriented parser for the memory experiment's
// input file.
package workload

import (
	"math"
	"math/rand"
)

// UniformSource is the injectable randomness seam the scheduler
// generator is built against — a stream of uniform doubles in [0, 1).
// Production code backs it with a seeded PRNG; tests replay a fixed
// sequence, keeping the generator itself deterministic and unit-testable
// without touching global random state.
type UniformSource interface {
	Float64() float64
}

// seededSource is a seeded stream backed by math/rand, so a given seed
// always replays the same sequence.
type seededSource struct {
	rng *rand.Rand
}

// NewSeededSource returns a UniformSource seeded deterministically from
// seed, suitable for production use by the scheduler CLI.
func NewSeededSource(seed int64) UniformSource {
	return &seededSource{rng: rand.New(rand.NewSource(seed))}
}

func (d *seededSource) Float64() float64 { return d.rng.Float64() }

// GeneratedProcess is the plain-data result of sampling one synthetic
// process: an arrival time and an alternating CPU/IO burst sequence
// ready to hand to sched.NewProcess.
type GeneratedProcess struct {
	ID          rune
	ArrivalTime int
	Bursts      []int
}

// Generate draws n synthetic processes (IDs 'A'..'Z', n <= 26) using the
// exponential distribution with rate lambda: draw -log(u)/lambda,
// rejecting and redrawing any sample exceeding upperBound.
func Generate(src UniformSource, lambda float64, upperBound int, n int) []GeneratedProcess {
	procs := make([]GeneratedProcess, 0, n)
	arrival := 0
	for i := 0; i < n; i++ {
		interArrival := int(math.Ceil(sampleBounded(src, lambda, float64(upperBound))))
		arrival += interArrival
		numCPUBursts := int(src.Float64()*100) + 1
		bursts := make([]int, 0, 2*numCPUBursts-1)
		for b := 0; b < numCPUBursts; b++ {
			cpu := int(math.Ceil(sampleBounded(src, lambda, float64(upperBound))))
			bursts = append(bursts, cpu)
			if b != numCPUBursts-1 {
				io := int(math.Ceil(sampleBounded(src, lambda, float64(upperBound)))) * 10
				bursts = append(bursts, io)
			}
		}
		procs = append(procs, GeneratedProcess{
			ID:          rune('A' + i),
			ArrivalTime: arrival,
			Bursts:      bursts,
		})
	}
	return procs
}

// sampleBounded draws from Exp(lambda) via inverse-CDF sampling,
// redrawing while the sample exceeds upperBound.
func sampleBounded(src UniformSource, lambda, upperBound float64) float64 {
	for {
		u := src.Float64()
		if u <= 0 {
			u = 1e-12
		}
		x := -math.Log(u) / lambda
		if x <= upperBound {
			return x
		}
	}
}
