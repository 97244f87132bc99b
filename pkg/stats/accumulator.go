// Package stats accumulates the running sums behind the scheduler
// summary file: average CPU burst length, average wait and turnaround
// time per burst, and totals for context switches and preemptions. The
// shape — a small struct of running sums fed one sample at a time,
// queried through an Averages method — follows the same pattern as an
// energy-consumption accumulator folding in one power sample per tick.
package stats

import "github.com/yufeimi/ossim-go/pkg/numeric"

// Accumulator collects per-CPU-burst samples over the lifetime of a
// scheduler run.
type Accumulator struct {
	nBursts       int
	sumBurstLen   int
	sumWait       int
	sumTurnaround int

	nContextSwitches int
}

// New returns a zeroed Accumulator.
func New() *Accumulator {
	return &Accumulator{}
}

// RecordBurst folds in one completed CPU burst: its configured length,
// and the wait/turnaround accumulated against it (the latter already
// includes the two half-context-switches surrounding the burst).
func (a *Accumulator) RecordBurst(wait, turnaround, burstLen int) {
	a.nBursts++
	a.sumBurstLen += burstLen
	a.sumWait += wait
	a.sumTurnaround += turnaround
}

// RecordContextSwitch increments the total context-switch counter.
func (a *Accumulator) RecordContextSwitch() {
	a.nContextSwitches++
}

// Result holds the final averaged figures, ready for three-decimal
// fixed-precision formatting by the report layer.
type Result struct {
	AvgBurstTime    float64
	AvgWaitTime     float64
	AvgTurnaround   float64
	ContextSwitches int
	Preemptions     int
}

// Averages computes the summary Result. nPreemptions is supplied by the
// caller (the policy in use owns that counter, not the accumulator).
func (a *Accumulator) Averages(nPreemptions int) Result {
	n := float64(a.nBursts)
	return Result{
		AvgBurstTime:    numeric.SafeDiv(float64(a.sumBurstLen), n),
		AvgWaitTime:     numeric.SafeDiv(float64(a.sumWait), n),
		AvgTurnaround:   numeric.SafeDiv(float64(a.sumTurnaround), n),
		ContextSwitches: a.nContextSwitches,
		Preemptions:     nPreemptions,
	}
}

// BurstCount reports how many CPU bursts have been recorded so far.
func (a *Accumulator) BurstCount() int { return a.nBursts }
