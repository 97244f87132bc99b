// Package report formats scheduler run results: the exact-format summary
// file every run appends to, and an optional pretty table for terminals.
package report

import (
	"fmt"
	"io"

	"github.com/yufeimi/ossim-go/pkg/sched"
	"github.com/yufeimi/ossim-go/pkg/stats"
	"github.com/yufeimi/ossim-go/pkg/types"
)

// WriteSummary appends one algorithm's summary block to w, in the exact
// three-decimal fixed-precision format the run's simout.txt accumulates.
func WriteSummary(w io.Writer, algorithm string, r stats.Result) error {
	_, err := fmt.Fprintf(w,
		"Algorithm %s\n"+
			"-- average CPU burst time: %s ms\n"+
			"-- average wait time: %s ms\n"+
			"-- average turnaround time: %s ms\n"+
			"-- total number of context switches: %d\n"+
			"-- total number of preemptions: %d\n",
		algorithm,
		types.FixedDecimal(r.AvgBurstTime),
		types.FixedDecimal(r.AvgWaitTime),
		types.FixedDecimal(r.AvgTurnaround),
		r.ContextSwitches,
		r.Preemptions,
	)
	return err
}

// WriteRunSummary pulls the result Summary out of a finished Simulator and
// writes it, pairing stats.Accumulator.Averages with the policy's own
// preemption counter.
func WriteRunSummary(w io.Writer, sim *sched.Simulator) error {
	r := sim.Stats().Averages(sim.NPreemptions())
	return WriteSummary(w, sim.PolicyName(), r)
}
