package report

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/yufeimi/ossim-go/pkg/stats"
	"github.com/yufeimi/ossim-go/pkg/types"
)

// PrettyTable renders a boxed summary table to w, an optional companion to
// the required simout.txt output for terminal-facing runs.
func PrettyTable(w io.Writer, algorithm string, r stats.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"metric", "value"})
	table.Append([]string{"algorithm", algorithm})
	table.Append([]string{"avg CPU burst time (ms)", types.FixedDecimal(r.AvgBurstTime)})
	table.Append([]string{"avg wait time (ms)", types.FixedDecimal(r.AvgWaitTime)})
	table.Append([]string{"avg turnaround time (ms)", types.FixedDecimal(r.AvgTurnaround)})
	table.Append([]string{"context switches", strconv.Itoa(r.ContextSwitches)})
	table.Append([]string{"preemptions", strconv.Itoa(r.Preemptions)})
	table.Render()
}
