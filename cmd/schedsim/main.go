// Command schedsim runs the CPU-scheduling core over a synthetically
// generated workload and appends its summary statistics to simout.txt.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yufeimi/ossim-go/internal/report"
	"github.com/yufeimi/ossim-go/internal/workload"
	"github.com/yufeimi/ossim-go/pkg/sched"
	"github.com/yufeimi/ossim-go/pkg/types"
)

var (
	summaryPath string
	prettyTable bool
)

func main() {
	root := &cobra.Command{
		Use:   "schedsim <seed> <lambda> <upper_bound> <n> <t_cs> <alpha> <t_slice> [rr_add]",
		Short: "CPU-scheduling simulator (FCFS, SJF, SRT, Round-Robin)",
		Args:  cobra.RangeArgs(7, 8),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args)
		},
	}
	registerOutputFlags(root.Flags())

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func registerOutputFlags(fs *pflag.FlagSet) {
	fs.StringVar(&summaryPath, "summary-file", "simout.txt", "file the run's summary statistics are appended to")
	fs.BoolVar(&prettyTable, "table", false, "also render a boxed summary table to stdout")
}

func run(ctx context.Context, args []string) error {
	seed, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("schedsim: invalid seed %q: %w", args[0], err)
	}
	lambda, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("schedsim: invalid lambda %q: %w", args[1], err)
	}
	upperBound, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("schedsim: invalid upper_bound %q: %w", args[2], err)
	}
	n, err := strconv.Atoi(args[3])
	if err != nil || n < 1 || n > 26 {
		return sched.ErrInvalidN
	}
	tcs, err := strconv.Atoi(args[4])
	if err != nil {
		return fmt.Errorf("schedsim: invalid t_cs %q: %w", args[4], err)
	}
	alpha, err := strconv.ParseFloat(args[5], 64)
	if err != nil {
		return fmt.Errorf("schedsim: invalid alpha %q: %w", args[5], err)
	}
	tslice, err := strconv.Atoi(args[6])
	if err != nil {
		return fmt.Errorf("schedsim: invalid t_slice %q: %w", args[6], err)
	}
	rrAddArg := ""
	if len(args) == 8 {
		rrAddArg = args[7]
	}
	rrAdd, err := sched.ParseRRAdd(rrAddArg)
	if err != nil {
		return err
	}

	cfg := sched.Config{TCS: types.Millis(tcs), TSlice: tslice, Alpha: alpha, Lambda: lambda, RRAdd: rrAdd}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if tslice <= 0 {
		return sched.ErrInvalidTSlice
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src := workload.NewSeededSource(seed)
	generated := workload.Generate(src, lambda, upperBound, n)

	summary, err := os.OpenFile(summaryPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("schedsim: opening summary file: %w", err)
	}
	defer summary.Close()

	for _, policy := range []sched.Policy{
		sched.FCFSPolicy{},
		sched.NewSJFPolicy(alpha),
		sched.NewSRTPolicy(alpha),
		sched.NewRRPolicy(tslice, rrAdd),
	} {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("schedsim: interrupted before %s: %w", policy.Name(), err)
		}
		processes := buildProcesses(generated, policy.UsesTauEstimation(), lambda)
		sim, err := sched.NewSimulator(cfg, processes, policy, os.Stdout)
		if err != nil {
			return err
		}
		for _, p := range processes {
			fmt.Println(p.Overview())
		}
		sim.Run()

		if err := report.WriteRunSummary(summary, sim); err != nil {
			return fmt.Errorf("schedsim: writing summary: %w", err)
		}
		if prettyTable {
			report.PrettyTable(os.Stdout, sim.PolicyName(), sim.Stats().Averages(sim.NPreemptions()))
		}
	}
	return nil
}

func buildProcesses(generated []workload.GeneratedProcess, tau bool, lambda float64) []*sched.Process {
	processes := make([]*sched.Process, 0, len(generated))
	for _, g := range generated {
		p := sched.NewProcess(g.ID, g.ArrivalTime, g.Bursts)
		if tau {
			p.EnableTauEstimation(lambda)
		}
		processes = append(processes, p)
	}
	return processes
}
