// Command memsim runs the event-driven memory-placement core over a
// workload file, reporting placements, skips, and defragmentations.
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

	"github.com/yufeimi/ossim-go/internal/workload"
	"github.com/yufeimi/ossim-go/pkg/mem"
)

func main() {
	root := &cobra.Command{
		Use:   "memsim <frames_per_line> <n_frames> <input_file> <t_memmove> <algorithm>",
		Short: "Event-driven memory-placement simulator",
		Long: `memsim simulates a single memory region carved up by one of four
placement policies (first-fit, next-fit, best-fit, non-contiguous) as
processes arrive and depart according to a workload file.`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args)
		},
	}

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	framesPerLine, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("memsim: invalid frames_per_line %q: %w", args[0], err)
	}
	nFrames, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("memsim: invalid n_frames %q: %w", args[1], err)
	}
	inputPath := args[2]
	tMemmove, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("memsim: invalid t_memmove %q: %w", args[3], err)
	}
	algo, err := mem.ParseAlgorithm(args[4])
	if err != nil {
		return err
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("memsim: opening input file: %w", err)
	}
	defer f.Close()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	processes, warnings := workload.ParseMemoryFile(f)
	for _, w := range warnings {
		slog.Warn("skipped malformed workload line", "detail", w.String())
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("memsim: interrupted before run: %w", err)
	}

	cfg := mem.Config{FramesPerLine: framesPerLine, MemorySize: nFrames, TMemmove: tMemmove}
	sim, err := mem.NewSimulator(cfg, algo, processes, os.Stdout)
	if err != nil {
		return err
	}
	for _, p := range processes {
		fmt.Printf("Process %c: %d frames, %d occupancy window(s)\n", p.ID, p.Size, len(p.Schedule))
	}
	sim.Run()
	return nil
}
