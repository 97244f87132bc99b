package sched

import (
	"fmt"
	"strings"

	"github.com/yufeimi/ossim-go/pkg/numeric"
)

// State is the coarse lifecycle stage of a process.
type State int

const (
	// Runnable covers both "sitting in the ready queue" and "currently on
	// the CPU" — the simulator, not the process, tracks which CPU (if
	// any) a runnable process occupies.
	Runnable State = iota
	Blocked
	Terminated
)

func (s State) String() string {
	switch s {
	case Runnable:
		return "runnable"
	case Blocked:
		return "blocked"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Process is a scheduler-side process: an identifier, an arrival time, and
// an odd-length alternating sequence of CPU and I/O burst lengths (even
// indices are CPU, odd indices I/O). It carries its own wait/turnaround
// accumulators, reset at the start of every CPU burst, and — for SJF/SRT
// runs only — an exponentially-smoothed burst estimate.
type Process struct {
	ID          rune
	ArrivalTime int
	Bursts      []int

	burstIdx         int // index into Bursts currently being consumed
	remainingInBurst int
	ranInCurrentCPU  int // ms already executed of the current CPU burst

	State State

	WaitAccum       int
	TurnaroundAccum int

	completedCPUBursts int
	totalCPUBursts     int

	tau *numeric.TauEstimator // nil for FCFS/RR
}

// NewProcess builds a process from its arrival time and burst sequence.
// bursts must be non-empty, odd-length (CPU/IO/CPU/.../CPU), and strictly
// positive throughout — a violation here is a programming error in the
// caller, not a recoverable runtime condition, so it panics rather than
// returning an error.
func NewProcess(id rune, arrivalTime int, bursts []int) *Process {
	if len(bursts) == 0 {
		panic(ErrEmptyBurstList)
	}
	if len(bursts)%2 == 0 {
		panic(ErrEvenBurstLength)
	}
	for _, b := range bursts {
		if b <= 0 {
			panic(ErrNonPositiveBurst)
		}
	}

	total := (len(bursts) + 1) / 2
	p := &Process{
		ID:               id,
		ArrivalTime:      arrivalTime,
		Bursts:           bursts,
		remainingInBurst: bursts[0],
		totalCPUBursts:   total,
	}
	return p
}

// EnableTauEstimation installs a SJF/SRT burst estimator seeded at
// ceil(1/lambda). Processes running under FCFS/RR never call this and
// Tau()/UpdateTau become no-ops for them.
func (p *Process) EnableTauEstimation(lambda float64) {
	p.tau = numeric.NewTauEstimator(lambda)
}

// Tau returns the current burst estimate, or 0 if estimation is disabled.
func (p *Process) Tau() int {
	if p.tau == nil {
		return 0
	}
	return p.tau.Tau()
}

// RemainingTau returns tau minus the ms already executed of the current
// CPU burst — the quantity SRT's preemption predicate compares. For a
// process that has not yet started its current burst this equals Tau().
func (p *Process) RemainingTau() int {
	return p.Tau() - p.ranInCurrentCPU
}

// UpdateTau folds the actual length of the just-completed CPU burst into
// the estimator using smoothing factor alpha. No-op under FCFS/RR.
func (p *Process) UpdateTau(alpha float64, actual int) {
	if p.tau == nil {
		return
	}
	p.tau.Update(alpha, actual)
}

// IsCPUBurst reports whether the burst currently being consumed is a CPU
// burst (as opposed to an I/O burst).
func (p *Process) IsCPUBurst() bool {
	return p.burstIdx%2 == 0
}

// RemainingInBurst is the ms left in the burst currently being consumed.
func (p *Process) RemainingInBurst() int {
	return p.remainingInBurst
}

// CurrentBurstLen is the configured (full) length of the burst currently
// being consumed, used by the simulator to record a CPU burst's length
// for statistics before it finishes.
func (p *Process) CurrentBurstLen() int {
	return p.Bursts[p.burstIdx]
}

// ResetBurstAccumulators zeroes the wait/turnaround counters; called at
// the moment a CPU burst first becomes the one the process is waiting to
// run (i.e. when it is admitted to the ready queue for that burst).
func (p *Process) ResetBurstAccumulators() {
	p.WaitAccum = 0
	p.TurnaroundAccum = 0
	p.ranInCurrentCPU = 0
}

// WaitTick advances a ready-queue process by 1 ms: both the wait and the
// turnaround accumulators increase.
func (p *Process) WaitTick() {
	p.WaitAccum++
	p.TurnaroundAccum++
}

// SwitchTick advances a process during a context-switch half: it is
// neither running nor ready, but its turnaround clock for the burst it is
// about to (re-)enter keeps running.
func (p *Process) SwitchTick() {
	p.TurnaroundAccum++
}

// RunResult describes what happened to a process after one tick of
// execution on the CPU.
type RunResult struct {
	BurstFinished bool
	NextState     State // valid only if BurstFinished
}

// RunForOneMS executes 1 ms of the process's current CPU burst. It is the
// caller's responsibility to only invoke this on a process that is both
// IsCPUBurst() and actually assigned the CPU this tick.
func (p *Process) RunForOneMS() RunResult {
	p.TurnaroundAccum++
	p.ranInCurrentCPU++
	p.remainingInBurst--
	if p.remainingInBurst > 0 {
		return RunResult{}
	}
	p.completedCPUBursts++
	return RunResult{BurstFinished: true, NextState: p.advanceBurst()}
}

// BlockForOneMS advances a blocked process's I/O counter by 1 ms.
// Reports whether the I/O burst just completed.
func (p *Process) BlockForOneMS() RunResult {
	p.remainingInBurst--
	if p.remainingInBurst > 0 {
		return RunResult{}
	}
	return RunResult{BurstFinished: true, NextState: p.advanceBurst()}
}

// advanceBurst moves burstIdx to the next segment and returns the state
// the process transitions to: Terminated if that was the final (always
// CPU) burst, Blocked if the next segment is I/O, Runnable if it is CPU.
func (p *Process) advanceBurst() State {
	if p.burstIdx == len(p.Bursts)-1 {
		p.State = Terminated
		return Terminated
	}
	p.burstIdx++
	p.remainingInBurst = p.Bursts[p.burstIdx]
	if p.burstIdx%2 == 1 {
		p.State = Blocked
	} else {
		p.State = Runnable
		p.ranInCurrentCPU = 0
	}
	return p.State
}

// RemainingCPUBursts counts CPU bursts not yet completed, including the
// one currently in progress (or about to start).
func (p *Process) RemainingCPUBursts() int {
	return p.totalCPUBursts - p.completedCPUBursts
}

// CompletedCPUBursts is the count of CPU bursts fully executed so far.
func (p *Process) CompletedCPUBursts() int {
	return p.completedCPUBursts
}

// TotalCPUBursts is the number of CPU bursts in the process's schedule.
func (p *Process) TotalCPUBursts() int {
	return p.totalCPUBursts
}

// Overview renders a one-line human summary: identifier, arrival time,
// and the full burst sequence.
func (p *Process) Overview() string {
	parts := make([]string, len(p.Bursts))
	for i, b := range p.Bursts {
		kind := "CPU"
		if i%2 == 1 {
			kind = "IO"
		}
		parts[i] = fmt.Sprintf("%s:%d", kind, b)
	}
	return fmt.Sprintf("%c arrival=%d bursts=[%s]", p.ID, p.ArrivalTime, strings.Join(parts, " "))
}
