package sched

import (
	"io"
	"sort"

	"github.com/yufeimi/ossim-go/pkg/stats"
	"github.com/yufeimi/ossim-go/pkg/types"
)

type cpuMode int

const (
	cpuIdle cpuMode = iota
	cpuRunning
	cpuSwitchOut
	cpuSwitchIn
)

// cpuBoundary records the CPU-side transition a just-finished tick
// produced, deferred one tick so phase 1 of the following tick can
// announce it — mirroring the way every other staged transition in this
// simulator is detected one phase before it is acted on.
type cpuBoundary struct {
	proc        *Process
	dest        string // "blocked" | "terminated"
	actualBurst int
}

// Simulator drives the single-CPU tick loop described by the scheduler
// core: one millisecond at a time, in a fixed eight-phase order, with a
// pluggable Policy supplying admission order, preemption, and
// re-insertion.
type Simulator struct {
	cfg       Config
	policy    Policy
	processes []*Process

	rq      *ReadyQueue
	blocked []*Process

	now int

	mode               cpuMode
	running            *Process
	ranSinceDispatch   int
	switchRemaining    types.Millis
	switchOutgoing     *Process
	switchOutgoingDest string
	switchOutgoingLen  int
	switchIncoming     *Process

	pendingCPUBoundary *cpuBoundary
	pendingIOCompleted []*Process

	nContextSwitches int
	nTerminated      int

	tl    *timeline
	stats *stats.Accumulator
}

// NewSimulator builds a Simulator over processes, which must already
// carry tau estimators installed (via EnableTauEstimation) if policy
// needs them. out receives the timeline event stream.
func NewSimulator(cfg Config, processes []*Process, policy Policy, out io.Writer) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(processes) == 0 {
		return nil, ErrNoProcesses
	}
	seen := map[rune]bool{}
	for _, p := range processes {
		if seen[p.ID] {
			return nil, ErrDuplicateID
		}
		seen[p.ID] = true
	}
	return &Simulator{
		cfg:       cfg,
		policy:    policy,
		processes: processes,
		rq:        NewReadyQueue(),
		tl:        newTimeline(out),
		stats:     stats.New(),
	}, nil
}

// Stats returns the running statistics accumulator.
func (s *Simulator) Stats() *stats.Accumulator { return s.stats }

// NPreemptions reports the total preemptions recorded by the policy.
func (s *Simulator) NPreemptions() int { return s.policy.NPreemptions() }

// PolicyName reports the scheduling policy's display name.
func (s *Simulator) PolicyName() string { return s.policy.Name() }

// Run executes the tick loop until every process has terminated and the
// CPU has returned to idle, emitting the full timeline to the writer
// supplied at construction.
func (s *Simulator) Run() {
	s.tl.always(0, simulatorStarted(s.policy.Name()), nil)
	for !s.done() {
		s.tick()
	}
	s.tl.always(s.now, simulatorEnded(s.policy.Name()), nil)
}

func (s *Simulator) done() bool {
	return s.nTerminated == len(s.processes) &&
		s.mode == cpuIdle &&
		s.pendingCPUBoundary == nil &&
		len(s.pendingIOCompleted) == 0
}

func (s *Simulator) tick() {
	s.phase1Announce()

	staged := s.phase2CollectArrivals()
	staged = append(staged, s.pendingIOCompleted...)
	s.pendingIOCompleted = nil
	sortByID(staged)

	s.phase3BlockTick()
	s.phase4Admit(staged)
	s.phase5WaitTick()
	s.phase6Dispatch()
	s.phase7Run()

	s.now++ // phase 8
}

func (s *Simulator) phase1Announce() {
	b := s.pendingCPUBoundary
	if b == nil {
		return
	}
	s.pendingCPUBoundary = nil

	switch b.dest {
	case "terminated":
		s.tl.always(s.now, terminatedEvent(b.proc.ID), s.queueIDs())
	case "blocked":
		s.tl.maybe(s.now, burstCompletedEvent(b.proc.ID, b.proc.RemainingCPUBursts()), s.queueIDs())
		// The process re-enters the ready queue once its switch-out
		// half and then its whole I/O burst have elapsed.
		until := s.now + int(s.half()) + b.proc.RemainingInBurst()
		s.tl.maybe(s.now, blockingEvent(b.proc.ID, until), s.queueIDs())
		if s.policy.UsesTauEstimation() {
			b.proc.UpdateTau(s.cfg.Alpha, b.actualBurst)
			s.tl.maybe(s.now, recalculatedTauEvent(b.proc.ID, b.proc.Tau()), s.queueIDs())
		}
	}
}

func (s *Simulator) phase2CollectArrivals() []*Process {
	var staged []*Process
	for _, p := range s.processes {
		if p.ArrivalTime == s.now {
			staged = append(staged, p)
		}
	}
	return staged
}

func (s *Simulator) phase3BlockTick() {
	still := s.blocked[:0]
	for _, p := range s.blocked {
		res := p.BlockForOneMS()
		if res.BurstFinished {
			s.pendingIOCompleted = append(s.pendingIOCompleted, p)
		} else {
			still = append(still, p)
		}
	}
	s.blocked = still
}

func (s *Simulator) phase4Admit(staged []*Process) {
	if len(staged) == 0 {
		return
	}
	isArrival := make(map[*Process]bool, len(staged))
	for _, p := range staged {
		isArrival[p] = p.ArrivalTime == s.now
		p.ResetBurstAccumulators()
	}
	s.policy.Admit(s.rq, staged)
	for _, p := range staged {
		if isArrival[p] {
			s.tl.maybe(s.now, arrivedEvent(p.ID), s.queueIDs())
		} else {
			s.tl.maybe(s.now, ioCompletedEvent(p.ID), s.queueIDs())
		}
	}
}

func (s *Simulator) phase5WaitTick() {
	s.rq.Each(func(p *Process) { p.WaitTick() })
}

// phase6Dispatch advances the context-switch state machine by exactly one
// millisecond. Each half occupies t_cs/2 ticks during which nothing runs;
// the incoming process begins its burst on the tick after its switch-in
// half is exhausted, never sharing a tick with a switch millisecond.
func (s *Simulator) phase6Dispatch() {
	switch s.mode {
	case cpuRunning:
		if !s.policy.Preempts(s.running, s.rq, s.ranSinceDispatch) {
			return
		}
		s.beginPreemptSwitch()
		s.tickSwitchOut()
	case cpuSwitchOut:
		s.tickSwitchOut()
	case cpuSwitchIn:
		if s.switchRemaining == 0 {
			s.completeSwitchIn()
			return
		}
		s.switchIncoming.SwitchTick()
		s.switchRemaining--
	case cpuIdle:
		if s.rq.Len() == 0 {
			return
		}
		// The popped head spent this tick's wait phase in the queue, so
		// this millisecond already counts toward the switch-in half.
		s.switchIncoming = s.rq.PopFront()
		s.mode = cpuSwitchIn
		s.switchRemaining = s.half() - 1
	}
}

// tickSwitchOut consumes one millisecond of the switch-out half. When the
// half is exhausted the outgoing process settles into its destination and
// the switch-in half for the next ready process begins with the following
// tick, or the CPU goes idle if nobody is waiting.
func (s *Simulator) tickSwitchOut() {
	s.switchOutgoing.SwitchTick()
	s.switchRemaining--
	if s.switchRemaining > 0 {
		return
	}
	s.settleOutgoing()
	if s.rq.Len() == 0 {
		s.mode = cpuIdle
		return
	}
	s.switchIncoming = s.rq.PopFront()
	s.mode = cpuSwitchIn
	s.switchRemaining = s.half()
}

func (s *Simulator) beginPreemptSwitch() {
	outgoing := s.running
	head := s.rq.Front()
	switch s.policy.(type) {
	case *RRPolicy:
		s.tl.maybe(s.now, timeSliceExpiredEvent(outgoing.ID), s.queueIDs())
	case *SRTPolicy:
		if head != nil {
			s.tl.maybe(s.now, preemptEvent(head.ID, outgoing.ID), s.queueIDs())
		}
	}
	s.running = nil
	s.switchOutgoing = outgoing
	s.switchOutgoingDest = "ready"
	s.mode = cpuSwitchOut
	s.switchRemaining = s.half()
}

func (s *Simulator) settleOutgoing() {
	p := s.switchOutgoing
	s.switchOutgoing = nil
	if p == nil {
		return
	}
	switch s.switchOutgoingDest {
	case "ready":
		s.policy.Reinsert(s.rq, p)
	case "blocked":
		s.blocked = append(s.blocked, p)
		s.stats.RecordBurst(p.WaitAccum, p.TurnaroundAccum, s.switchOutgoingLen)
	case "terminated":
		s.nTerminated++
		s.stats.RecordBurst(p.WaitAccum, p.TurnaroundAccum, s.switchOutgoingLen)
	}
}

func (s *Simulator) completeSwitchIn() {
	s.running = s.switchIncoming
	s.switchIncoming = nil
	s.ranSinceDispatch = 0
	s.nContextSwitches++
	s.stats.RecordContextSwitch()
	s.mode = cpuRunning
	s.tl.maybe(s.now, dispatchedEvent(s.running.ID, s.running.RemainingInBurst(), s.running.Tau(), s.policy.UsesTauEstimation()), s.queueIDs())
}

func (s *Simulator) phase7Run() {
	if s.mode != cpuRunning || s.running == nil {
		return
	}
	s.ranSinceDispatch++
	p := s.running
	burstLen := p.CurrentBurstLen()
	res := p.RunForOneMS()
	if !res.BurstFinished {
		return
	}

	dest := "blocked"
	if res.NextState == Terminated {
		dest = "terminated"
	}

	s.running = nil
	s.mode = cpuSwitchOut
	s.switchRemaining = s.half()
	s.switchOutgoing = p
	s.switchOutgoingDest = dest
	s.switchOutgoingLen = burstLen
	s.pendingCPUBoundary = &cpuBoundary{proc: p, dest: dest, actualBurst: burstLen}
}

func (s *Simulator) half() types.Millis {
	return s.cfg.TCS.Half()
}

func (s *Simulator) queueIDs() []rune { return s.rq.IDs() }

func sortByID(ps []*Process) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].ID < ps[j].ID })
}
