package sched

// RRAdd selects where a preempted Round-Robin process re-enters the ready
// queue: at the tail (the default) or at the head.
type RRAdd int

const (
	RRAddEnd RRAdd = iota
	RRAddBeginning
)

func (a RRAdd) String() string {
	if a == RRAddBeginning {
		return "BEGINNING"
	}
	return "END"
}

// ParseRRAdd parses the rr_add CLI token.
func ParseRRAdd(s string) (RRAdd, error) {
	switch s {
	case "", "END":
		return RRAddEnd, nil
	case "BEGINNING":
		return RRAddBeginning, nil
	default:
		return RRAddEnd, ErrInvalidRRAdd
	}
}

// Policy contributes the three decisions the tick simulator delegates:
// how staged arrivals join the ready queue, whether the running process
// should be preempted, and where a preempted process goes back to.
type Policy interface {
	Name() string
	Admit(rq *ReadyQueue, staged []*Process)
	Preempts(running *Process, rq *ReadyQueue, ranSinceDispatch int) bool
	Reinsert(rq *ReadyQueue, p *Process)
	NPreemptions() int
	UsesTauEstimation() bool
}

// FCFSPolicy: first-come-first-served, never preempts.
type FCFSPolicy struct{}

func (FCFSPolicy) Name() string { return "FCFS" }
func (FCFSPolicy) Admit(rq *ReadyQueue, staged []*Process) {
	for _, p := range staged {
		rq.PushBack(p)
	}
}
func (FCFSPolicy) Preempts(*Process, *ReadyQueue, int) bool { return false }
func (FCFSPolicy) Reinsert(rq *ReadyQueue, p *Process)      { rq.PushBack(p) }
func (FCFSPolicy) NPreemptions() int                        { return 0 }
func (FCFSPolicy) UsesTauEstimation() bool                  { return false }

// RRPolicy: round-robin with a fixed time slice; a process that exhausts
// its slice while the ready queue is non-empty is preempted and
// re-inserted per Add.
type RRPolicy struct {
	TSlice int
	Add    RRAdd

	nPreempt int
}

func NewRRPolicy(tSlice int, add RRAdd) *RRPolicy {
	return &RRPolicy{TSlice: tSlice, Add: add}
}

func (p *RRPolicy) Name() string { return "RR" }
func (p *RRPolicy) Admit(rq *ReadyQueue, staged []*Process) {
	for _, pr := range staged {
		rq.PushBack(pr)
	}
}
func (p *RRPolicy) Preempts(running *Process, rq *ReadyQueue, ranSinceDispatch int) bool {
	return running != nil && ranSinceDispatch >= p.TSlice && rq.Len() > 0
}
func (p *RRPolicy) Reinsert(rq *ReadyQueue, pr *Process) {
	p.nPreempt++
	if p.Add == RRAddBeginning {
		rq.PushFront(pr)
	} else {
		rq.PushBack(pr)
	}
}
func (p *RRPolicy) NPreemptions() int       { return p.nPreempt }
func (p *RRPolicy) UsesTauEstimation() bool { return false }

// SJFPolicy: shortest-job-first, non-preemptive; admits in ascending tau
// order (ties broken by ID) and maintains each process's tau estimate.
type SJFPolicy struct {
	Alpha float64
}

func NewSJFPolicy(alpha float64) *SJFPolicy { return &SJFPolicy{Alpha: alpha} }

func (p *SJFPolicy) Name() string { return "SJF" }
func (p *SJFPolicy) Admit(rq *ReadyQueue, staged []*Process) {
	for _, pr := range staged {
		rq.InsertSorted(pr, (*Process).Tau)
	}
}
func (p *SJFPolicy) Preempts(*Process, *ReadyQueue, int) bool { return false }
func (p *SJFPolicy) Reinsert(rq *ReadyQueue, pr *Process)     { rq.InsertSorted(pr, (*Process).Tau) }
func (p *SJFPolicy) NPreemptions() int                        { return 0 }
func (p *SJFPolicy) UsesTauEstimation() bool                   { return true }

// SRTPolicy: shortest-remaining-time, preemptive SJF variant. Admits in
// ascending remaining-tau order; preempts the running process whenever
// the ready head's remaining tau is strictly smaller.
type SRTPolicy struct {
	Alpha float64

	nPreempt int
}

func NewSRTPolicy(alpha float64) *SRTPolicy { return &SRTPolicy{Alpha: alpha} }

func (p *SRTPolicy) Name() string { return "SRT" }
func (p *SRTPolicy) Admit(rq *ReadyQueue, staged []*Process) {
	for _, pr := range staged {
		rq.InsertSorted(pr, (*Process).RemainingTau)
	}
}
func (p *SRTPolicy) Preempts(running *Process, rq *ReadyQueue, _ int) bool {
	if running == nil || rq.Len() == 0 {
		return false
	}
	return rq.Front().RemainingTau() < running.RemainingTau()
}
func (p *SRTPolicy) Reinsert(rq *ReadyQueue, pr *Process) {
	p.nPreempt++
	rq.InsertSorted(pr, (*Process).RemainingTau)
}
func (p *SRTPolicy) NPreemptions() int     { return p.nPreempt }
func (p *SRTPolicy) UsesTauEstimation() bool { return true }
