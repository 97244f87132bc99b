package sched

import "errors"

// Sentinel errors of the scheduler. Most are usage errors returned by
// configuration, CLI-argument and NewSimulator validation: callers print
// usage and exit non-zero, they never propagate into the running
// simulation. ErrEmptyBurstList, ErrEvenBurstLength and ErrNonPositiveBurst
// are instead the values NewProcess panics with on a malformed burst list.
var (
	ErrInvalidTCS       = errors.New("sched: t_cs must be a positive even integer")
	ErrInvalidTSlice    = errors.New("sched: t_slice must be a positive integer")
	ErrInvalidAlpha     = errors.New("sched: alpha must be in (0, 1)")
	ErrInvalidLambda    = errors.New("sched: lambda must be positive")
	ErrInvalidN         = errors.New("sched: n must be between 1 and 26")
	ErrInvalidRRAdd     = errors.New("sched: rr_add must be BEGINNING or END")
	ErrNoProcesses      = errors.New("sched: workload contains no processes")
	ErrDuplicateID      = errors.New("sched: duplicate process ID")
	ErrEmptyBurstList   = errors.New("sched: process has an empty burst list")
	ErrEvenBurstLength  = errors.New("sched: process burst list must have odd length")
	ErrNonPositiveBurst = errors.New("sched: burst lengths must be positive")
)
