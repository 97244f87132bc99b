package mem

import "errors"

var (
	ErrInvalidMemorySize  = errors.New("mem: memory size must be positive")
	ErrInvalidFramesLine  = errors.New("mem: frames_per_line must be positive")
	ErrInvalidTMemmove    = errors.New("mem: t_memmove must be non-negative")
	ErrProcessTooLarge    = errors.New("mem: process size exceeds total memory")
	ErrNoProcesses        = errors.New("mem: workload contains no processes")
	ErrUnknownAlgorithm   = errors.New("mem: unrecognized placement algorithm")
	ErrPartitionInvariant = errors.New("mem: partition/allocation accounting invariant violated")
)
