package sched

import "github.com/yufeimi/ossim-go/pkg/types"

// Config bundles the knobs a scheduler run is parameterised by, mirroring
// the scheduler CLI's positional arguments (minus the workload itself).
type Config struct {
	TCS    types.Millis // context-switch cost; must be positive and even
	TSlice int          // RR time slice, ms; unused by FCFS/SJF/SRT
	Alpha  float64      // SJF/SRT smoothing factor, in (0, 1)
	Lambda float64      // exponential-sampler parameter, used to seed tau0
	RRAdd  RRAdd
}

// Validate checks the invariants the scheduler CLI must enforce before
// ever constructing a Simulator.
func (c Config) Validate() error {
	if c.TCS <= 0 || c.TCS%2 != 0 {
		return ErrInvalidTCS
	}
	if c.Alpha <= 0 || c.Alpha >= 1 {
		return ErrInvalidAlpha
	}
	if c.Lambda <= 0 {
		return ErrInvalidLambda
	}
	return nil
}
