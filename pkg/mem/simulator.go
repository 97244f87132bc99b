package mem

import (
	"fmt"
	"io"
	"strings"
)

// Config bundles the memsim CLI's positional arguments (minus the
// workload itself and the chosen algorithm).
type Config struct {
	FramesPerLine int
	MemorySize    int
	TMemmove      int
}

// Validate checks the invariants the memory CLI must enforce.
func (c Config) Validate() error {
	if c.MemorySize <= 0 {
		return ErrInvalidMemorySize
	}
	if c.FramesPerLine <= 0 {
		return ErrInvalidFramesLine
	}
	if c.TMemmove < 0 {
		return ErrInvalidTMemmove
	}
	return nil
}

// Simulator drives the event-driven memory allocator: pop the earliest
// calendar event, place or skip or defragment-then-place on ADD, erase
// and coalesce on REMOVE, until the calendar is empty.
type Simulator struct {
	cfg      Config
	algo     Algorithm
	state    *State
	calendar []Event
	now      int
	out      io.Writer
}

// NewSimulator builds a Simulator over a workload. Every process's size
// must not exceed total memory capacity — that condition can never be
// recovered by defragmentation and is rejected up front.
func NewSimulator(cfg Config, algo Algorithm, processes []Process, out io.Writer) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(processes) == 0 {
		return nil, ErrNoProcesses
	}
	for _, p := range processes {
		if p.Size > cfg.MemorySize {
			return nil, ErrProcessTooLarge
		}
	}
	return &Simulator{
		cfg:      cfg,
		algo:     algo,
		state:    NewState(cfg.MemorySize),
		calendar: BuildCalendar(processes),
		out:      out,
	}, nil
}

// Run drains the event calendar, writing the timeline to the configured
// writer.
func (s *Simulator) Run() {
	fmt.Fprintf(s.out, "time %dms: Simulator started (%s)\n", 0, s.algo)
	for len(s.calendar) > 0 {
		ev := s.calendar[0]
		s.calendar = s.calendar[1:]
		s.now = ev.Time
		switch ev.Kind {
		case EventAdd:
			s.handleAdd(ev)
		case EventRemove:
			s.handleRemove(ev)
		}
	}
	fmt.Fprintf(s.out, "time %dms: Simulator ended (%s)\n", s.now, s.algo)
}

func (s *Simulator) handleAdd(ev Event) {
	fmt.Fprintf(s.out, "time %dms: Process %c arrived (requires %d frames)\n", s.now, ev.ProcessID, ev.Size)

	if Place(s.algo, s.state, ev.ProcessID, ev.Occupancy, ev.Size) {
		fmt.Fprintf(s.out, "time %dms: Placed process %c:\n", s.now, ev.ProcessID)
		s.printMemory()
		return
	}

	if s.state.TotalFree() < ev.Size {
		s.skip(ev)
		return
	}

	fmt.Fprintf(s.out, "time %dms: Cannot place process %c -- starting defragmentation\n", s.now, ev.ProcessID)

	moved, movedFrames, cost := Defragment(s.state, s.cfg.TMemmove)
	s.now += cost
	ShiftAll(s.calendar, cost)
	fmt.Fprintf(s.out, "time %dms: Defragmentation complete (moved %d frames: %s)\n", s.now, movedFrames, joinRunes(moved))

	if Place(s.algo, s.state, ev.ProcessID, ev.Occupancy, ev.Size) {
		fmt.Fprintf(s.out, "time %dms: Placed process %c:\n", s.now, ev.ProcessID)
		s.printMemory()
		return
	}
	s.skip(ev)
}

// skip drops an unplaceable ADD and elides its matching REMOVE from the
// calendar: the occupancy never happened, so no release event may fire.
func (s *Simulator) skip(ev Event) {
	fmt.Fprintf(s.out, "time %dms: Process %c skipped (insufficient memory)\n", s.now, ev.ProcessID)
	for i, rem := range s.calendar {
		if rem.Kind == EventRemove && rem.ProcessID == ev.ProcessID && rem.Occupancy == ev.Occupancy {
			s.calendar = append(s.calendar[:i], s.calendar[i+1:]...)
			return
		}
	}
}

func (s *Simulator) handleRemove(ev Event) {
	s.state.RemoveOccupancy(ev.ProcessID, ev.Occupancy)
	fmt.Fprintf(s.out, "time %dms: Process %c removed:\n", s.now, ev.ProcessID)
	s.printMemory()
}

func (s *Simulator) printMemory() {
	border := strings.Repeat("=", s.cfg.FramesPerLine)
	fmt.Fprintln(s.out, border)
	for i := 0; i < len(s.state.Cells); i += s.cfg.FramesPerLine {
		end := i + s.cfg.FramesPerLine
		if end > len(s.state.Cells) {
			end = len(s.state.Cells)
		}
		fmt.Fprintln(s.out, string(s.state.Cells[i:end]))
	}
	fmt.Fprintln(s.out, border)
}

func joinRunes(rs []rune) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}
