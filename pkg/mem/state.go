package mem

import "sort"

// Allocation is a contiguous run of frames owned by one occupancy window
// of a process. Under non-contiguous placement a single occupancy may
// own several Allocations at once; Occupancy (paired with ProcessID)
// identifies which window they all belong to, so a REMOVE for one
// window never erases another concurrent window of the same process.
type Allocation struct {
	Start     int
	Length    int
	ProcessID rune
	Occupancy int
}

// Partition is a maximal contiguous run of free frames.
type Partition struct {
	Start  int
	Length int
}

// State is the full memory picture: the frame array plus the disjoint
// allocation/partition lists covering it.
type State struct {
	MemorySize int
	Cells      []byte

	Allocations []Allocation
	Partitions  []Partition

	LastAllocationEnd int // Next-Fit's scan cursor
}

// NewState returns a memory of size frames, entirely free.
func NewState(size int) *State {
	cells := make([]byte, size)
	for i := range cells {
		cells[i] = '.'
	}
	return &State{
		MemorySize:  size,
		Cells:       cells,
		Partitions:  []Partition{{Start: 0, Length: size}},
		Allocations: nil,
	}
}

// TotalFree sums the length of every partition.
func (s *State) TotalFree() int {
	total := 0
	for _, p := range s.Partitions {
		total += p.Length
	}
	return total
}

func (s *State) sortPartitionsByStart() {
	sort.Slice(s.Partitions, func(i, j int) bool { return s.Partitions[i].Start < s.Partitions[j].Start })
}

func (s *State) sortAllocationsByStart() {
	sort.Slice(s.Allocations, func(i, j int) bool { return s.Allocations[i].Start < s.Allocations[j].Start })
}

// consumePartition carves [start, start+length) out of the partition at
// idx, leaving behind zero, one, or two smaller partitions as needed.
func (s *State) consumePartition(idx, start, length int) {
	part := s.Partitions[idx]
	var remain []Partition
	if start > part.Start {
		remain = append(remain, Partition{Start: part.Start, Length: start - part.Start})
	}
	if start+length < part.Start+part.Length {
		remain = append(remain, Partition{Start: start + length, Length: part.Start + part.Length - start - length})
	}
	next := make([]Partition, 0, len(s.Partitions)-1+len(remain))
	next = append(next, s.Partitions[:idx]...)
	next = append(next, remain...)
	next = append(next, s.Partitions[idx+1:]...)
	s.Partitions = next
}

// place writes pid into [start, start+length), records the allocation
// against its owning occupancy window, and advances the Next-Fit cursor.
func (s *State) place(pid rune, occupancy, start, length int) {
	for i := start; i < start+length; i++ {
		s.Cells[i] = byte(pid)
	}
	s.Allocations = append(s.Allocations, Allocation{Start: start, Length: length, ProcessID: pid, Occupancy: occupancy})
	s.LastAllocationEnd = start + length
	s.checkInvariant()
}

// checkInvariant panics if the allocation and partition bookkeeping ever
// disagree with total memory size — a corruption in frame accounting is
// a programming error, not a recoverable runtime condition, so it aborts
// the run with a diagnostic rather than silently producing a wrong
// memory dump.
func (s *State) checkInvariant() {
	total := s.TotalFree()
	for _, a := range s.Allocations {
		total += a.Length
	}
	if total != s.MemorySize {
		panic(ErrPartitionInvariant)
	}
}

// addPartition inserts a free run, coalescing with any adjacent
// partition so that no two partitions ever end up touching.
func (s *State) addPartition(start, length int) {
	s.Partitions = append(s.Partitions, Partition{Start: start, Length: length})
	s.sortPartitionsByStart()
	merged := s.Partitions[:0]
	for _, p := range s.Partitions {
		if len(merged) > 0 && merged[len(merged)-1].Start+merged[len(merged)-1].Length == p.Start {
			merged[len(merged)-1].Length += p.Length
		} else {
			merged = append(merged, p)
		}
	}
	s.Partitions = merged
}

// RemoveOccupancy erases every allocation belonging to the occupancy
// window (pid, occupancy) — not every allocation that merely shares
// pid — clears the corresponding cells, and coalesces the freed space
// into partitions. A process may hold a separate, still-live occupancy
// under a different window at the same time; that one is left alone.
func (s *State) RemoveOccupancy(pid rune, occupancy int) {
	var remaining []Allocation
	for _, a := range s.Allocations {
		if a.ProcessID == pid && a.Occupancy == occupancy {
			for i := a.Start; i < a.Start+a.Length; i++ {
				s.Cells[i] = '.'
			}
			s.addPartition(a.Start, a.Length)
		} else {
			remaining = append(remaining, a)
		}
	}
	s.Allocations = remaining
	s.checkInvariant()
}
