package mem

// Defragment compacts every live allocation toward frame 0, preserving
// their relative (ascending start) order, leaving a single trailing free
// partition. It returns the IDs of every allocation that had to move, in
// the order moved (left to right; a process with several allocations can
// appear more than once), and the total cost in ms (moved frames ×
// tMemmove).
func Defragment(s *State, tMemmove int) (moved []rune, movedFrames int, cost int) {
	s.sortAllocationsByStart()
	pointer := 0
	for i := range s.Allocations {
		a := &s.Allocations[i]
		if a.Start > pointer {
			for k := a.Start; k < a.Start+a.Length; k++ {
				s.Cells[k] = '.'
			}
			a.Start = pointer
			for k := a.Start; k < a.Start+a.Length; k++ {
				s.Cells[k] = byte(a.ProcessID)
			}
			moved = append(moved, a.ProcessID)
			movedFrames += a.Length
		}
		pointer += a.Length
	}
	s.Partitions = nil
	if pointer < s.MemorySize {
		s.Partitions = []Partition{{Start: pointer, Length: s.MemorySize - pointer}}
	}
	s.checkInvariant()
	return moved, movedFrames, movedFrames * tMemmove
}
