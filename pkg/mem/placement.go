package mem

// Algorithm selects one of the four placement policies.
type Algorithm int

const (
	FirstFit Algorithm = iota
	NextFit
	BestFit
	NonContiguous
)

func (a Algorithm) String() string {
	switch a {
	case FirstFit:
		return "First-Fit"
	case NextFit:
		return "Next-Fit"
	case BestFit:
		return "Best-Fit"
	case NonContiguous:
		return "Non-Contiguous"
	default:
		return "unknown"
	}
}

// ParseAlgorithm parses the memsim CLI's algorithm token.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "F", "first-fit", "First-Fit", "FIRST_FIT":
		return FirstFit, nil
	case "N", "next-fit", "Next-Fit", "NEXT_FIT":
		return NextFit, nil
	case "B", "best-fit", "Best-Fit", "BEST_FIT":
		return BestFit, nil
	case "C", "non-contiguous", "Non-Contiguous", "NON_CONTIGUOUS":
		return NonContiguous, nil
	default:
		return 0, ErrUnknownAlgorithm
	}
}

// Place attempts to satisfy a size-frame request for one occupancy
// window of pid using the given algorithm, mutating s on success. It
// reports whether placement succeeded; NonContiguous additionally
// requires total free space to cover the request, not any single
// partition. occupancy identifies which of pid's schedule windows this
// request belongs to, so its eventual release can target only the
// Allocations it created.
func Place(algo Algorithm, s *State, pid rune, occupancy, size int) bool {
	switch algo {
	case FirstFit:
		return placeFirstFit(s, pid, occupancy, size)
	case NextFit:
		return placeNextFit(s, pid, occupancy, size)
	case BestFit:
		return placeBestFit(s, pid, occupancy, size)
	case NonContiguous:
		return placeNonContiguous(s, pid, occupancy, size)
	default:
		return false
	}
}

func placeFirstFit(s *State, pid rune, occupancy, size int) bool {
	s.sortPartitionsByStart()
	for i, part := range s.Partitions {
		if part.Length >= size {
			s.consumePartition(i, part.Start, size)
			s.place(pid, occupancy, part.Start, size)
			return true
		}
	}
	return false
}

func placeNextFit(s *State, pid rune, occupancy, size int) bool {
	s.sortPartitionsByStart()
	n := len(s.Partitions)
	if n == 0 {
		return false
	}
	start := 0
	for i, part := range s.Partitions {
		if part.Start >= s.LastAllocationEnd {
			start = i
			break
		}
		if i == n-1 {
			start = n
		}
	}
	for offset := 0; offset < n; offset++ {
		idx := (start + offset) % n
		part := s.Partitions[idx]
		if part.Length >= size {
			s.consumePartition(idx, part.Start, size)
			s.place(pid, occupancy, part.Start, size)
			return true
		}
	}
	return false
}

func placeBestFit(s *State, pid rune, occupancy, size int) bool {
	s.sortPartitionsByStart()
	best := -1
	for i, part := range s.Partitions {
		if part.Length < size {
			continue
		}
		if best == -1 || part.Length < s.Partitions[best].Length {
			best = i
		}
	}
	if best == -1 {
		return false
	}
	part := s.Partitions[best]
	s.consumePartition(best, part.Start, size)
	s.place(pid, occupancy, part.Start, size)
	return true
}

func placeNonContiguous(s *State, pid rune, occupancy, size int) bool {
	if s.TotalFree() < size {
		return false
	}
	remaining := size
	for remaining > 0 {
		s.sortPartitionsByStart()
		part := s.Partitions[0]
		take := part.Length
		if take > remaining {
			take = remaining
		}
		s.consumePartition(0, part.Start, take)
		s.place(pid, occupancy, part.Start, take)
		remaining -= take
	}
	return true
}
