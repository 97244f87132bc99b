// Package mem implements the event-driven memory allocator: a frame
// array, a calendar of arrival/departure events, four placement
// policies, and a defragmentation primitive.
package mem

// ScheduleEntry is one occupancy window for a memory-side process: it
// requests its frames at ArrivalTime and releases them Duration ms
// later. A process may have several independent windows.
type ScheduleEntry struct {
	ArrivalTime int
	Duration    int
}

// Process is a memory-side process: an identifier, a frame requirement,
// and the ordered list of times it occupies memory.
type Process struct {
	ID       rune
	Size     int
	Schedule []ScheduleEntry
}
