package mem

import "sort"

// EventKind distinguishes a process claiming frames from releasing them.
type EventKind int

const (
	EventAdd EventKind = iota
	EventRemove
)

// Event is one entry in the memory simulator's time-sorted calendar.
// Occupancy correlates an ADD to its matching REMOVE: a process may
// occupy memory over several independent windows (ScheduleEntry in
// Process.Schedule), and a REMOVE must only erase the specific
// occupancy it closes, not every allocation that happens to share the
// same ProcessID.
type Event struct {
	Time      int
	Kind      EventKind
	ProcessID rune
	Occupancy int
	Size      int // meaningful only for EventAdd
}

// BuildCalendar expands every process's schedule into ADD/REMOVE event
// pairs and sorts them: time ascending, REMOVE before ADD on ties, then
// ascending process ID. Occupancy is the index of the
// originating ScheduleEntry within that process's own schedule, so it
// uniquely identifies one occupancy window alongside ProcessID.
func BuildCalendar(processes []Process) []Event {
	var events []Event
	for _, p := range processes {
		for i, entry := range p.Schedule {
			events = append(events, Event{Time: entry.ArrivalTime, Kind: EventAdd, ProcessID: p.ID, Occupancy: i, Size: p.Size})
			events = append(events, Event{Time: entry.ArrivalTime + entry.Duration, Kind: EventRemove, ProcessID: p.ID, Occupancy: i})
		}
	}
	sortCalendar(events)
	return events
}

func sortCalendar(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.Time != b.Time {
			return a.Time < b.Time
		}
		if a.Kind != b.Kind {
			return a.Kind == EventRemove
		}
		return a.ProcessID < b.ProcessID
	})
}

// ShiftAll adds delta ms to every event's time, preserving relative
// order — used after defragmentation adds delay to the rest of the run.
func ShiftAll(events []Event, delta int) {
	for i := range events {
		events[i].Time += delta
	}
}
