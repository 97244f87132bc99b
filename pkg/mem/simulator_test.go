package mem

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulator_BestFit_PlacesSmallestFittingPartition(t *testing.T) {
	processes := []Process{
		{ID: 'A', Size: 8, Schedule: []ScheduleEntry{{ArrivalTime: 0, Duration: 40}}},
		{ID: 'B', Size: 8, Schedule: []ScheduleEntry{{ArrivalTime: 0, Duration: 100}}},
		{ID: 'C', Size: 8, Schedule: []ScheduleEntry{{ArrivalTime: 0, Duration: 100}}},
		{ID: 'D', Size: 8, Schedule: []ScheduleEntry{{ArrivalTime: 0, Duration: 100}}},
		{ID: 'E', Size: 1, Schedule: []ScheduleEntry{{ArrivalTime: 50, Duration: 10}}},
	}
	var buf bytes.Buffer
	cfg := Config{FramesPerLine: 32, MemorySize: 32, TMemmove: 1}
	sim, err := NewSimulator(cfg, BestFit, processes, &buf)
	require.NoError(t, err)
	sim.Run()

	out := buf.String()
	assert.Contains(t, out, "Process E arrived")
	assert.Contains(t, out, "Placed process E")
}

func TestSimulator_Skips_WhenInsufficientMemory(t *testing.T) {
	processes := []Process{
		{ID: 'A', Size: 8, Schedule: []ScheduleEntry{{ArrivalTime: 0, Duration: 100}}},
		{ID: 'B', Size: 8, Schedule: []ScheduleEntry{{ArrivalTime: 0, Duration: 10}}},
	}
	var buf bytes.Buffer
	cfg := Config{FramesPerLine: 8, MemorySize: 8, TMemmove: 1}
	sim, err := NewSimulator(cfg, FirstFit, processes, &buf)
	require.NoError(t, err)
	sim.Run()

	out := buf.String()
	assert.Contains(t, out, "Process B skipped")
	// B never occupied memory, so its release event is elided: nothing
	// may fire at t=10.
	assert.NotContains(t, out, "Process B removed")
}

func TestSimulator_DefragmentsThenPlacesAndShiftsCalendar(t *testing.T) {
	// After A's departure at t=20 memory holds B at (4,4) and C at (8,4)
	// with free runs (0,4) and (12,4). E needs 6 contiguous frames at
	// t=25: no single partition fits, total free does, so the simulator
	// compacts B and C leftwards (8 frames moved, 8 ms at t_memmove=1),
	// places E at frame 8, and delays every remaining event by 8 ms.
	processes := []Process{
		{ID: 'A', Size: 4, Schedule: []ScheduleEntry{{ArrivalTime: 0, Duration: 20}}},
		{ID: 'B', Size: 4, Schedule: []ScheduleEntry{{ArrivalTime: 0, Duration: 100}}},
		{ID: 'C', Size: 4, Schedule: []ScheduleEntry{{ArrivalTime: 0, Duration: 100}}},
		{ID: 'E', Size: 6, Schedule: []ScheduleEntry{{ArrivalTime: 25, Duration: 10}}},
	}
	var buf bytes.Buffer
	cfg := Config{FramesPerLine: 16, MemorySize: 16, TMemmove: 1}
	sim, err := NewSimulator(cfg, FirstFit, processes, &buf)
	require.NoError(t, err)
	sim.Run()

	out := buf.String()
	assert.Contains(t, out, "time 25ms: Cannot place process E -- starting defragmentation")
	assert.Contains(t, out, "time 33ms: Defragmentation complete (moved 8 frames: B, C)")
	assert.Contains(t, out, "time 33ms: Placed process E")
	// E's departure was scheduled for t=35 and must land at t=43.
	assert.Contains(t, out, "time 43ms: Process E removed")
	assert.Contains(t, out, "time 108ms: Process B removed")
}

func TestSimulator_ConcurrentOccupanciesOfSameProcessDoNotCrossFree(t *testing.T) {
	// A occupies memory twice, in overlapping windows: [0,20) and [5,105).
	// The first window's REMOVE at t=20 must free only that window's
	// frames, leaving the still-live second window's allocation intact.
	processes := []Process{
		{ID: 'A', Size: 4, Schedule: []ScheduleEntry{{ArrivalTime: 0, Duration: 20}, {ArrivalTime: 5, Duration: 100}}},
		{ID: 'B', Size: 4, Schedule: []ScheduleEntry{{ArrivalTime: 21, Duration: 5}}},
	}
	var buf bytes.Buffer
	cfg := Config{FramesPerLine: 8, MemorySize: 8, TMemmove: 1}
	sim, err := NewSimulator(cfg, FirstFit, processes, &buf)
	require.NoError(t, err)
	sim.Run()

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "Placed process A"))
	// B arrives after A's first window closes but while A's second window
	// is still live; it must find the 4 frames A's first window freed,
	// not be skipped because A's second window still holds the other half.
	assert.Contains(t, out, "Placed process B")
	assert.NotContains(t, out, "Process B skipped")
}

func TestSimulator_RejectsOversizedProcess(t *testing.T) {
	processes := []Process{
		{ID: 'A', Size: 100, Schedule: []ScheduleEntry{{ArrivalTime: 0, Duration: 10}}},
	}
	var buf bytes.Buffer
	cfg := Config{FramesPerLine: 8, MemorySize: 8, TMemmove: 1}
	_, err := NewSimulator(cfg, FirstFit, processes, &buf)
	assert.ErrorIs(t, err, ErrProcessTooLarge)
}

func TestSimulator_Determinism(t *testing.T) {
	build := func() ([]Process, *bytes.Buffer) {
		return []Process{
			{ID: 'A', Size: 4, Schedule: []ScheduleEntry{{ArrivalTime: 0, Duration: 20}}},
			{ID: 'B', Size: 4, Schedule: []ScheduleEntry{{ArrivalTime: 0, Duration: 100}}},
			{ID: 'C', Size: 4, Schedule: []ScheduleEntry{{ArrivalTime: 5, Duration: 100}}},
			{ID: 'D', Size: 4, Schedule: []ScheduleEntry{{ArrivalTime: 5, Duration: 100}}},
			{ID: 'E', Size: 4, Schedule: []ScheduleEntry{{ArrivalTime: 25, Duration: 10}}},
		}, &bytes.Buffer{}
	}
	cfg := Config{FramesPerLine: 16, MemorySize: 16, TMemmove: 1}

	p1, buf1 := build()
	sim1, err := NewSimulator(cfg, FirstFit, p1, buf1)
	require.NoError(t, err)
	sim1.Run()

	p2, buf2 := build()
	sim2, err := NewSimulator(cfg, FirstFit, p2, buf2)
	require.NoError(t, err)
	sim2.Run()

	assert.Equal(t, buf1.String(), buf2.String())
}
