package workload

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yufeimi/ossim-go/pkg/mem"
)

// ScheduleEntry aliases mem.ScheduleEntry for convenience within this package.
type ScheduleEntry = mem.ScheduleEntry

// ParseWarning records a non-fatal problem with one input line: per the
// error taxonomy, a malformed process line is skipped, not fatal.
type ParseWarning struct {
	Line   int
	Reason string
}

func (w ParseWarning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Reason)
}

// ParseMemoryFile reads the memsim workload format: lines beginning with
// a capital letter are "ID SIZE arr1/dur1 arr2/dur2 ...", '#' introduces
// a comment to end of line, and blank lines are ignored. Malformed lines
// are skipped and reported as warnings rather than aborting the parse.
func ParseMemoryFile(r io.Reader) ([]mem.Process, []ParseWarning) {
	var processes []mem.Process
	var warnings []ParseWarning

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line[0] < 'A' || line[0] > 'Z' {
			warnings = append(warnings, ParseWarning{Line: lineNo, Reason: "line does not start with a capital letter ID"})
			continue
		}

		p, err := parseProcessLine(line)
		if err != nil {
			warnings = append(warnings, ParseWarning{Line: lineNo, Reason: err.Error()})
			continue
		}
		processes = append(processes, p)
	}
	return processes, warnings
}

func parseProcessLine(line string) (mem.Process, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return mem.Process{}, fmt.Errorf("expected ID SIZE and at least one arr/dur pair, got %q", line)
	}

	id := []rune(fields[0])[0]
	size, err := strconv.Atoi(fields[1])
	if err != nil || size <= 0 {
		return mem.Process{}, fmt.Errorf("invalid size %q", fields[1])
	}

	var schedule []mem.ScheduleEntry
	for _, tok := range fields[2:] {
		parts := strings.SplitN(tok, "/", 2)
		if len(parts) != 2 {
			return mem.Process{}, fmt.Errorf("invalid arrival/duration pair %q", tok)
		}
		arr, err1 := strconv.Atoi(parts[0])
		dur, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil || arr < 0 || dur <= 0 {
			return mem.Process{}, fmt.Errorf("invalid arrival/duration pair %q", tok)
		}
		schedule = append(schedule, mem.ScheduleEntry{ArrivalTime: arr, Duration: dur})
	}

	return mem.Process{ID: id, Size: size, Schedule: schedule}, nil
}
