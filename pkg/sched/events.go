package sched

import (
	"fmt"
	"io"
	"strings"
)

// eventSuppressThreshold is the timestamp after which most timeline
// events are dropped from the output. Terminations and simulator
// start/end lines survive regardless of time.
const eventSuppressThreshold = 1000

// timeline writes the event grammar to an io.Writer, honoring the
// post-1000ms suppression rule.
type timeline struct {
	w io.Writer
}

func newTimeline(w io.Writer) *timeline { return &timeline{w: w} }

func (t *timeline) always(now int, msg string, queue []rune) {
	fmt.Fprintf(t.w, "time %dms: %s%s\n", now, msg, queueSuffix(queue))
}

// maybe writes the event unless now exceeds the suppression threshold.
func (t *timeline) maybe(now int, msg string, queue []rune) {
	if now > eventSuppressThreshold {
		return
	}
	t.always(now, msg, queue)
}

func queueSuffix(ids []rune) string {
	if len(ids) == 0 {
		return " [Q <empty>]"
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return " [Q " + strings.Join(names, " ") + "]"
}

func simulatorStarted(policyName string) string {
	return fmt.Sprintf("Simulator started for %s", policyName)
}

func simulatorEnded(policyName string) string {
	return fmt.Sprintf("Simulator ended for %s", policyName)
}

func arrivedEvent(id rune) string {
	return fmt.Sprintf("Process %c arrived; added to ready queue", id)
}

func ioCompletedEvent(id rune) string {
	return fmt.Sprintf("Process %c completed I/O; added to ready queue", id)
}

func dispatchedEvent(id rune, burst int, tau int, withTau bool) string {
	if withTau {
		return fmt.Sprintf("Process %c started using the CPU with %dms burst remaining (tau %dms)", id, burst, tau)
	}
	return fmt.Sprintf("Process %c started using the CPU for %dms burst", id, burst)
}

func burstCompletedEvent(id rune, remainingBursts int) string {
	switch remainingBursts {
	case 0:
		return fmt.Sprintf("Process %c completed a CPU burst; terminating", id)
	case 1:
		return fmt.Sprintf("Process %c completed a CPU burst; 1 burst to go", id)
	default:
		return fmt.Sprintf("Process %c completed a CPU burst; %d bursts to go", id, remainingBursts)
	}
}

func recalculatedTauEvent(id rune, tau int) string {
	return fmt.Sprintf("Recalculated tau = %dms for process %c", tau, id)
}

func blockingEvent(id rune, until int) string {
	return fmt.Sprintf("Process %c switching out of CPU; blocking on I/O until time %dms", id, until)
}

func terminatedEvent(id rune) string {
	return fmt.Sprintf("Process %c terminated", id)
}

func preemptEvent(incoming, outgoing rune) string {
	return fmt.Sprintf("Process %c will preempt %c", incoming, outgoing)
}

func timeSliceExpiredEvent(id rune) string {
	return fmt.Sprintf("Time slice expired; process %c preempted", id)
}
