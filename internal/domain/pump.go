package domain

import "strconv"

// PumpCount is the number of resource-management pumps that can fail.
const PumpCount = 8

// PumpID names a pump by its one-based index: P1 through P8.
func PumpID(n int) string {
	return "P" + strconv.Itoa(n)
}

type interval struct {
	start int // inclusive
	end   int // exclusive
}

// PumpLedger tracks, per pump, the [fail, fix) windows during which the pump
// is already broken, so the materializer never fails a pump twice at once.
// It is scoped to a single generation attempt.
type PumpLedger struct {
	failures map[string][]interval
}

func NewPumpLedger() *PumpLedger {
	return &PumpLedger{failures: make(map[string][]interval, PumpCount)}
}

// Free reports whether the pump has no recorded failure overlapping
// [start, end).
func (l *PumpLedger) Free(pump string, start, end int) bool {
	for _, iv := range l.failures[pump] {
		if start < iv.end && end > iv.start {
			return false
		}
	}
	return true
}

// MarkFailed records a failure window for the pump.
func (l *PumpLedger) MarkFailed(pump string, start, end int) {
	l.failures[pump] = append(l.failures[pump], interval{start: start, end: end})
}
