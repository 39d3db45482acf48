package domain

import "sort"

// Event is one timestamped entry in the session timeline. Exactly one of the
// action fields is set. Comment, when non-empty, is carried into the rendered
// document as an XML comment inside the event element.
type Event struct {
	Seconds int
	Comment string

	Sched   *SchedAction
	Resman  *ResmanAction
	Sysmon  *SysmonAction
	Comm    *CommAction
	Control string
	Rate    string
}

// SchedAction drives the MATB-II schedule pane: starting subsystems, toggling
// tracking automation and bracketing communication activity.
type SchedAction struct {
	Task     string
	Action   string
	Update   string
	Response string
}

// ResmanAction marks a pump failure or its paired fix.
type ResmanAction struct {
	Fail string
	Fix  string
}

// SysmonAction is a monitoring alert: either a light (with its color) or a
// scale (with its number and direction). Green lights additionally carry
// activity="START" on the element; red ones do not.
type SysmonAction struct {
	Activity       string
	LightType      string
	ScaleNumber    string
	ScaleDirection string
}

// CommAction is a radio prompt addressed to one ship callsign.
type CommAction struct {
	Ship  string
	Radio string
	Freq  string
}

func (e Event) IsSysmon() bool { return e.Sysmon != nil }
func (e Event) IsComm() bool   { return e.Comm != nil }

// SortEventsBySeconds orders events by their timestamp. The sort is stable:
// events sharing a timestamp keep their insertion order.
func SortEventsBySeconds(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Seconds < events[j].Seconds
	})
}

// CommTaskSeconds collects the timestamps of communication prompts, sorted.
func CommTaskSeconds(events []Event) []int {
	var times []int
	for _, event := range events {
		if event.IsComm() {
			times = append(times, event.Seconds)
		}
	}
	sort.Ints(times)
	return times
}
