package application

import "github.com/ThalesGroup/requin-2023-experiment/internal/domain"

// automationBufferSeconds keeps the automation window clear of the session
// boundaries.
const automationBufferSeconds = 5

// automationEvents places the tracking automation window at a random offset:
// AUTO at the window start, MANUAL when it closes, and AUTO again three
// seconds before session end.
func (g *Generator) automationEvents(duration, totalAutoMinutes int) []domain.Event {
	maxStart := duration - totalAutoMinutes*60 - automationBufferSeconds
	start := automationBufferSeconds
	if span := maxStart - automationBufferSeconds; span > 0 {
		start += g.rng.Intn(span)
	}

	return []domain.Event{
		{Seconds: start, Comment: commentSched, Sched: &domain.SchedAction{Task: "TRACK", Action: "AUTO", Update: "NULL", Response: "NULL"}},
		{Seconds: start + totalAutoMinutes*60, Comment: commentSched, Sched: &domain.SchedAction{Task: "TRACK", Action: "MANUAL", Update: "MEDIUM", Response: "HIGH"}},
		{Seconds: duration - 3, Comment: commentSched, Sched: &domain.SchedAction{Task: "TRACK", Action: "AUTO", Update: "NULL", Response: "NULL"}},
	}
}

// commBracketEvents derives the COMM start/stop indications from the
// communication prompts already placed in the timeline: an initial START
// shortly before the first prompt, a STOP/START pair around every silence
// longer than the no-comm threshold, and a final STOP after the last prompt.
// Degenerate boundary margins produce a best-effort event plus a warning,
// never a failure.
func (g *Generator) commBracketEvents(events []domain.Event, params domain.SessionParams) []domain.Event {
	duration := params.SessionDurationSeconds()
	commTimes := domain.CommTaskSeconds(events)
	if len(commTimes) == 0 {
		g.logger.Warn().Msg("no communication prompts in timeline, skipping comm bracketing")
		return nil
	}

	var brackets []domain.Event

	first := commTimes[0]
	firstStart := first
	if first > params.SecondsAfterCommStart {
		firstStart = first - params.SecondsAfterCommStart
	} else {
		g.logger.Warn().
			Int("comm_seconds", first).
			Int("lead_seconds", params.SecondsAfterCommStart).
			Msg("first communication is too close to session start for a lead-in")
	}
	brackets = append(brackets, commSchedEvent(firstStart, "START"))

	previous := firstStart
	for _, commTime := range commTimes {
		if commTime-previous > params.MinSecondsToIndicateNoComm {
			brackets = append(brackets,
				commSchedEvent(previous+params.SecondsBeforeCommStop, "STOP"),
				commSchedEvent(commTime-params.SecondsAfterCommStart, "START"),
			)
		}
		previous = commTime
	}

	last := commTimes[len(commTimes)-1]
	lastStop := duration
	if duration-last > params.SecondsBeforeCommStop {
		lastStop = last + params.SecondsBeforeCommStop
	} else {
		g.logger.Warn().
			Int("comm_seconds", last).
			Int("stop_margin_seconds", params.SecondsBeforeCommStop).
			Msg("last communication is too close to session end for a stop indication")
	}
	brackets = append(brackets, commSchedEvent(lastStop, "STOP"))

	return brackets
}

func commSchedEvent(seconds int, action string) domain.Event {
	return domain.Event{
		Seconds: seconds,
		Comment: commentSched,
		Sched:   &domain.SchedAction{Task: "COMM", Action: action, Update: "NULL", Response: "NULL"},
	}
}
