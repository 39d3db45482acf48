package application

import (
	"github.com/ThalesGroup/requin-2023-experiment/internal/domain"
)

const (
	commentSched      = "Sched task"
	commentResmanFail = "Resman task - Fail"
	commentResmanFix  = "Resman task - Fix"
	commentSysmon     = "System Monitoring task"
	commentComm       = "Communications task"
)

var scaleNumbers = []string{"ONE", "TWO", "THREE", "FOUR"}

// materializeTasks expands each (type, time) pair into its event records,
// tracking pump failure state across the whole assignment.
func (g *Generator) materializeTasks(taskTypes []domain.TaskType, eventTimes []int, pool *stemPool, params domain.SessionParams) ([]domain.Event, error) {
	ledger := domain.NewPumpLedger()
	duration := params.SessionDurationSeconds()

	var events []domain.Event
	for i, taskType := range taskTypes {
		seconds := eventTimes[i]
		switch taskType {
		case domain.TaskResman:
			events = append(events, g.resmanEvents(seconds, duration, params, ledger)...)
		case domain.TaskSysmonLight:
			events = append(events, g.sysmonLightEvent(seconds))
		case domain.TaskSysmonScale:
			events = append(events, g.sysmonScaleEvent(seconds))
		case domain.TaskCommOwn, domain.TaskCommOther:
			event, err := commEvent(seconds, taskType.Channel(), pool)
			if err != nil {
				return nil, err
			}
			events = append(events, event)
		}
	}

	return events, nil
}

// resmanEvents emits a fail/fix pair for a pump that is not already broken
// anywhere in the candidate window. The fix time is resampled until it lands
// strictly before the last representable second of the session.
func (g *Generator) resmanEvents(failSeconds, duration int, params domain.SessionParams, ledger *domain.PumpLedger) []domain.Event {
	fixSeconds := duration
	for fixSeconds >= duration-1 {
		gap := params.MinSecondsFailFixResman + g.rng.Intn(params.MaxSecondsFailFixResman-params.MinSecondsFailFixResman)
		fixSeconds = failSeconds + gap
	}

	var pump string
	for {
		pump = domain.PumpID(1 + g.rng.Intn(domain.PumpCount))
		if ledger.Free(pump, failSeconds, fixSeconds) {
			ledger.MarkFailed(pump, failSeconds, fixSeconds)
			break
		}
	}

	return []domain.Event{
		{Seconds: failSeconds, Comment: commentResmanFail, Resman: &domain.ResmanAction{Fail: pump}},
		{Seconds: fixSeconds, Comment: commentResmanFix, Resman: &domain.ResmanAction{Fix: pump}},
	}
}

// sysmonLightEvent flips a coin between GREEN and RED. Green lights carry the
// activity="START" marker, red ones do not.
func (g *Generator) sysmonLightEvent(seconds int) domain.Event {
	sysmon := &domain.SysmonAction{LightType: g.pick("GREEN", "RED")}
	if sysmon.LightType == "GREEN" {
		sysmon.Activity = "START"
	}
	return domain.Event{Seconds: seconds, Comment: commentSysmon, Sysmon: sysmon}
}

func (g *Generator) sysmonScaleEvent(seconds int) domain.Event {
	return domain.Event{
		Seconds: seconds,
		Comment: commentSysmon,
		Sysmon: &domain.SysmonAction{
			ScaleNumber:    g.pick(scaleNumbers...),
			ScaleDirection: g.pick("UP", "DOWN"),
		},
	}
}

func commEvent(seconds int, channel domain.Channel, pool *stemPool) (domain.Event, error) {
	raw, err := pool.pop(channel)
	if err != nil {
		return domain.Event{}, err
	}

	stem, err := domain.ParseStem(raw)
	if err != nil {
		return domain.Event{}, err
	}

	return domain.Event{
		Seconds: seconds,
		Comment: commentComm,
		Comm:    &domain.CommAction{Ship: stem.Ship, Radio: stem.Radio, Freq: stem.Freq},
	}, nil
}
