package application

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/ThalesGroup/requin-2023-experiment/internal/domain"
	"github.com/ThalesGroup/requin-2023-experiment/internal/ports"
)

// ErrScheduleNotCompliant reports that the rejection sampler exhausted its
// attempt budget without finding a task ordering that satisfies the spacing
// rules. Callers abandon the attempt; no partial document is produced.
var ErrScheduleNotCompliant = errors.New("no compliant task ordering found within the attempt budget")

// Generator runs one scenario-generation attempt. Every random draw goes
// through its single seeded source, so a fixed seed reproduces the timeline
// bit for bit.
type Generator struct {
	rng    *rand.Rand
	logger zerolog.Logger
}

func NewGenerator(seed int64, logger zerolog.Logger) *Generator {
	return &Generator{
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger.With().Str("component", "generator").Int64("seed", seed).Logger(),
	}
}

// Rand exposes the generator's random source so collaborating converters
// (e.g. the script importer) draw from the same seeded stream.
func (g *Generator) Rand() *rand.Rand { return g.rng }

// GenerationResult carries the materialized timeline plus the allocation
// counts the caller compares to decide on a reseed-and-retry.
type GenerationResult struct {
	Events         []domain.Event
	TaskTypeCount  int
	EventTimeCount int
}

// Generate runs the full pipeline: sample event times, allocate and schedule
// task types, materialize task events, then frame and close the session.
func (g *Generator) Generate(params domain.SessionParams, stems ports.StemSource) (GenerationResult, error) {
	result, err := g.ScheduleTasks(params, stems)
	if err != nil {
		return GenerationResult{}, err
	}
	result.Events = g.Finalize(result.Events, params)
	return result, nil
}

// ScheduleTasks produces the session skeleton plus the randomized task events,
// without the automation window, comm bracketing or session tail. The import
// path splices externally-authored events in between these two stages.
func (g *Generator) ScheduleTasks(params domain.SessionParams, stems ports.StemSource) (GenerationResult, error) {
	if err := params.Validate(); err != nil {
		return GenerationResult{}, fmt.Errorf("validate session parameters: %w", err)
	}

	pool, err := newStemPool(stems, g.rng)
	if err != nil {
		return GenerationResult{}, fmt.Errorf("prepare stem pools: %w", err)
	}

	duration := params.SessionDurationSeconds()
	eventTimes := g.sampleEventTimes(params.MinSecondsEventDiff, params.MaxSecondsEventDiff, duration)
	taskTypes, taskTypeCount, eventTimeCount := g.allocateTaskTypes(params, len(eventTimes))

	if !g.shuffleUntilCompliant(taskTypes, eventTimes, params.SpacingRules()) {
		return GenerationResult{}, ErrScheduleNotCompliant
	}

	events := sessionSkeleton()
	taskEvents, err := g.materializeTasks(taskTypes, eventTimes, pool, params)
	if err != nil {
		return GenerationResult{}, err
	}
	events = append(events, taskEvents...)

	return GenerationResult{
		Events:         events,
		TaskTypeCount:  taskTypeCount,
		EventTimeCount: eventTimeCount,
	}, nil
}

// Finalize appends the automation window, the communication start/stop
// bracketing and the session tail, then stable-sorts everything by time.
func (g *Generator) Finalize(events []domain.Event, params domain.SessionParams) []domain.Event {
	duration := params.SessionDurationSeconds()

	events = append(events, g.automationEvents(duration, params.TotalAutoMinutes)...)
	events = append(events, g.commBracketEvents(events, params)...)
	events = append(events,
		domain.Event{Seconds: duration - 2, Rate: "START"},
		domain.Event{Seconds: duration, Control: "END"},
	)

	domain.SortEventsBySeconds(events)
	return events
}

// sessionSkeleton opens every session the same way: resource management and
// system monitoring start at second 1, manual tracking at second 2, and the
// session control marker at second 0.
func sessionSkeleton() []domain.Event {
	return []domain.Event{
		{Seconds: 1, Sched: &domain.SchedAction{Task: "RESSYS", Action: "START", Update: "NULL", Response: "NULL"}},
		{Seconds: 2, Sched: &domain.SchedAction{Task: "TRACK", Action: "MANUAL", Update: "HIGH", Response: "MEDIUM"}},
		{Seconds: 0, Control: "START"},
	}
}

func (g *Generator) pick(options ...string) string {
	return options[g.rng.Intn(len(options))]
}
