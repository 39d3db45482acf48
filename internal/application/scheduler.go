package application

import "github.com/ThalesGroup/requin-2023-experiment/internal/domain"

// scheduleAttempts caps the rejection-sampling loop. The outer reseed-and-
// regenerate loop is a separate recovery mechanism for allocation-size
// mismatches and stays at the caller.
const scheduleAttempts = 100000

// shuffleUntilCompliant reshuffles the task-type assignment in place until it
// satisfies the spacing rules against the fixed event times, or the attempt
// budget runs out. Only the type-to-time mapping changes between attempts.
func (g *Generator) shuffleUntilCompliant(taskTypes []domain.TaskType, eventTimes []int, rules domain.SpacingRules) bool {
	for attempt := 0; attempt < scheduleAttempts; attempt++ {
		g.rng.Shuffle(len(taskTypes), func(i, j int) {
			taskTypes[i], taskTypes[j] = taskTypes[j], taskTypes[i]
		})
		if domain.AssignmentComplies(taskTypes, eventTimes, rules) {
			return true
		}
	}
	return false
}
