package application

import "math"

// graceSecondsBeforeSessionEnd keeps a safety margin free of task events at
// the end of the session.
const graceSecondsBeforeSessionEnd = 25

// sampleEventTimes draws inter-event gaps uniformly from [minGap, maxGap)
// with replacement and cumulatively sums them into strictly increasing
// candidate timestamps. Candidates inside the end-of-session grace margin are
// discarded, so the result length depends on the draws.
func (g *Generator) sampleEventTimes(minGap, maxGap, durationSeconds int) []int {
	count := int(math.Round(float64(durationSeconds) / float64(minGap)))

	times := make([]int, 0, count)
	total := 0
	for i := 0; i < count; i++ {
		total += minGap + g.rng.Intn(maxGap-minGap)
		if total < durationSeconds-graceSecondsBeforeSessionEnd {
			times = append(times, total)
		}
	}

	return times
}
