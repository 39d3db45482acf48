package domain

// SpacingRules collects every timing constraint a task-type assignment must
// satisfy before it can be materialized into events.
type SpacingRules struct {
	SessionDurationSeconds int

	// Communication prompts must not fall inside the lead-in after session
	// start or the wind-down before session end.
	SecondsAfterCommStart int
	SecondsBeforeCommStop int

	// A resource failure this close to session end has no room left for its
	// paired fix.
	MinSecondsFailFixResman int

	MinSecondsBetweenComm        int
	MinSecondsBetweenSysmonLight int
	MinSecondsBetweenSysmonScale int

	// No WindowSize consecutive task types may contain any single type more
	// than MaxRepeats times.
	WindowSize int
	MaxRepeats int
}

func DefaultSpacingRules() SpacingRules {
	return SpacingRules{
		SessionDurationSeconds:       600,
		SecondsAfterCommStart:        5,
		SecondsBeforeCommStop:        30,
		MinSecondsFailFixResman:      20,
		MinSecondsBetweenComm:        30,
		MinSecondsBetweenSysmonLight: 15,
		MinSecondsBetweenSysmonScale: 10,
		WindowSize:                   3,
		MaxRepeats:                   2,
	}
}

// AssignmentComplies reports whether the given task-type assignment, aligned
// index for index with eventTimes, satisfies all spacing rules. The event
// times are fixed and sorted; only the type-to-time mapping varies between
// scheduler attempts.
func AssignmentComplies(taskTypes []TaskType, eventTimes []int, rules SpacingRules) bool {
	maxSecondsLastComm := rules.SessionDurationSeconds - rules.SecondsBeforeCommStop
	maxSecondsResman := rules.SessionDurationSeconds - rules.MinSecondsFailFixResman - 1

	var commTimes, lightTimes, scaleTimes []int
	for i, taskType := range taskTypes {
		t := eventTimes[i]
		switch {
		case taskType.IsComm():
			if t >= maxSecondsLastComm || t <= rules.SecondsAfterCommStart {
				return false
			}
			commTimes = append(commTimes, t)
		case taskType == TaskResman:
			if t >= maxSecondsResman {
				return false
			}
		case taskType == TaskSysmonLight:
			lightTimes = append(lightTimes, t)
		case taskType == TaskSysmonScale:
			scaleTimes = append(scaleTimes, t)
		}
	}

	if minGapBelow(commTimes, rules.MinSecondsBetweenComm) {
		return false
	}
	if minGapBelow(lightTimes, rules.MinSecondsBetweenSysmonLight) {
		return false
	}
	if minGapBelow(scaleTimes, rules.MinSecondsBetweenSysmonScale) {
		return false
	}
	if hasRepeatedTypes(taskTypes, rules.WindowSize, rules.MaxRepeats) {
		return false
	}

	return true
}

// minGapBelow reports whether any two consecutive values of a sorted slice
// differ by less than the floor.
func minGapBelow(times []int, floor int) bool {
	for i := 1; i < len(times); i++ {
		if times[i]-times[i-1] < floor {
			return true
		}
	}
	return false
}

func hasRepeatedTypes(taskTypes []TaskType, windowSize, maxRepeats int) bool {
	for i := 0; i+windowSize <= len(taskTypes); i++ {
		counts := make(map[TaskType]int, windowSize)
		for _, taskType := range taskTypes[i : i+windowSize] {
			counts[taskType]++
			if counts[taskType] > maxRepeats {
				return true
			}
		}
	}
	return false
}
