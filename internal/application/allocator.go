package application

import "github.com/ThalesGroup/requin-2023-experiment/internal/domain"

// allocateTaskTypes builds the task-type bag from the per-category counts and
// reconciles its size against the number of sampled event times: excess
// trailing entries are dropped, a deficit is padded with uniform draws from
// the full vocabulary. The pre-adjustment bag size and the event-time count
// are both returned so the caller can decide to regenerate the session when
// they differ.
func (g *Generator) allocateTaskTypes(params domain.SessionParams, eventTimeCount int) ([]domain.TaskType, int, int) {
	bag := make([]domain.TaskType, 0, eventTimeCount)
	for _, allocation := range []struct {
		taskType domain.TaskType
		count    int
	}{
		{domain.TaskResman, params.NPumpFailures},
		{domain.TaskCommOwn, params.NOwnComm},
		{domain.TaskCommOther, params.NOtherComm},
		{domain.TaskSysmonLight, params.NGreenRedIssues},
		{domain.TaskSysmonScale, params.NSystemsUpDown},
	} {
		for i := 0; i < allocation.count; i++ {
			bag = append(bag, allocation.taskType)
		}
	}

	taskTypeCount := len(bag)
	if len(bag) > eventTimeCount {
		bag = bag[:eventTimeCount]
	}
	for len(bag) < eventTimeCount {
		bag = append(bag, domain.TaskTypes[g.rng.Intn(len(domain.TaskTypes))])
	}

	return bag, taskTypeCount, eventTimeCount
}
