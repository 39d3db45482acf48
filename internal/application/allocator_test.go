package application

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThalesGroup/requin-2023-experiment/internal/domain"
)

func allocatorParams() domain.SessionParams {
	params := domain.DefaultSessionParams()
	params.NPumpFailures = 2
	params.NOwnComm = 1
	params.NOtherComm = 1
	params.NGreenRedIssues = 2
	params.NSystemsUpDown = 1
	return params
}

func TestAllocateTaskTypesExactFit(t *testing.T) {
	g := NewGenerator(0, zerolog.Nop())
	bag, taskTypeCount, eventTimeCount := g.allocateTaskTypes(allocatorParams(), 7)

	assert.Equal(t, 7, taskTypeCount)
	assert.Equal(t, 7, eventTimeCount)
	assert.Equal(t, []domain.TaskType{
		domain.TaskResman, domain.TaskResman,
		domain.TaskCommOwn, domain.TaskCommOther,
		domain.TaskSysmonLight, domain.TaskSysmonLight,
		domain.TaskSysmonScale,
	}, bag)
}

func TestAllocateTaskTypesTruncatesTrailing(t *testing.T) {
	g := NewGenerator(0, zerolog.Nop())
	bag, taskTypeCount, eventTimeCount := g.allocateTaskTypes(allocatorParams(), 4)

	assert.Equal(t, 7, taskTypeCount)
	assert.Equal(t, 4, eventTimeCount)
	assert.Equal(t, []domain.TaskType{
		domain.TaskResman, domain.TaskResman,
		domain.TaskCommOwn, domain.TaskCommOther,
	}, bag)
}

func TestAllocateTaskTypesPadsWithRandomDraws(t *testing.T) {
	g := NewGenerator(0, zerolog.Nop())
	bag, taskTypeCount, eventTimeCount := g.allocateTaskTypes(allocatorParams(), 10)

	assert.Equal(t, 7, taskTypeCount)
	assert.Equal(t, 10, eventTimeCount)
	require.Len(t, bag, 10)
	for _, taskType := range bag[7:] {
		assert.Contains(t, domain.TaskTypes, taskType)
	}
}
