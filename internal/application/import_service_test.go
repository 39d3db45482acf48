package application

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThalesGroup/requin-2023-experiment/internal/domain"
)

func TestGenerateWithScriptSplicesImportedEvents(t *testing.T) {
	imported := []domain.Event{
		{Seconds: 122, Sysmon: &domain.SysmonAction{Activity: "START", LightType: "GREEN"}},
		{Seconds: 225, Comm: &domain.CommAction{Ship: "OWN", Radio: "COM2", Freq: "124.575"}},
		{Seconds: 312, Comm: &domain.CommAction{Ship: "OTHER", Radio: "NAV1", Freq: "110.450"}},
	}

	var rendered []domain.Event
	render := func(events []domain.Event) string {
		rendered = append([]domain.Event(nil), events...)
		return "document"
	}
	convert := func(path string, rng *rand.Rand) ([]domain.Event, error) {
		assert.Equal(t, "schedule.txt", path)
		require.NotNil(t, rng)
		return imported, nil
	}

	service := NewImportService(testStems(), render, convert, zerolog.Nop())
	document, result, err := service.GenerateWithScript("schedule.txt", 11, domain.DefaultSessionParams())
	require.NoError(t, err)
	assert.Equal(t, "document", document)
	assert.NotEmpty(t, result.Events)

	// All monitoring and communication events must come from the script.
	var sysmonCount, commCount, resmanCount int
	for _, event := range rendered {
		switch {
		case event.IsSysmon():
			sysmonCount++
			assert.Equal(t, 122, event.Seconds)
		case event.IsComm():
			commCount++
			assert.Contains(t, []int{225, 312}, event.Seconds)
		case event.Resman != nil:
			resmanCount++
		}
	}
	assert.Equal(t, 1, sysmonCount)
	assert.Equal(t, 2, commCount)
	assert.Positive(t, resmanCount, "resource management events stay generator-produced")

	// Comm bracketing derives from the imported prompt times.
	assertContainsEvent(t, rendered, 225-domain.DefaultSessionParams().SecondsAfterCommStart, func(e domain.Event) bool {
		return e.Sched != nil && e.Sched.Task == "COMM" && e.Sched.Action == "START"
	})
}

func TestGenerateWithScriptIsDeterministic(t *testing.T) {
	convert := func(_ string, rng *rand.Rand) ([]domain.Event, error) {
		// Draw from the shared stream so determinism covers the converter.
		return []domain.Event{
			{Seconds: 100 + rng.Intn(50), Comm: &domain.CommAction{Ship: "OWN", Radio: "COM1", Freq: "118.325"}},
		}, nil
	}
	render := func(events []domain.Event) string { return "" }

	service := NewImportService(testStems(), render, convert, zerolog.Nop())
	_, first, err := service.GenerateWithScript("any", 5, domain.DefaultSessionParams())
	require.NoError(t, err)
	_, second, err := service.GenerateWithScript("any", 5, domain.DefaultSessionParams())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateWithScriptPropagatesConvertError(t *testing.T) {
	convert := func(_ string, _ *rand.Rand) ([]domain.Event, error) {
		return nil, assert.AnError
	}
	render := func(events []domain.Event) string { return "" }

	service := NewImportService(testStems(), render, convert, zerolog.Nop())
	_, _, err := service.GenerateWithScript("any", 0, domain.DefaultSessionParams())
	require.ErrorIs(t, err, assert.AnError)
}
