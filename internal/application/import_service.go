package application

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/ThalesGroup/requin-2023-experiment/internal/domain"
	"github.com/ThalesGroup/requin-2023-experiment/internal/ports"
)

// ScriptConverter parses an externally-authored schedule script into event
// records, drawing any randomness (scale directions, stem choices) from the
// supplied source.
type ScriptConverter func(path string, rng *rand.Rand) ([]domain.Event, error)

// ImportService generates a scenario whose monitoring and communication
// events come from a text script instead of the random scheduler. Resource
// management and automation events stay generator-produced.
type ImportService struct {
	stems   ports.StemSource
	render  DocumentRenderer
	convert ScriptConverter
	logger  zerolog.Logger
}

func NewImportService(stems ports.StemSource, render DocumentRenderer, convert ScriptConverter, logger zerolog.Logger) *ImportService {
	return &ImportService{
		stems:   stems,
		render:  render,
		convert: convert,
		logger:  logger.With().Str("component", "import").Logger(),
	}
}

// GenerateWithScript runs the random pipeline, replaces its monitoring and
// communication events with the script's, then frames and renders the
// combined timeline. The returned counts mirror Generate so callers can keep
// the same reseed-and-retry policy.
func (s *ImportService) GenerateWithScript(scriptPath string, seed int64, params domain.SessionParams) (string, GenerationResult, error) {
	generator := NewGenerator(seed, s.logger)

	result, err := generator.ScheduleTasks(params, s.stems)
	if err != nil {
		return "", GenerationResult{}, err
	}

	imported, err := s.convert(scriptPath, generator.Rand())
	if err != nil {
		return "", GenerationResult{}, fmt.Errorf("convert schedule script: %w", err)
	}

	events := make([]domain.Event, 0, len(result.Events)+len(imported))
	for _, event := range result.Events {
		if event.IsSysmon() || event.IsComm() {
			continue
		}
		events = append(events, event)
	}
	events = append(events, imported...)

	result.Events = generator.Finalize(events, params)
	return s.render(result.Events), result, nil
}
