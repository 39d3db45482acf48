package application

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ThalesGroup/requin-2023-experiment/internal/domain"
	"github.com/ThalesGroup/requin-2023-experiment/internal/ports"
)

const (
	ConditionHigh = "high"
	ConditionLow  = "low"

	// MaxGenerationAttempts bounds the outer reseed-and-regenerate loop that
	// recovers from allocation-size mismatches.
	MaxGenerationAttempts = 100
)

// Versions are the scenario variants generated per condition. The high
// condition skips version c; the low condition's version c is the tutorial.
var Versions = []string{"a", "b", "c"}

var ErrGenerationBudget = errors.New("maximum attempts reached while generating scenario")

// DocumentRenderer turns a sorted event timeline into the declarative
// document text.
type DocumentRenderer func(events []domain.Event) string

// ScenarioService generates scenario documents and writes scenario sets to
// disk together with a run manifest.
type ScenarioService struct {
	stems     ports.StemSource
	params    ports.ParamSource
	manifests ports.ManifestWriter
	render    DocumentRenderer
	clock     ports.Clock
	logger    zerolog.Logger
}

func NewScenarioService(
	stems ports.StemSource,
	params ports.ParamSource,
	manifests ports.ManifestWriter,
	render DocumentRenderer,
	clock ports.Clock,
	logger zerolog.Logger,
) *ScenarioService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &ScenarioService{
		stems:     stems,
		params:    params,
		manifests: manifests,
		render:    render,
		clock:     clock,
		logger:    logger.With().Str("component", "scenario").Logger(),
	}
}

// Generate runs the pipeline once for a fixed seed and renders the document.
func (s *ScenarioService) Generate(seed int64, params domain.SessionParams) (string, GenerationResult, error) {
	generator := NewGenerator(seed, s.logger)
	result, err := generator.Generate(params, s.stems)
	if err != nil {
		return "", GenerationResult{}, err
	}
	return s.render(result.Events), result, nil
}

// ScenarioDocument is one successfully generated document plus the retry
// bookkeeping recorded in file names and the run manifest.
type ScenarioDocument struct {
	Document       string
	Seed           int64
	Attempts       int
	TaskTypeCount  int
	EventTimeCount int
}

// GenerateCompliant regenerates the whole session with incremented seeds
// until the allocated task-type count matches the sampled event-time count,
// up to maxAttempts. The recorded seed is the value after the final
// increment, matching the historical file-naming scheme.
func (s *ScenarioService) GenerateCompliant(seed int64, params domain.SessionParams, maxAttempts int) (ScenarioDocument, error) {
	taskTypeCount, eventTimeCount := -1, 0
	attempts := 0

	var document string
	for taskTypeCount != eventTimeCount && attempts < maxAttempts {
		doc, result, err := s.Generate(seed, params)
		if err != nil {
			return ScenarioDocument{}, err
		}
		document = doc
		taskTypeCount = result.TaskTypeCount
		eventTimeCount = result.EventTimeCount
		seed++
		attempts++
	}

	if taskTypeCount != eventTimeCount {
		return ScenarioDocument{}, fmt.Errorf("%w: %d attempts", ErrGenerationBudget, attempts)
	}

	return ScenarioDocument{
		Document:       document,
		Seed:           seed,
		Attempts:       attempts,
		TaskTypeCount:  taskTypeCount,
		EventTimeCount: eventTimeCount,
	}, nil
}

// CreateScenarioSet writes the scenario files for both difficulty conditions
// and all versions (high/c excluded) into outputDir, then records the run in
// the manifest.
func (s *ScenarioService) CreateScenarioSet(ctx context.Context, outputDir string, startSeed int64, maxAttempts int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	manifest := domain.RunManifest{
		RunID:     uuid.NewString(),
		CreatedAt: s.clock.Now().UTC(),
	}

	for _, condition := range []string{ConditionHigh, ConditionLow} {
		params, err := s.params.Params(condition)
		if err != nil {
			return fmt.Errorf("resolve %s condition parameters: %w", condition, err)
		}

		for _, version := range Versions {
			if condition == ConditionHigh && version == "c" {
				continue
			}

			scenario, err := s.GenerateCompliant(startSeed, params, maxAttempts)
			if err != nil {
				s.logger.Error().Err(err).Str("condition", condition).Str("version", version).Msg("scenario generation failed")
				return fmt.Errorf("generate %s/%s scenario: %w", condition, version, err)
			}

			name := scenarioFileName(condition, version, params, scenario.Seed)
			if err := os.WriteFile(filepath.Join(outputDir, name), []byte(scenario.Document), 0o644); err != nil {
				return fmt.Errorf("write scenario file: %w", err)
			}
			s.logger.Info().
				Str("file", name).
				Int("attempts", scenario.Attempts).
				Int("events", scenario.EventTimeCount).
				Msg("scenario written")

			manifest.Scenarios = append(manifest.Scenarios, domain.ScenarioRecord{
				File:           name,
				Condition:      condition,
				Version:        version,
				Seed:           scenario.Seed,
				Attempts:       scenario.Attempts,
				TaskTypeCount:  scenario.TaskTypeCount,
				EventTimeCount: scenario.EventTimeCount,
			})
		}
	}

	if s.manifests != nil {
		if err := s.manifests.Write(ctx, manifest); err != nil {
			return fmt.Errorf("write run manifest: %w", err)
		}
	}

	return nil
}

func scenarioFileName(condition, version string, params domain.SessionParams, seed int64) string {
	if condition == ConditionLow && version == "c" {
		return fmt.Sprintf("MATB_EVENTS_tutorial_%dmins_seed_%d.xml", params.SessionDurationMinutes, seed)
	}
	return fmt.Sprintf("MATB_EVENTS_%s_%s_seed_%d.xml", condition, version, seed)
}
