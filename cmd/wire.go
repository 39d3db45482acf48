package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/ThalesGroup/requin-2023-experiment/internal/adapters/manifest"
	paramsadapter "github.com/ThalesGroup/requin-2023-experiment/internal/adapters/params"
	"github.com/ThalesGroup/requin-2023-experiment/internal/adapters/render/matbxml"
	"github.com/ThalesGroup/requin-2023-experiment/internal/adapters/script"
	"github.com/ThalesGroup/requin-2023-experiment/internal/adapters/stems"
	"github.com/ThalesGroup/requin-2023-experiment/internal/application"
	"github.com/ThalesGroup/requin-2023-experiment/internal/domain"
	"github.com/ThalesGroup/requin-2023-experiment/internal/ports"
)

type app struct {
	logger zerolog.Logger
}

func wireApp() *app {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return &app{
		logger: zerolog.New(writer).With().Timestamp().Logger(),
	}
}

// stemSource resolves the communication stem catalogue: a recording
// directory when one is given, the stock MATB-II list otherwise.
func (a *app) stemSource(dir string) ports.StemSource {
	if dir == "" {
		return stems.NewBuiltin()
	}
	return stems.NewDir(dir)
}

func (a *app) scenarioService(paramsFile, stemsDir, manifestPath string) (*application.ScenarioService, error) {
	source, err := paramsadapter.NewSource(viper.New(), paramsFile, ".")
	if err != nil {
		return nil, fmt.Errorf("wire parameter source: %w", err)
	}

	var manifests ports.ManifestWriter
	if manifestPath != "" {
		manifests = manifest.NewWriter(manifestPath)
	}

	return application.NewScenarioService(
		a.stemSource(stemsDir),
		source,
		manifests,
		matbxml.Render,
		ports.SystemClock{},
		a.logger,
	), nil
}

func (a *app) importService(stemsDir string) *application.ImportService {
	source := a.stemSource(stemsDir)
	converter := script.NewConverter(source)
	return application.NewImportService(source, matbxml.Render, converter.Convert, a.logger)
}

func (a *app) sessionParams(paramsFile, condition string) (domain.SessionParams, error) {
	source, err := paramsadapter.NewSource(viper.New(), paramsFile, ".")
	if err != nil {
		return domain.SessionParams{}, fmt.Errorf("wire parameter source: %w", err)
	}
	return source.Params(condition)
}
