// Package params resolves per-condition session parameters from a JSON
// parameter file, falling back to built-in defaults when no file is present.
package params

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/ThalesGroup/requin-2023-experiment/internal/domain"
	"github.com/ThalesGroup/requin-2023-experiment/internal/ports"
)

const (
	configName = "matbii_params"
	configType = "json"

	highParamsKey = "MATBII_HIGH_PARAMS"
	lowParamsKey  = "MATBII_LOW_PARAMS"
)

var ErrUnknownCondition = errors.New("unknown difficulty condition")

type Source struct {
	cfg *viper.Viper
}

var _ ports.ParamSource = (*Source)(nil)

// NewSource reads the parameter file. An explicit path wins; otherwise the
// file is searched in searchDirs. A missing file is not an error: conditions
// then resolve to their built-in defaults.
func NewSource(cfg *viper.Viper, path string, searchDirs ...string) (*Source, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	if path != "" {
		cfg.SetConfigFile(path)
	}
	for _, dir := range searchDirs {
		cfg.AddConfigPath(dir)
	}

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read parameter file: %w", err)
		}
	}

	return &Source{cfg: cfg}, nil
}

// Params returns the session parameters for the condition, overlaying any
// values from the parameter file on top of the condition defaults.
func (s *Source) Params(condition string) (domain.SessionParams, error) {
	var key string
	var defaults domain.SessionParams
	switch strings.ToLower(condition) {
	case "high":
		key = highParamsKey
		defaults = HighDefaults()
	case "low":
		key = lowParamsKey
		defaults = LowDefaults()
	default:
		return domain.SessionParams{}, fmt.Errorf("%w: %q", ErrUnknownCondition, condition)
	}

	sub := s.cfg.Sub(key)
	if sub == nil {
		return defaults, nil
	}

	var schema paramsSchema
	if err := sub.Unmarshal(&schema); err != nil {
		return domain.SessionParams{}, fmt.Errorf("decode %s: %w", key, err)
	}

	merged := schema.overlay(defaults)
	if err := merged.Validate(); err != nil {
		return domain.SessionParams{}, fmt.Errorf("validate %s: %w", key, err)
	}
	return merged, nil
}

// HighDefaults is the high-workload condition baseline.
func HighDefaults() domain.SessionParams {
	return domain.DefaultSessionParams()
}

// LowDefaults is the low-workload condition baseline: same session length,
// sparser events, fewer tasks per category.
func LowDefaults() domain.SessionParams {
	p := domain.DefaultSessionParams()
	p.MinSecondsEventDiff = 25
	p.MaxSecondsEventDiff = 50
	p.NPumpFailures = 2
	p.NOwnComm = 2
	p.NOtherComm = 2
	p.NGreenRedIssues = 3
	p.NSystemsUpDown = 3
	return p
}
