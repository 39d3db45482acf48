package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsWithoutFileUsesDefaults(t *testing.T) {
	source, err := NewSource(viper.New(), "", t.TempDir())
	require.NoError(t, err)

	high, err := source.Params("high")
	require.NoError(t, err)
	assert.Equal(t, HighDefaults(), high)

	low, err := source.Params("low")
	require.NoError(t, err)
	assert.Equal(t, LowDefaults(), low)
	assert.Equal(t, 25, low.MinSecondsEventDiff)
	assert.Equal(t, 2, low.NPumpFailures)
}

func TestParamsOverlayFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `{
  "MATBII_HIGH_PARAMS": {
    "session_duration_minutes": 12,
    "n_pump_failures": 7
  },
  "MATBII_LOW_PARAMS": {
    "min_seconds_event_diff": 30,
    "max_seconds_event_diff": 55
  }
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "matbii_params.json"), []byte(content), 0o644))

	source, err := NewSource(viper.New(), "", dir)
	require.NoError(t, err)

	high, err := source.Params("high")
	require.NoError(t, err)
	assert.Equal(t, 12, high.SessionDurationMinutes)
	assert.Equal(t, 7, high.NPumpFailures)
	// Untouched keys keep their defaults.
	assert.Equal(t, HighDefaults().MinSecondsEventDiff, high.MinSecondsEventDiff)
	assert.Equal(t, HighDefaults().NOwnComm, high.NOwnComm)

	low, err := source.Params("low")
	require.NoError(t, err)
	assert.Equal(t, 30, low.MinSecondsEventDiff)
	assert.Equal(t, 55, low.MaxSecondsEventDiff)
	assert.Equal(t, LowDefaults().NGreenRedIssues, low.NGreenRedIssues)
}

func TestParamsExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"MATBII_HIGH_PARAMS": {"total_auto_minutes": 2}}`), 0o644))

	source, err := NewSource(viper.New(), path)
	require.NoError(t, err)

	high, err := source.Params("HIGH")
	require.NoError(t, err)
	assert.Equal(t, 2, high.TotalAutoMinutes)
}

func TestParamsExplicitPathMissingFileFails(t *testing.T) {
	_, err := NewSource(viper.New(), filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestParamsUnknownCondition(t *testing.T) {
	source, err := NewSource(viper.New(), "", t.TempDir())
	require.NoError(t, err)

	_, err = source.Params("medium")
	require.ErrorIs(t, err, ErrUnknownCondition)
}

func TestParamsRejectsInvalidOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"MATBII_HIGH_PARAMS": {"session_duration_minutes": 0}}`), 0o644))

	source, err := NewSource(viper.New(), path)
	require.NoError(t, err)

	_, err = source.Params("high")
	require.Error(t, err)
}
