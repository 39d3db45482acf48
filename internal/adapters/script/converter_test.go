package script

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThalesGroup/requin-2023-experiment/internal/adapters/stems"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedule.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConvertSchedule(t *testing.T) {
	path := writeScript(t, `# session schedule
0:02:02;sysmon;lights-1
0:02:30;sysmon;lights-2
0:03:10;sysmon;scales-3

0:03:45;communications;radioprompt;own
0:04:32;communications;radioprompt;other
0:05:00;track;automation;start
`)

	converter := NewConverter(stems.NewBuiltin())
	events, err := converter.Convert(path, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Len(t, events, 5, "comments, blanks and unknown directives are skipped")

	green := events[0]
	assert.Equal(t, 122, green.Seconds)
	require.NotNil(t, green.Sysmon)
	assert.Equal(t, "GREEN", green.Sysmon.LightType)
	assert.Equal(t, "START", green.Sysmon.Activity)

	red := events[1]
	assert.Equal(t, 150, red.Seconds)
	require.NotNil(t, red.Sysmon)
	assert.Equal(t, "RED", red.Sysmon.LightType)
	assert.Equal(t, "START", red.Sysmon.Activity, "imported lights always carry the activity marker")

	scale := events[2]
	assert.Equal(t, 190, scale.Seconds)
	require.NotNil(t, scale.Sysmon)
	assert.Equal(t, "THREE", scale.Sysmon.ScaleNumber)
	assert.Contains(t, []string{"UP", "DOWN"}, scale.Sysmon.ScaleDirection)

	own := events[3]
	assert.Equal(t, 225, own.Seconds)
	require.NotNil(t, own.Comm)
	assert.Equal(t, "OWN", own.Comm.Ship)
	assert.NotEmpty(t, own.Comm.Radio)
	assert.Contains(t, own.Comm.Freq, ".")

	other := events[4]
	require.NotNil(t, other.Comm)
	assert.Equal(t, "OTHER", other.Comm.Ship)
}

func TestConvertIsDeterministic(t *testing.T) {
	path := writeScript(t, `0:01:00;sysmon;scales-2
0:02:00;communications;radioprompt;own
`)

	converter := NewConverter(stems.NewBuiltin())
	first, err := converter.Convert(path, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	second, err := converter.Convert(path, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestConvertRejectsMalformedLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"too few fields", "0:01:00;sysmon\n"},
		{"bad clock", "xx:yy:zz;sysmon;lights-1\n"},
		{"bad scale number", "0:01:00;sysmon;scales-9\n"},
		{"missing ship", "0:01:00;communications;radioprompt\n"},
		{"malformed action", "0:01:00;sysmon;lights-one\n"},
	}

	converter := NewConverter(stems.NewBuiltin())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScript(t, tt.content)
			_, err := converter.Convert(path, rand.New(rand.NewSource(0)))
			require.Error(t, err)
		})
	}
}

func TestConvertMissingFile(t *testing.T) {
	converter := NewConverter(stems.NewBuiltin())
	_, err := converter.Convert(filepath.Join(t.TempDir(), "absent.txt"), rand.New(rand.NewSource(0)))
	require.Error(t, err)
}

func TestConvertUnknownChannel(t *testing.T) {
	path := writeScript(t, "0:01:00;communications;radioprompt;nobody\n")
	converter := NewConverter(stems.NewBuiltin())
	_, err := converter.Convert(path, rand.New(rand.NewSource(0)))
	require.Error(t, err)
}

func TestLightNumberContainingOneIsGreen(t *testing.T) {
	// Light 10 contains a "1" and maps to green like light 1.
	path := writeScript(t, "0:01:00;sysmon;lights-10\n")
	converter := NewConverter(stems.NewBuiltin())
	events, err := converter.Convert(path, rand.New(rand.NewSource(0)))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "GREEN", events[0].Sysmon.LightType)
}
