package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00:00"},
		{1, "00:00:01"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{598, "00:09:58"},
		{600, "00:10:00"},
		{3599, "00:59:59"},
		{3600, "01:00:00"},
		{359999, "99:59:59"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSeconds(tt.seconds))
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"00:00:00", 0},
		{"0:00:01", 1},
		{"00:10:00", 600},
		{"01:00:00", 3600},
		{"99:59:59", 359999},
		{" 0:02:02", 122},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.text)
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.want, got, tt.text)
	}
}

func TestParseClockRejectsMalformedText(t *testing.T) {
	for _, text := range []string{"", "600", "10:00", "1:2:3:4", "aa:bb:cc", "00:00:"} {
		_, err := ParseClock(text)
		require.Error(t, err, text)
		assert.ErrorIs(t, err, ErrClockFormat, text)
	}
}

func TestClockRoundTrip(t *testing.T) {
	for s := 0; s <= 359999; s += 7 {
		got, err := ParseClock(FormatSeconds(s))
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
}
