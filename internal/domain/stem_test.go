package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStem(t *testing.T) {
	tests := []struct {
		stem string
		want Stem
	}{
		{"OWN_COM2_124-575", Stem{Ship: "OWN", Radio: "COM2", Freq: "124.575"}},
		{"OTHER_NAV1_110-450", Stem{Ship: "OTHER", Radio: "NAV1", Freq: "110.450"}},
	}
	for _, tt := range tests {
		got, err := ParseStem(tt.stem)
		require.NoError(t, err, tt.stem)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseStemRejectsMalformedStems(t *testing.T) {
	for _, stem := range []string{"", "OWN", "OWN_COM2", "OWN_COM2_124575", "OWN_COM2_124-575_EXTRA"} {
		_, err := ParseStem(stem)
		require.Error(t, err, stem)
		assert.ErrorIs(t, err, ErrStemFormat, stem)
	}
}
