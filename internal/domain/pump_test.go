package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPumpID(t *testing.T) {
	assert.Equal(t, "P1", PumpID(1))
	assert.Equal(t, "P8", PumpID(PumpCount))
}

func TestPumpLedgerOverlap(t *testing.T) {
	ledger := NewPumpLedger()

	assert.True(t, ledger.Free("P3", 100, 150))
	ledger.MarkFailed("P3", 100, 150)

	// Overlapping windows in every direction.
	assert.False(t, ledger.Free("P3", 100, 150))
	assert.False(t, ledger.Free("P3", 90, 110))
	assert.False(t, ledger.Free("P3", 140, 200))
	assert.False(t, ledger.Free("P3", 110, 120))
	assert.False(t, ledger.Free("P3", 90, 200))

	// End is exclusive, so adjacent windows do not collide.
	assert.True(t, ledger.Free("P3", 150, 170))
	assert.True(t, ledger.Free("P3", 50, 100))

	// Other pumps are unaffected.
	assert.True(t, ledger.Free("P4", 100, 150))
}

func TestPumpLedgerTracksMultipleWindows(t *testing.T) {
	ledger := NewPumpLedger()
	ledger.MarkFailed("P1", 10, 20)
	ledger.MarkFailed("P1", 40, 60)

	assert.True(t, ledger.Free("P1", 20, 40))
	assert.False(t, ledger.Free("P1", 15, 45))
}
