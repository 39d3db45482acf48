package application

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThalesGroup/requin-2023-experiment/internal/domain"
)

func TestStemPoolPopsEachStemOnce(t *testing.T) {
	source := stubStemSource{
		own:   []string{"OWN_COM1_118-325", "OWN_COM2_119-375"},
		other: []string{"OTHER_COM1_118-125"},
	}

	pool, err := newStemPool(source, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		stem, err := pool.pop(domain.ChannelOwn)
		require.NoError(t, err)
		assert.False(t, seen[stem], "stem %s popped twice", stem)
		seen[stem] = true
	}

	_, err = pool.pop(domain.ChannelOwn)
	require.ErrorIs(t, err, domain.ErrStemPoolExhausted)

	_, err = pool.pop(domain.ChannelOther)
	require.NoError(t, err)
}

func TestStemPoolShuffleIsSeeded(t *testing.T) {
	source := testStems()

	first, err := newStemPool(source, rand.New(rand.NewSource(4)))
	require.NoError(t, err)
	second, err := newStemPool(source, rand.New(rand.NewSource(4)))
	require.NoError(t, err)

	assert.Equal(t, first.pools, second.pools)
}

func TestStemPoolPropagatesSourceError(t *testing.T) {
	_, err := newStemPool(stubStemSource{err: assert.AnError}, rand.New(rand.NewSource(0)))
	require.ErrorIs(t, err, assert.AnError)
}
