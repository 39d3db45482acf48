package application

import (
	"fmt"
	"math/rand"

	"github.com/ThalesGroup/requin-2023-experiment/internal/domain"
	"github.com/ThalesGroup/requin-2023-experiment/internal/ports"
)

// stemPool holds one shuffled stem list per communication channel. Stems are
// consumed from the end, once each, for the lifetime of a generation attempt.
type stemPool struct {
	pools map[domain.Channel][]string
}

// newStemPool loads and shuffles the stems for every channel in the fixed
// own-then-other order, so a fixed seed always yields the same pools.
func newStemPool(source ports.StemSource, rng *rand.Rand) (*stemPool, error) {
	pools := make(map[domain.Channel][]string, len(domain.Channels))
	for _, channel := range domain.Channels {
		stems, err := source.Stems(channel)
		if err != nil {
			return nil, fmt.Errorf("load %s stems: %w", channel, err)
		}
		rng.Shuffle(len(stems), func(i, j int) {
			stems[i], stems[j] = stems[j], stems[i]
		})
		pools[channel] = stems
	}
	return &stemPool{pools: pools}, nil
}

func (p *stemPool) pop(channel domain.Channel) (string, error) {
	stems := p.pools[channel]
	if len(stems) == 0 {
		return "", fmt.Errorf("%w: channel %q", domain.ErrStemPoolExhausted, channel)
	}

	stem := stems[len(stems)-1]
	p.pools[channel] = stems[:len(stems)-1]
	return stem, nil
}
