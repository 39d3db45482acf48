package domain

import (
	"errors"
	"fmt"
	"strings"
)

type Channel string

const (
	ChannelOwn   Channel = "own"
	ChannelOther Channel = "other"
)

// Channels lists the communication channels in the order stem pools are
// prepared, so a fixed seed always shuffles them in the same sequence.
var Channels = []Channel{ChannelOwn, ChannelOther}

var (
	ErrStemFormat        = errors.New("invalid comm stem, expected SHIP_RADIO_FREQ")
	ErrStemPoolExhausted = errors.New("comm stem pool exhausted")
)

// Stem is one communication audio identifier decoded from its file stem, e.g.
// "OWN_COM2_124-575" becomes ship OWN, radio COM2, frequency 124.575.
type Stem struct {
	Ship  string
	Radio string
	Freq  string
}

func ParseStem(stem string) (Stem, error) {
	parts := strings.Split(stem, "_")
	if len(parts) != 3 {
		return Stem{}, fmt.Errorf("%w: %q", ErrStemFormat, stem)
	}

	freqParts := strings.Split(parts[2], "-")
	if len(freqParts) < 2 {
		return Stem{}, fmt.Errorf("%w: %q", ErrStemFormat, stem)
	}

	return Stem{
		Ship:  parts[0],
		Radio: parts[1],
		Freq:  freqParts[0] + "." + freqParts[1],
	}, nil
}
