// Package stems provides communication stem sources: a built-in catalogue
// matching the stock MATB-II audio set, and a directory scanner for custom
// recordings.
package stems

import (
	"fmt"

	"github.com/ThalesGroup/requin-2023-experiment/internal/domain"
	"github.com/ThalesGroup/requin-2023-experiment/internal/ports"
)

// Builtin serves the stem names of the stock MATB-II communications audio.
type Builtin struct{}

var _ ports.StemSource = (*Builtin)(nil)

func NewBuiltin() *Builtin {
	return &Builtin{}
}

// Stems returns a fresh copy so callers can shuffle and consume it freely.
func (Builtin) Stems(channel domain.Channel) ([]string, error) {
	switch channel {
	case domain.ChannelOwn:
		return append([]string(nil), ownStems...), nil
	case domain.ChannelOther:
		return append([]string(nil), otherStems...), nil
	default:
		return nil, fmt.Errorf("no built-in stems for channel %q", channel)
	}
}

var ownStems = []string{
	"OWN_COM1_118-325",
	"OWN_COM1_120-125",
	"OWN_COM1_124-575",
	"OWN_COM1_126-450",
	"OWN_COM2_119-375",
	"OWN_COM2_121-325",
	"OWN_COM2_125-125",
	"OWN_COM2_127-550",
	"OWN_NAV1_110-300",
	"OWN_NAV1_112-600",
	"OWN_NAV1_114-150",
	"OWN_NAV1_116-900",
	"OWN_NAV2_109-750",
	"OWN_NAV2_111-550",
	"OWN_NAV2_113-250",
	"OWN_NAV2_115-700",
}

var otherStems = []string{
	"OTHER_COM1_118-125",
	"OTHER_COM1_120-725",
	"OTHER_COM1_124-350",
	"OTHER_COM1_126-875",
	"OTHER_COM2_119-950",
	"OTHER_COM2_121-650",
	"OTHER_COM2_125-500",
	"OTHER_COM2_127-225",
	"OTHER_NAV1_110-450",
	"OTHER_NAV1_112-100",
	"OTHER_NAV1_114-800",
	"OTHER_NAV1_116-350",
	"OTHER_NAV2_109-300",
	"OTHER_NAV2_111-900",
	"OTHER_NAV2_113-650",
	"OTHER_NAV2_115-200",
}
