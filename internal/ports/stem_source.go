package ports

import "github.com/ThalesGroup/requin-2023-experiment/internal/domain"

// StemSource supplies communication audio stems for one channel. Callers
// shuffle and consume the returned slice; implementations must hand out a
// fresh copy on every call.
type StemSource interface {
	Stems(channel domain.Channel) ([]string, error)
}
