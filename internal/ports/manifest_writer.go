package ports

import (
	"context"

	"github.com/ThalesGroup/requin-2023-experiment/internal/domain"
)

// ManifestWriter persists the manifest of a scenario-generation run.
type ManifestWriter interface {
	Write(ctx context.Context, manifest domain.RunManifest) error
}
