// Package manifest persists run manifests as TOML next to the generated
// scenario files.
package manifest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/ThalesGroup/requin-2023-experiment/internal/domain"
	"github.com/ThalesGroup/requin-2023-experiment/internal/ports"
)

type Writer struct {
	path string
}

var _ ports.ManifestWriter = (*Writer)(nil)

func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

func (w *Writer) Write(ctx context.Context, manifest domain.RunManifest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := toml.Marshal(toDocument(manifest))
	if err != nil {
		return fmt.Errorf("marshal run manifest: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}
	if err := os.WriteFile(w.path, data, 0o644); err != nil {
		return fmt.Errorf("write run manifest: %w", err)
	}
	return nil
}

type document struct {
	RunID     string     `toml:"run_id"`
	CreatedAt time.Time  `toml:"created_at"`
	Scenarios []scenario `toml:"scenario"`
}

type scenario struct {
	File           string `toml:"file"`
	Condition      string `toml:"condition"`
	Version        string `toml:"version"`
	Seed           int64  `toml:"seed"`
	Attempts       int    `toml:"attempts"`
	TaskTypeCount  int    `toml:"task_type_count"`
	EventTimeCount int    `toml:"event_time_count"`
}

func toDocument(manifest domain.RunManifest) document {
	doc := document{
		RunID:     manifest.RunID,
		CreatedAt: manifest.CreatedAt,
		Scenarios: make([]scenario, 0, len(manifest.Scenarios)),
	}
	for _, record := range manifest.Scenarios {
		doc.Scenarios = append(doc.Scenarios, scenario{
			File:           record.File,
			Condition:      record.Condition,
			Version:        record.Version,
			Seed:           record.Seed,
			Attempts:       record.Attempts,
			TaskTypeCount:  record.TaskTypeCount,
			EventTimeCount: record.EventTimeCount,
		})
	}
	return doc
}
