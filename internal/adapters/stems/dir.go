package stems

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ThalesGroup/requin-2023-experiment/internal/domain"
	"github.com/ThalesGroup/requin-2023-experiment/internal/ports"
)

// Dir scans a directory tree of .wav recordings for communication stems. A
// recording qualifies for a channel when its file stem carries the channel
// name in upper case and has the three underscore-separated parts of the
// SHIP_RADIO_FREQ naming convention.
type Dir struct {
	root string
}

var _ ports.StemSource = (*Dir)(nil)

func NewDir(root string) *Dir {
	return &Dir{root: root}
}

func (d *Dir) Stems(channel domain.Channel) ([]string, error) {
	marker := strings.ToUpper(string(channel))

	var stems []string
	err := filepath.WalkDir(d.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(path), ".wav") {
			return nil
		}
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if !strings.Contains(stem, marker) || len(strings.Split(stem, "_")) != 3 {
			return nil
		}
		stems = append(stems, stem)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan stem directory %s: %w", d.root, err)
	}

	// Directory walk order is platform dependent; sort so shuffles driven
	// by a fixed seed stay reproducible.
	sort.Strings(stems)
	return stems, nil
}
