// Package mirror persists the last-known-good reservation collection so the
// console keeps working when the API is unreachable.
package mirror

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lfreitas/reserva/internal/api"
)

const mirrorFile = "reservations.json"

// Mirror owns one JSON file holding the wire-format reservation array.
type Mirror struct {
	path          string
	bootstrapPath string
}

// New builds a Mirror rooted at dataDir. bootstrapPath may be empty; seeding
// then uses the embedded snapshot.
func New(dataDir, bootstrapPath string) *Mirror {
	return &Mirror{
		path:          filepath.Join(dataDir, mirrorFile),
		bootstrapPath: bootstrapPath,
	}
}

// Path returns the mirror file location.
func (m *Mirror) Path() string {
	return m.path
}

// Load reads the mirrored records. A missing file is an empty mirror, not an
// error.
func (m *Mirror) Load() ([]api.Record, error) {
	raw, err := os.ReadFile(m.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read mirror: %w", err)
	}
	var recs []api.Record
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, fmt.Errorf("decode mirror: %w", err)
	}
	return recs, nil
}

// Save replaces the mirror contents, creating the data dir as needed.
func (m *Mirror) Save(recs []api.Record) error {
	if recs == nil {
		recs = []api.Record{}
	}
	raw, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode mirror: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(m.path, raw, 0o644); err != nil {
		return fmt.Errorf("write mirror: %w", err)
	}
	return nil
}
