package mirror

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/lfreitas/reserva/internal/api"
)

// Shipped fallback dataset, used when no bootstrap file is configured or the
// configured one is missing.
//
//go:embed bootstrap.json
var embeddedBootstrap []byte

// snapshot is the bootstrap file shape.
type snapshot struct {
	Reservations []api.Record `json:"reservations"`
}

// Seed returns the bootstrap records used to prime an empty mirror. It reads
// the configured bootstrap file when present and falls back to the embedded
// snapshot. Seed does not persist; callers Save the result so seeding stays
// a single explicit write.
func (m *Mirror) Seed() ([]api.Record, error) {
	raw := embeddedBootstrap
	if m.bootstrapPath != "" {
		fileRaw, err := os.ReadFile(m.bootstrapPath)
		switch {
		case err == nil:
			raw = fileRaw
		case errors.Is(err, os.ErrNotExist):
			// keep the embedded snapshot
		default:
			return nil, fmt.Errorf("read bootstrap: %w", err)
		}
	}

	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode bootstrap: %w", err)
	}
	return snap.Reservations, nil
}
