// Package store mediates between the remote reservation API and the durable
// local mirror. Reads and writes go remote first; a connectivity failure
// falls back to the mirror, an application error propagates untouched.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/lfreitas/reserva/internal/api"
	"github.com/lfreitas/reserva/internal/mirror"
	"github.com/lfreitas/reserva/internal/reservation"
)

// ErrNotFound marks a reservation absent from both the remote path and the
// mirror, distinguishable from a connectivity failure.
var ErrNotFound = errors.New("reservation not found")

// Store is the resilient reservation store.
type Store struct {
	client *api.Client
	mirror *mirror.Mirror

	mu        sync.Mutex
	fallbacks int // consecutive List calls served from the mirror
}

// New builds a Store over the given transport and mirror.
func New(client *api.Client, m *mirror.Mirror) *Store {
	return &Store{client: client, mirror: m}
}

// ConsecutiveFallbacks reports how many List calls in a row fell back to the
// mirror. The next successful remote List resets it.
func (s *Store) ConsecutiveFallbacks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fallbacks
}

func (s *Store) noteFallback() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fallbacks++
}

func (s *Store) noteRemoteOK() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fallbacks = 0
}

// List fetches every reservation. A successful remote fetch overwrites the
// mirror, establishing a fresh fallback baseline; offline, the mirror (seeded
// on first use) answers instead.
func (s *Store) List(ctx context.Context) ([]reservation.Reservation, error) {
	recs, err := s.client.List(ctx)
	if err != nil {
		if !api.IsConnectivity(err) {
			return nil, err
		}
		s.noteFallback()
		log.WithError(err).Debug("list: remote unreachable, using mirror")
		recs, err := s.mirrorRecords()
		if err != nil {
			return nil, err
		}
		return api.FromWireAll(recs), nil
	}

	s.noteRemoteOK()
	if err := s.mirror.Save(recs); err != nil {
		log.WithError(err).Warn("list: mirror refresh failed")
	}
	return api.FromWireAll(recs), nil
}

// Get fetches one reservation by id.
func (s *Store) Get(ctx context.Context, id string) (reservation.Reservation, error) {
	rec, err := s.client.Get(ctx, id)
	if err != nil {
		if !api.IsConnectivity(err) {
			return reservation.Reservation{}, err
		}
		log.WithError(err).Debug("get: remote unreachable, using mirror")
		recs, err := s.mirrorRecords()
		if err != nil {
			return reservation.Reservation{}, err
		}
		for _, rec := range recs {
			if rec.ID == id {
				return api.FromWire(rec), nil
			}
		}
		return reservation.Reservation{}, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	return api.FromWire(rec), nil
}

// Create stores a new reservation. Offline, the record gets a locally
// generated id and is prepended to the mirror.
func (s *Store) Create(ctx context.Context, input reservation.Reservation) (reservation.Reservation, error) {
	rec, err := s.client.Create(ctx, api.ToCreateBody(input))
	if err != nil {
		if !api.IsConnectivity(err) {
			return reservation.Reservation{}, err
		}
		log.WithError(err).Debug("create: remote unreachable, writing to mirror")
		recs, loadErr := s.mirrorRecords()
		if loadErr != nil {
			return reservation.Reservation{}, loadErr
		}
		local := api.ToWire(input)
		local.ID = newLocalID()
		recs = append([]api.Record{local}, recs...)
		if err := s.mirror.Save(recs); err != nil {
			return reservation.Reservation{}, err
		}
		return api.FromWire(local), nil
	}
	return api.FromWire(rec), nil
}

// Update applies a partial update. Offline, the patch is shallow-merged over
// the mirrored record; unset fields never overwrite stored values.
func (s *Store) Update(ctx context.Context, id string, patch reservation.Patch) (reservation.Reservation, error) {
	rec, err := s.client.Patch(ctx, id, api.ToPatchBody(patch))
	if err != nil {
		if !api.IsConnectivity(err) {
			return reservation.Reservation{}, err
		}
		log.WithError(err).Debug("update: remote unreachable, patching mirror")
		recs, loadErr := s.mirrorRecords()
		if loadErr != nil {
			return reservation.Reservation{}, loadErr
		}
		for i, stored := range recs {
			if stored.ID != id {
				continue
			}
			merged := patch.Apply(api.FromWire(stored))
			recs[i] = api.ToWire(merged)
			if err := s.mirror.Save(recs); err != nil {
				return reservation.Reservation{}, err
			}
			return merged, nil
		}
		return reservation.Reservation{}, fmt.Errorf("update %s: %w", id, ErrNotFound)
	}
	return api.FromWire(rec), nil
}

// Remove deletes a reservation. Offline removal filters the mirror and is
// idempotent: an absent id is a no-op.
func (s *Store) Remove(ctx context.Context, id string) error {
	err := s.client.Delete(ctx, id)
	if err == nil {
		return nil
	}
	if !api.IsConnectivity(err) {
		return err
	}
	log.WithError(err).Debug("remove: remote unreachable, filtering mirror")
	recs, err := s.mirror.Load()
	if err != nil {
		return err
	}
	kept := recs[:0]
	for _, rec := range recs {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	return s.mirror.Save(kept)
}

// mirrorRecords loads the mirror, seeding and persisting the bootstrap
// snapshot the first time the mirror is needed while empty.
func (s *Store) mirrorRecords() ([]api.Record, error) {
	recs, err := s.mirror.Load()
	if err != nil {
		return nil, err
	}
	if len(recs) > 0 {
		return recs, nil
	}
	seeded, err := s.mirror.Seed()
	if err != nil {
		return nil, err
	}
	log.WithField("records", len(seeded)).Info("seeded mirror from bootstrap snapshot")
	if err := s.mirror.Save(seeded); err != nil {
		return nil, err
	}
	return seeded, nil
}

// newLocalID prefers a cryptographically random UUID; uniqueness under the
// timestamp fallback is best-effort.
func newLocalID() string {
	if id, err := uuid.NewRandom(); err == nil {
		return id.String()
	}
	return fmt.Sprintf("local-%d", time.Now().UnixNano())
}
