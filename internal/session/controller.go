// Package session holds the in-memory reservation collection the UI renders
// from, plus the commands that mutate it through the store.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lfreitas/reserva/internal/reservation"
	"github.com/lfreitas/reserva/internal/store"
)

// Validation failures, resolved entirely client-side; they block the command
// before any network call.
var (
	ErrTimeConflict      = errors.New("time conflict with an existing reservation")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrUnknownID         = errors.New("unknown reservation id")
)

// User-facing messages for command failures.
const (
	msgLoadFailed   = "Could not load the reservations."
	msgCreateFailed = "Could not create the reservation."
	msgUpdateFailed = "Could not update the reservation."
	msgDeleteFailed = "Could not delete the reservation."
)

// Snapshot is the read model handed to the UI.
type Snapshot struct {
	Reservations []reservation.Reservation
	Loading      bool
	Err          string
	LastUpdated  time.Time

	// ConsecutiveFallbacks counts refreshes in a row served from the local
	// mirror instead of the remote API.
	ConsecutiveFallbacks int
}

// IsOffline returns true when the API has been unreachable for multiple
// refreshes.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFallbacks >= 2
}

// Controller coordinates commands against the store and the shared
// collection. Safe for concurrent use; snapshots are clones.
type Controller struct {
	mu    sync.RWMutex
	store *store.Store

	reservations []reservation.Reservation
	loading      bool
	errMsg       string
	lastUpdated  time.Time
}

// NewController builds a Controller over the given store.
func NewController(s *store.Store) *Controller {
	return &Controller{store: s}
}

// Snapshot returns a copy of the current read model.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		Reservations:         cloneReservations(c.reservations),
		Loading:              c.loading,
		Err:                  c.errMsg,
		LastUpdated:          c.lastUpdated,
		ConsecutiveFallbacks: c.store.ConsecutiveFallbacks(),
	}
}

// Reload replaces the collection from the store.
func (c *Controller) Reload(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.errMsg = ""
	c.mu.Unlock()

	reservations, err := c.store.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	c.lastUpdated = time.Now()
	if err != nil {
		c.errMsg = msgLoadFailed
		return err
	}
	c.reservations = reservations
	return nil
}

// Create validates the input, rejects time conflicts against the current
// collection, then commits through the store and prepends the new record.
func (c *Controller) Create(ctx context.Context, input reservation.Reservation) (reservation.Reservation, error) {
	c.setError("")

	if input.Status == "" {
		input.Status = reservation.StatusPending
	}
	if err := input.Validate(); err != nil {
		c.setError(err.Error())
		return reservation.Reservation{}, err
	}
	if reservation.HasConflict(input, c.current(), "") {
		c.setError(ErrTimeConflict.Error())
		return reservation.Reservation{}, ErrTimeConflict
	}

	created, err := c.store.Create(ctx, input)
	if err != nil {
		c.setError(msgCreateFailed)
		return reservation.Reservation{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.reservations = append([]reservation.Reservation{created}, c.reservations...)
	return created, nil
}

// Update re-validates the merged record and the patch's status transition
// against the latest known state, then commits and replaces the one record.
func (c *Controller) Update(ctx context.Context, id string, patch reservation.Patch) (reservation.Reservation, error) {
	c.setError("")

	existing, ok := c.find(id)
	if !ok {
		c.setError(msgUpdateFailed)
		return reservation.Reservation{}, fmt.Errorf("update %s: %w", id, ErrUnknownID)
	}
	if patch.Status != nil && !reservation.CanTransition(existing.Status, *patch.Status) {
		c.setError(ErrInvalidTransition.Error())
		return reservation.Reservation{}, ErrInvalidTransition
	}
	merged := patch.Apply(existing)
	if err := merged.Validate(); err != nil {
		c.setError(err.Error())
		return reservation.Reservation{}, err
	}
	if reservation.HasConflict(merged, c.current(), id) {
		c.setError(ErrTimeConflict.Error())
		return reservation.Reservation{}, ErrTimeConflict
	}

	updated, err := c.store.Update(ctx, id, patch)
	if err != nil {
		c.setError(msgUpdateFailed)
		return reservation.Reservation{}, err
	}

	c.replace(updated)
	return updated, nil
}

// Transition moves a reservation to a new status. It is Update with a
// status-only patch, so the legality gate runs right before commit.
func (c *Controller) Transition(ctx context.Context, id string, to reservation.Status) (reservation.Reservation, error) {
	return c.Update(ctx, id, reservation.StatusPatch(to))
}

// Delete removes a reservation from the store and the collection.
func (c *Controller) Delete(ctx context.Context, id string) error {
	c.setError("")

	if err := c.store.Remove(ctx, id); err != nil {
		c.setError(msgDeleteFailed)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.reservations[:0]
	for _, r := range c.reservations {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	c.reservations = kept
	return nil
}

func (c *Controller) current() []reservation.Reservation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneReservations(c.reservations)
}

func (c *Controller) find(id string) (reservation.Reservation, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.reservations {
		if r.ID == id {
			return r, true
		}
	}
	return reservation.Reservation{}, false
}

func (c *Controller) replace(updated reservation.Reservation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, r := range c.reservations {
		if r.ID == updated.ID {
			c.reservations[i] = updated
			return
		}
	}
}

func (c *Controller) setError(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errMsg = msg
}

func cloneReservations(in []reservation.Reservation) []reservation.Reservation {
	if len(in) == 0 {
		return nil
	}
	dup := make([]reservation.Reservation, len(in))
	copy(dup, in)
	return dup
}
