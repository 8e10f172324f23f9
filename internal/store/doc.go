// Package store implements the resilient reservation store.
//
// # Overview
//
// The store presents one stable read/write interface over the reservation
// collection while tolerating remote unavailability. Every operation goes to
// the remote API first; when the request fails at the network level the
// operation is served from a durable local mirror instead, seeded on first
// use from a bootstrap snapshot.
//
// # Failure classification
//
// The fallback triggers only on connectivity failures: requests that never
// produced a server response (dial failure, DNS failure, timeout). A response
// carrying an error status is an application failure and propagates to the
// caller untouched, so server-side validation and authorization failures are
// never masked as offline mode. The transport encodes the distinction as
// typed errors (api.ConnError vs api.StatusError) and the store branches on
// them explicitly.
//
// # Consistency
//
// The mirror is last-writer-wins and is not reconciled with the remote when
// connectivity returns. The next successful List call overwrites the mirror
// wholesale, which is the only resynchronization point. This is an accepted
// staleness window for a single-operator console, not a defect.
//
// # Offline identifiers
//
// Records created offline get a cryptographically random UUID, falling back
// to a timestamp-derived string when the random source is unavailable.
// Uniqueness under the fallback is best-effort.
package store
