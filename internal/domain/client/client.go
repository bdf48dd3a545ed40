// Package client defines the interfaces the gateway uses to talk to the
// three backend services. Concrete HTTP adapters live under
// internal/infra/backend; use cases depend only on these interfaces.
package client

import "bazaar/internal/errors"

// Sentinel errors shared by all backend clients. Adapters must keep the
// not-found / conflict / unavailable distinction intact because callers
// branch on it.
var (
	// ErrNotFound is returned when the backend answers 404 for the entity.
	ErrNotFound = errors.New("entity not found at backend")

	// ErrConflict is returned when the backend answers 409, e.g. a lost
	// wallet-creation race.
	ErrConflict = errors.New("backend reported a conflict")
)
