// Package sellermap provides the in-memory identity resolution map
// associating an item with the user who listed it.
//
// The map exists because earlier Listing service API shapes do not track
// ownership; the gateway is the only component that knows the creating
// user's identity at item creation. It is strictly a compatibility shim:
// whenever the backend record carries its own owner, the backend value
// wins. Entries live for the process lifetime and are never evicted, an
// accepted staleness and memory-growth tradeoff for this shim.
package sellermap

import (
	"sync"

	"github.com/google/uuid"

	"bazaar/internal/errors"
)

// ErrSellerUnresolved is returned by Resolve when neither the backend nor
// the registry knows the item's seller.
var ErrSellerUnresolved = errors.New("seller identity unresolved for item")

// Registry is a concurrency-safe item -> seller mapping. The zero value is
// not usable; construct it with New so fx can inject a single instance.
type Registry struct {
	mu      sync.RWMutex
	sellers map[uuid.UUID]uuid.UUID
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		sellers: make(map[uuid.UUID]uuid.UUID),
	}
}

// Record associates an item with its seller, overwriting any previous entry.
func (r *Registry) Record(itemID, sellerID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sellers[itemID] = sellerID
}

// Lookup returns the recorded seller for an item, if any.
func (r *Registry) Lookup(itemID uuid.UUID) (uuid.UUID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sellerID, ok := r.sellers[itemID]

	return sellerID, ok
}

// Resolve returns the item's seller identity. The authoritative owner from
// the backend record wins when present (non-nil UUID); otherwise the
// recorded mapping is used; otherwise ErrSellerUnresolved.
func (r *Registry) Resolve(itemID, authoritative uuid.UUID) (uuid.UUID, error) {
	if authoritative != uuid.Nil {
		return authoritative, nil
	}

	if sellerID, ok := r.Lookup(itemID); ok {
		return sellerID, nil
	}

	return uuid.Nil, errors.Wrapf(ErrSellerUnresolved, "item %s", itemID)
}

// Len reports the number of recorded mappings.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sellers)
}
