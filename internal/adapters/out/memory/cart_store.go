// Package memory holds the process-local adapters for conversational state:
// carts, checkout sessions, and the role directory. Nothing here survives a
// restart; the database keeps only committed facts.
package memory

import (
	"context"
	"sync"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/cart"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
)

// InMemoryCartStore keeps one cart per customer behind a mutex. Mutations
// happen inside the lock, so two concurrent adds from the same customer
// both land instead of one overwriting the other.
type InMemoryCartStore struct {
	mu    sync.RWMutex
	carts map[kernel.UUID]*cart.Cart
}

// NewInMemoryCartStore creates an empty cart store.
func NewInMemoryCartStore() *InMemoryCartStore {
	return &InMemoryCartStore{carts: make(map[kernel.UUID]*cart.Cart)}
}

// Get returns a snapshot of the customer's cart. Customers without a cart
// get a fresh empty one. The snapshot is independent of the stored cart;
// mutating it changes nothing in the store.
func (s *InMemoryCartStore) Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	stored, found := s.carts[customerID]
	s.mu.RUnlock()

	if !found {
		return cart.NewCart(customerID)
	}

	return cart.RestoreCart(customerID, stored.Lines())
}

// AddItem puts qty units of a product into the customer's cart, creating
// the cart on first use.
func (s *InMemoryCartStore) AddItem(
	ctx context.Context,
	customerID, productID kernel.UUID,
	qty int,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, found := s.carts[customerID]
	if !found {
		created, err := cart.NewCart(customerID)
		if err != nil {
			return err
		}
		stored = created
	}

	if err := stored.AddItem(productID, qty); err != nil {
		return err
	}

	s.carts[customerID] = stored
	return nil
}

// Clear drops the customer's cart entirely. Clearing an absent cart is not
// an error.
func (s *InMemoryCartStore) Clear(ctx context.Context, customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.carts, customerID)
	s.mu.Unlock()

	return nil
}
