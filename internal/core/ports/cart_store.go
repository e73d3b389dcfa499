// Package ports defines the contracts between the application core and
// infrastructure: repositories for persisted aggregates, in-memory stores
// for conversational state, the role directory, and the dispatch notifier.
// These interfaces establish dependency inversion and keep command and
// query handlers testable.
package ports

import (
	"context"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/cart"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
)

// CartStore holds each customer's cart. Carts are conversational state:
// they live in memory and do not survive a process restart.
//
// Mutations go through the store rather than through a load-modify-save
// cycle so that two concurrent adds from the same customer can never lose
// a line.
type CartStore interface {
	// Get retrieves a snapshot of the customer's cart. A customer who
	// never added anything gets a fresh empty cart, never an error.
	// The returned cart is a copy; mutating it does not affect the store.
	Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)

	// AddItem puts qty units of a product into the customer's cart,
	// accumulating onto an existing line for the same product.
	AddItem(ctx context.Context, customerID, productID kernel.UUID, qty int) error

	// Clear drops the customer's cart entirely.
	Clear(ctx context.Context, customerID kernel.UUID) error
}
