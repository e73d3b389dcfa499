package ports

import (
	"context"
	"time"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/checkout"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
)

// CheckoutSessionStore holds in-flight checkout sessions, at most one per
// customer. Like carts, sessions are conversational state kept in memory.
//
// Only incomplete sessions are ever stored: a session that reaches its
// final step is committed or discarded in the same request, so Get never
// returns a completed one.
type CheckoutSessionStore interface {
	// Get returns the customer's active session, or errs.ErrObjectNotFound
	// when none is in flight.
	Get(ctx context.Context, customerID kernel.UUID) (*checkout.Session, error)

	// Save stores the session, replacing any previous one for the same
	// customer.
	Save(ctx context.Context, session *checkout.Session) error

	// Delete discards the customer's session. Deleting an absent session
	// is not an error.
	Delete(ctx context.Context, customerID kernel.UUID) error

	// DeleteIdleBefore drops every session whose last activity predates
	// cutoff and reports how many were dropped. The abandoned customers'
	// carts are left alone.
	DeleteIdleBefore(ctx context.Context, cutoff time.Time) (int, error)
}
