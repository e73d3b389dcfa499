package ports

import (
	"context"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates.
//
// Status transitions never go through a blind write: UpdateIfStatusIn
// performs a compare-and-set on the status column so that two staff
// members racing on the same order cannot both win.
type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateIfStatusIn writes the aggregate's mutable fields (status,
	// courier, delivery timestamp) only while the stored status is still
	// one of current. When the row has moved on, no write happens and the
	// call fails with errs.ErrVersionIsInvalid; the caller should reload
	// and re-run the domain transition to surface the precise conflict.
	// The priced snapshot (lines, totals, destination) is immutable and
	// is never rewritten.
	UpdateIfStatusIn(ctx context.Context, aggregate *order.Order, current ...order.Status) error

	Get(ctx context.Context, orderID kernel.UUID) (*order.Order, error)
	GetByCode(ctx context.Context, code order.Code) (*order.Order, error)
	ExistsWithCode(ctx context.Context, code order.Code) (bool, error)

	// CountDeliveredForCustomer reports how many of the customer's orders
	// have been delivered. Feeds the loyalty rank at pricing time.
	CountDeliveredForCustomer(ctx context.Context, customerID kernel.UUID) (int, error)
}
