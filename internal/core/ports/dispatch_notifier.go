package ports

import (
	"context"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/order"
)

// DispatchNotifier pushes a notice about a freshly committed order to the
// fulfilment side. Delivery is at-least-once and must never fail the
// commit that produced the order: implementations queue and retry rather
// than propagate transient transport errors.
type DispatchNotifier interface {
	NotifyNewOrder(ctx context.Context, notice order.DispatchNotice) error
}
