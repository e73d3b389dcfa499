package commands

import (
	"context"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/order"
	"github.com/bossnaboss212/dernier-occase/internal/core/ports"
)

// reconcileStaleStatus turns a compare-and-set miss into the precise domain
// error. The miss means a concurrent transition won and is committed, so the
// order is reloaded and the attempted transition re-run against the fresh
// state; the transition's own error (already settled, already cancelled,
// wrong status) is what the caller should see. The CAS error itself is
// returned only in the unexpected case that the transition now succeeds.
func reconcileStaleStatus(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	code order.Code,
	casErr error,
	transition func(*order.Order) error,
) error {
	fresh, err := orderRepo.GetByCode(ctx, code)
	if err != nil {
		return err
	}

	if err = transition(fresh); err != nil {
		return err
	}

	return casErr
}
