package commands

import (
	"context"
	"errors"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/order"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
)

// AssignOrderCommandHandler handles courier assignment. The write is guarded
// by a status compare-and-set, so assignment cannot resurrect an order that
// a concurrent settlement or cancellation moved on.
type AssignOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignOrderCommandHandler creates a handler for courier assignment.
func NewAssignOrderCommandHandler(uowFactory OrderUoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
// Loads the order by code, applies the assignment, and persists it while the
// stored status still allows assigning. On a lost race the precise conflict
// is surfaced instead of the raw write failure.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetByCode(ctx, cmd.Code())
	if err != nil {
		return err
	}

	if err = aggregate.Assign(cmd.CourierID()); err != nil {
		return err
	}

	if err = orderRepo.UpdateIfStatusIn(ctx, aggregate, order.Pending, order.Assigned); err != nil {
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			return reconcileStaleStatus(ctx, orderRepo, cmd.Code(), err, func(fresh *order.Order) error {
				return fresh.Assign(cmd.CourierID())
			})
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
