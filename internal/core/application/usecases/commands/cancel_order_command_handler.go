package commands

import (
	"context"
	"errors"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/order"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
)

// CancelOrderCommandHandler handles pre-settlement cancellation. A settled
// order can no longer be cancelled; repeating a cancellation reports the
// order as already cancelled.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	err = orderRepo.UpdateIfStatusIn(ctx, aggregate,
		order.Pending, order.Assigned, order.OutForDelivery)
	if err != nil {
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			return reconcileStaleStatus(ctx, orderRepo, cmd.Code(), err, func(fresh *order.Order) error {
				return fresh.Cancel()
			})
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
