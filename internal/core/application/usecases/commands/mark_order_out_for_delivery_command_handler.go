package commands

import (
	"context"
	"errors"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/order"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
)

// MarkOrderOutForDeliveryCommandHandler records courier departure. Guarded
// by the same status compare-and-set as every other transition.
type MarkOrderOutForDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderOutForDeliveryCommandHandler creates a handler for departure marking.
func NewMarkOrderOutForDeliveryCommandHandler(uowFactory OrderUoWFactory) MarkOrderOutForDeliveryCommandHandler {
	return MarkOrderOutForDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the departure command.
func (h MarkOrderOutForDeliveryCommandHandler) Handle(ctx context.Context, cmd MarkOrderOutForDeliveryCommand) error {
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

	if err = aggregate.StartDelivery(); err != nil {
		return err
	}

	if err = orderRepo.UpdateIfStatusIn(ctx, aggregate, order.Assigned); err != nil {
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			return reconcileStaleStatus(ctx, orderRepo, cmd.Code(), err, func(fresh *order.Order) error {
				return fresh.StartDelivery()
			})
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
