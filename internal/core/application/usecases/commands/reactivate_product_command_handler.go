package commands

import (
	"context"
)

// ReactivateProductCommandHandler handles bringing products back into the
// catalog after deactivation.
type ReactivateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewReactivateProductCommandHandler creates a handler for product reactivation.
func NewReactivateProductCommandHandler(uowFactory ProductUoWFactory) ReactivateProductCommandHandler {
	return ReactivateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reactivation command.
func (h ReactivateProductCommandHandler) Handle(ctx context.Context, cmd ReactivateProductCommand) error {
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

	productRepo := uow.ProductRepository()

	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	aggregate.Reactivate()

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
