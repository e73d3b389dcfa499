package commands

import (
	"context"
)

// DeactivateProductCommandHandler handles hiding products from the catalog.
// Deactivating an already inactive product is a harmless no-op.
type DeactivateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewDeactivateProductCommandHandler creates a handler for product deactivation.
func NewDeactivateProductCommandHandler(uowFactory ProductUoWFactory) DeactivateProductCommandHandler {
	return DeactivateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deactivation command.
func (h DeactivateProductCommandHandler) Handle(ctx context.Context, cmd DeactivateProductCommand) error {
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

	aggregate.Deactivate()

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
