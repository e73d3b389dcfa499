package commands

import (
	"context"
)

// SetProductPriceCommandHandler handles price changes on catalog products.
type SetProductPriceCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewSetProductPriceCommandHandler creates a handler for price changes.
func NewSetProductPriceCommandHandler(uowFactory ProductUoWFactory) SetProductPriceCommandHandler {
	return SetProductPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the price change command.
// Loads the product, applies the new price, and persists the change.
func (h SetProductPriceCommandHandler) Handle(ctx context.Context, cmd SetProductPriceCommand) error {
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

	if err = aggregate.SetPrice(cmd.Price()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
