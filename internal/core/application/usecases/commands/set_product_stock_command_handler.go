package commands

import (
	"context"
)

// SetProductStockCommandHandler handles stock replacement on catalog products.
// The new quantity is absolute; concurrent settlements debit from whatever
// value ends up committed last.
type SetProductStockCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewSetProductStockCommandHandler creates a handler for stock replacement.
func NewSetProductStockCommandHandler(uowFactory ProductUoWFactory) SetProductStockCommandHandler {
	return SetProductStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stock replacement command.
func (h SetProductStockCommandHandler) Handle(ctx context.Context, cmd SetProductStockCommand) error {
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

	if err = aggregate.SetStock(cmd.StockQty()); err != nil {
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
