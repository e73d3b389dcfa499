package commands

import (
	"context"
	"fmt"

	"github.com/bossnaboss212/dernier-occase/internal/core/ports"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
)

// AddCartItemCommandHandler handles adding items to customer carts.
// The product must exist and be active at the moment of adding; this is an
// advisory check only, stock is verified again at checkout and debited at
// settlement.
type AddCartItemCommandHandler struct {
	uowFactory ProductUoWFactory
	cartStore  ports.CartStore
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
// Requires a ProductUoWFactory for the catalog lookup and the CartStore
// holding conversational cart state.
func NewAddCartItemCommandHandler(
	uowFactory ProductUoWFactory,
	cartStore ports.CartStore,
) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
		cartStore:  cartStore,
	}
}

// Handle processes the cart addition command.
// Rejects unknown products with a not-found error and inactive products with
// an invalid-value error, then records the line in the cart store.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
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

	aggregate, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if !aggregate.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"productID",
			fmt.Errorf("product %q is not available", aggregate.Name()),
		)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.cartStore.AddItem(ctx, cmd.CustomerID(), cmd.ProductID(), cmd.Qty())
}
