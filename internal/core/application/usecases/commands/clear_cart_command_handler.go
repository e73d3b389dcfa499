package commands

import (
	"context"

	"github.com/bossnaboss212/dernier-occase/internal/core/ports"
)

// ClearCartCommandHandler handles emptying customer carts.
type ClearCartCommandHandler struct {
	cartStore ports.CartStore
}

// NewClearCartCommandHandler creates a handler for cart clearing.
func NewClearCartCommandHandler(cartStore ports.CartStore) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		cartStore: cartStore,
	}
}

// Handle processes the cart clearing command.
func (h ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.cartStore.Clear(ctx, cmd.CustomerID())
}
