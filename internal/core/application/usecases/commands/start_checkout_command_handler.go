package commands

import (
	"context"
	"errors"
	"time"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/checkout"
	"github.com/bossnaboss212/dernier-occase/internal/core/ports"
)

// ErrCartIsEmpty is returned when checkout is attempted on an empty cart,
// either at session start or when the cart turns out to hold nothing
// sellable at commit time.
var ErrCartIsEmpty = errors.New("cart is empty")

// StartCheckoutCommandHandler opens checkout conversations. A session walks
// the customer through address, city, distance and promo before the order
// is priced and committed.
type StartCheckoutCommandHandler struct {
	cartStore    ports.CartStore
	sessionStore ports.CheckoutSessionStore
}

// NewStartCheckoutCommandHandler creates a handler for opening checkout sessions.
func NewStartCheckoutCommandHandler(
	cartStore ports.CartStore,
	sessionStore ports.CheckoutSessionStore,
) StartCheckoutCommandHandler {
	return StartCheckoutCommandHandler{
		cartStore:    cartStore,
		sessionStore: sessionStore,
	}
}

// Handle processes the checkout start command.
// Requires a non-empty cart; an existing session for the customer is
// replaced, so an abandoned conversation never blocks a new one.
func (h StartCheckoutCommandHandler) Handle(ctx context.Context, cmd StartCheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	currentCart, err := h.cartStore.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if currentCart.IsEmpty() {
		return ErrCartIsEmpty
	}

	session, err := checkout.NewSession(cmd.CustomerID(), time.Now())
	if err != nil {
		return err
	}

	return h.sessionStore.Save(ctx, session)
}
