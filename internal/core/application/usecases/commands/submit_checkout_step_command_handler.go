package commands

import (
	"context"
	"errors"
	"time"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/checkout"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/order"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/pricing"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/services"
	"github.com/bossnaboss212/dernier-occase/internal/core/ports"
)

// maxCodeAttempts bounds the retry loop for order code generation. The code
// space is large enough that hitting the bound means something is broken.
const maxCodeAttempts = 10

// ErrCodeGenerationFailed is returned when no unused order code could be
// found within maxCodeAttempts draws.
var ErrCodeGenerationFailed = errors.New("failed to generate a unique order code")

// CommittedOrder summarizes an order created by a checkout commit, for
// confirmation back to the customer.
type CommittedOrder struct {
	OrderID     kernel.UUID
	Code        string
	Subtotal    kernel.Money
	Discount    kernel.Money
	DeliveryFee kernel.Money
	Total       kernel.Money
}

// SubmitCheckoutStepResult reports where the conversation stands after an
// answer: the stage now waiting for input, and the committed order when the
// answer completed the conversation.
type SubmitCheckoutStepResult struct {
	Step      checkout.Step
	Committed *CommittedOrder
}

// SubmitCheckoutStepCommandHandler drives the checkout conversation. Answers
// advance the session stage by stage; the final answer triggers the commit,
// which prices the cart, persists the order and notifies dispatch.
//
// Commit outcomes:
//   - success: the order is stored pending, the cart is cleared, the session
//     is discarded, and a dispatch notice goes out at-least-once
//   - failure (insufficient stock, uncovered zone, nothing sellable): the
//     session is discarded but the cart is kept, so the customer can adjust
//     and try again
//
// A rejected mid-conversation answer leaves the session where it was.
type SubmitCheckoutStepCommandHandler struct {
	uowFactory   CheckoutUoWFactory
	cartStore    ports.CartStore
	sessionStore ports.CheckoutSessionStore
	policy       pricing.DiscountPolicy
	notifier     ports.DispatchNotifier
	assembler    services.OrderAssembler
}

// NewSubmitCheckoutStepCommandHandler creates a handler for checkout answers.
// Requires a CheckoutUoWFactory for the commit transaction, the two
// conversational stores, the configured discount policy, and the dispatch
// notifier.
func NewSubmitCheckoutStepCommandHandler(
	uowFactory CheckoutUoWFactory,
	cartStore ports.CartStore,
	sessionStore ports.CheckoutSessionStore,
	policy pricing.DiscountPolicy,
	notifier ports.DispatchNotifier,
) SubmitCheckoutStepCommandHandler {
	return SubmitCheckoutStepCommandHandler{
		uowFactory:   uowFactory,
		cartStore:    cartStore,
		sessionStore: sessionStore,
		policy:       policy,
		notifier:     notifier,
		assembler:    services.NewOrderAssembler(),
	}
}

// Handle processes one checkout answer.
// Returns the next stage, or the committed order summary when the answer
// was the last one. A customer without an active session gets a not-found
// error.
func (h SubmitCheckoutStepCommandHandler) Handle(
	ctx context.Context,
	cmd SubmitCheckoutStepCommand,
) (SubmitCheckoutStepResult, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitCheckoutStepResult{}, err
	}

	session, err := h.sessionStore.Get(ctx, cmd.CustomerID())
	if err != nil {
		return SubmitCheckoutStepResult{}, err
	}

	now := time.Now()
	if err = session.Submit(cmd.Input(), now); err != nil {
		return SubmitCheckoutStepResult{}, err
	}

	ready, complete := session.State().(checkout.Ready)
	if !complete {
		if err = h.sessionStore.Save(ctx, session); err != nil {
			return SubmitCheckoutStepResult{}, err
		}
		return SubmitCheckoutStepResult{Step: session.State().Step()}, nil
	}

	// The conversation is over either way: a completed session never goes
	// back into the store. On commit failure the cart survives untouched.
	committed, err := h.commit(ctx, cmd.CustomerID(), ready, now)
	_ = h.sessionStore.Delete(ctx, cmd.CustomerID())
	if err != nil {
		return SubmitCheckoutStepResult{}, err
	}

	return SubmitCheckoutStepResult{Step: checkout.StepReady, Committed: committed}, nil
}

// commit prices the cart against the live catalog and fee schedule and
// persists the resulting order, all inside one transaction. The advisory
// stock check runs here; the authoritative debit happens at settlement.
func (h SubmitCheckoutStepCommandHandler) commit(
	ctx context.Context,
	customerID kernel.UUID,
	ready checkout.Ready,
	now time.Time,
) (*CommittedOrder, error) {
	currentCart, err := h.cartStore.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if currentCart.IsEmpty() {
		return nil, ErrCartIsEmpty
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	orderRepo := uow.OrderRepository()

	schedule, err := uow.FeeScheduleRepository().Get(ctx)
	if err != nil {
		return nil, err
	}

	picks := make([]services.PickedProduct, 0, len(currentCart.Lines()))
	for _, line := range currentCart.Lines() {
		picked, getErr := productRepo.Get(ctx, line.ProductID())
		if getErr != nil {
			return nil, getErr
		}
		picks = append(picks, services.PickedProduct{Product: picked, Qty: line.Qty()})
	}

	orderRank := 0
	if h.policy.LoyaltyEnabled() {
		delivered, countErr := orderRepo.CountDeliveredForCustomer(ctx, customerID)
		if countErr != nil {
			return nil, countErr
		}
		orderRank = delivered + 1
	}

	code, err := h.drawUnusedCode(ctx, orderRepo)
	if err != nil {
		return nil, err
	}

	newOrder, err := h.assembler.Assemble(
		kernel.NewUUID(), code, customerID, picks, ready, orderRank, schedule, h.policy, now,
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.cartStore.Clear(ctx, customerID)

	// At-least-once, never fatal: the notifier queues and retries on its
	// own, a lost notice must not undo a committed order.
	_ = h.notifier.NotifyNewOrder(ctx, newOrder.DispatchNotice())

	totals := newOrder.Totals()
	return &CommittedOrder{
		OrderID:     newOrder.ID(),
		Code:        newOrder.Code().String(),
		Subtotal:    totals.Subtotal(),
		Discount:    totals.Discount(),
		DeliveryFee: totals.DeliveryFee(),
		Total:       totals.Total(),
	}, nil
}

// drawUnusedCode generates order codes until one misses the existing set.
// Codes are short for the customer's sake, so collisions are rare but real.
func (h SubmitCheckoutStepCommandHandler) drawUnusedCode(
	ctx context.Context,
	orderRepo ports.OrderRepository,
) (order.Code, error) {
	for range maxCodeAttempts {
		code := order.GenerateCode()

		exists, err := orderRepo.ExistsWithCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}

	return "", ErrCodeGenerationFailed
}
