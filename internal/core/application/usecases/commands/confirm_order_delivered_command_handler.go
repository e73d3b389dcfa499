package commands

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/order"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/treasury"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
)

// ConfirmOrderDeliveredCommandHandler settles deliveries. Settlement is the
// only place stock ever decreases and the only source of sale entries in the
// treasury ledger, and all three effects - status flip, debits, ledger entry -
// commit atomically or not at all.
//
// Exactly-once is enforced twice over: the status flip is a compare-and-set
// that only one of two racing confirmations can win, and each stock debit is
// conditional on enough stock remaining. A failed debit rolls back the whole
// settlement, leaving the order undelivered.
type ConfirmOrderDeliveredCommandHandler struct {
	uowFactory SettlementUoWFactory
}

// NewConfirmOrderDeliveredCommandHandler creates a handler for delivery settlement.
// Requires a SettlementUoWFactory spanning orders, products and treasury.
func NewConfirmOrderDeliveredCommandHandler(uowFactory SettlementUoWFactory) ConfirmOrderDeliveredCommandHandler {
	return ConfirmOrderDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the settlement command.
// An already settled order fails with order.ErrOrderAlreadySettled; a debit
// outrun by concurrent settlements fails with product.InsufficientStockError
// and rolls everything back.
func (h ConfirmOrderDeliveredCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderDeliveredCommand) error {
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

	now := time.Now()
	if err = aggregate.Deliver(now); err != nil {
		return err
	}

	err = orderRepo.UpdateIfStatusIn(ctx, aggregate,
		order.Pending, order.Assigned, order.OutForDelivery, order.Cancelled)
	if err != nil {
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			return reconcileStaleStatus(ctx, orderRepo, cmd.Code(), err, func(fresh *order.Order) error {
				return fresh.Deliver(now)
			})
		}
		return err
	}

	if err = h.debitLines(ctx, uow, aggregate.Lines()); err != nil {
		return err
	}

	saleEntry, err := treasury.NewEntry(
		kernel.NewUUID(),
		treasury.KindSale,
		aggregate.Totals().Total(),
		aggregate.Code().String(),
		"",
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.TreasuryRepository().Add(ctx, saleEntry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// debitLines subtracts the snapshot quantities from stock. Lines are debited
// in product ID order so two settlements sharing products always lock rows
// in the same sequence.
func (h ConfirmOrderDeliveredCommandHandler) debitLines(
	ctx context.Context,
	uow SettlementUoW,
	lines []order.Line,
) error {
	sorted := make([]order.Line, len(lines))
	copy(sorted, lines)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ProductID().String() < sorted[j].ProductID().String()
	})

	productRepo := uow.ProductRepository()
	for _, line := range sorted {
		if err := productRepo.Debit(ctx, line.ProductID(), line.Qty()); err != nil {
			return err
		}
	}

	return nil
}
