package services

import (
	"errors"
	"time"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/checkout"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/order"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/pricing"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/product"
)

// ErrNoSellableProducts is returned when, after dropping inactive products,
// nothing remains to put on the order. The cart may still hold lines; they
// just no longer resolve to anything sellable.
var ErrNoSellableProducts = errors.New("no sellable products to order")

// PickedProduct pairs a resolved catalog product with the quantity the
// customer wants. The caller resolves cart lines against the catalog and
// drops lines whose product no longer exists; everything else is decided
// here.
type PickedProduct struct {
	Product *product.Product
	Qty     int
}

// OrderAssembler is a domain service that turns a completed checkout
// conversation plus the customer's picks into a priced Order aggregate.
//
// Key responsibilities:
//   - Dropping picks whose product has been deactivated
//   - Verifying advisory stock coverage for every remaining pick
//   - Snapshotting names and prices into order lines
//   - Resolving the delivery fee from the schedule and the discount from
//     the policy
//
// Business rules:
//   - At least one sellable pick must remain or assembly fails
//   - The promo code is recorded on the order only when it matched
//   - total = max(0, subtotal - discount) + deliveryFee
//
// The assembler is pure: it never touches storage, so the full pricing
// path is unit-testable with plain domain values.
type OrderAssembler struct{}

// NewOrderAssembler creates a new OrderAssembler instance.
func NewOrderAssembler() OrderAssembler {
	return OrderAssembler{}
}

// Assemble builds a priced, pending Order from a ready checkout session.
//
// Parameters:
//   - id: Identifier for the new order
//   - code: Pre-generated order code (uniqueness checked by the caller)
//   - customerID: The buying customer
//   - picks: Resolved cart lines (product + quantity)
//   - ready: The completed checkout conversation (address, city, distance, promo)
//   - orderRank: 1-based rank this order would take among the customer's
//     delivered orders; feeds the loyalty rule
//   - schedule: Current fee schedule
//   - policy: Current discount policy
//   - createdAt: Commit timestamp
//
// Returns:
//   - *order.Order: The assembled pending order
//   - error: ErrNoSellableProducts if nothing sellable remains,
//     *product.InsufficientStockError if a pick exceeds available stock,
//     pricing.ErrZoneNotCovered if the destination is out of range,
//     or a validation error from the underlying constructors
func (a OrderAssembler) Assemble(
	id kernel.UUID,
	code order.Code,
	customerID kernel.UUID,
	picks []PickedProduct,
	ready checkout.Ready,
	orderRank int,
	schedule *pricing.Schedule,
	policy pricing.DiscountPolicy,
	createdAt time.Time,
) (*order.Order, error) {
	if err := errors.Join(schedule.Validate(), policy.Validate()); err != nil {
		return nil, err
	}

	lines, subtotal, err := a.priceLines(picks)
	if err != nil {
		return nil, err
	}

	deliveryFee, err := schedule.FeeFor(ready.City, ready.Distance)
	if err != nil {
		return nil, err
	}

	discount, err := policy.DiscountFor(ready.PromoCode, orderRank)
	if err != nil {
		return nil, err
	}

	totals, err := order.NewTotals(subtotal, discount, deliveryFee)
	if err != nil {
		return nil, err
	}

	destination, err := order.NewDestination(ready.Address, ready.City, ready.Distance)
	if err != nil {
		return nil, err
	}

	appliedPromo := ""
	if policy.MatchesPromo(ready.PromoCode) {
		appliedPromo = ready.PromoCode
	}

	return order.NewOrder(id, code, customerID, destination, appliedPromo, lines, totals, createdAt)
}

// priceLines drops inactive products, checks stock coverage, and snapshots
// the survivors into order lines, accumulating the subtotal.
func (a OrderAssembler) priceLines(picks []PickedProduct) ([]order.Line, kernel.Money, error) {
	if len(picks) == 0 {
		return nil, kernel.Money{}, ErrNoSellableProducts
	}

	lines := make([]order.Line, 0, len(picks))
	subtotal := kernel.ZeroMoney()

	for _, pick := range picks {
		if err := pick.Product.Validate(); err != nil {
			return nil, kernel.Money{}, err
		}
		if !pick.Product.IsActive() {
			continue
		}

		if err := pick.Product.CanFulfil(pick.Qty); err != nil {
			return nil, kernel.Money{}, err
		}

		line, err := order.NewLine(pick.Product.ID(), pick.Product.Name(), pick.Product.Price(), pick.Qty)
		if err != nil {
			return nil, kernel.Money{}, err
		}

		lineTotal, err := line.Total()
		if err != nil {
			return nil, kernel.Money{}, err
		}
		subtotal, err = subtotal.Add(lineTotal)
		if err != nil {
			return nil, kernel.Money{}, err
		}

		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return nil, kernel.Money{}, ErrNoSellableProducts
	}

	return lines, subtotal, nil
}
