package order

import (
	"errors"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

// ErrTotalsAreNotConstructed is returned when using improperly initialized Totals.
var ErrTotalsAreNotConstructed = errors.New("Totals must be created via NewTotals constructor")

// Totals is the priced summary of an order. The grand total is derived,
// never passed in: total = max(0, subtotal - discount) + deliveryFee.
// The discount may exceed the subtotal; the goods part then clamps at zero
// but the delivery fee is always charged in full.
type Totals struct {
	// subtotal is the sum of all line totals before any discount
	subtotal kernel.Money
	// discount is the configured discount amount, recorded unclamped
	discount kernel.Money
	// deliveryFee is the zone fee resolved from the schedule
	deliveryFee kernel.Money
	// total is the amount of cash the courier collects
	total kernel.Money
	// guard ensures the totals were properly constructed
	guard guard.ConstructorGuard
}

// NewTotals computes an order's priced summary.
//
// Parameters:
//   - subtotal: Sum of all line totals (must be constructed)
//   - discount: Discount amount to subtract (must be constructed; may exceed
//     the subtotal, in which case the goods part clamps at zero)
//   - deliveryFee: Zone fee to add on top (must be constructed)
//
// Returns:
//   - Totals: The computed summary including the derived grand total
//   - error: Validation error if any amount is invalid
func NewTotals(subtotal, discount, deliveryFee kernel.Money) (Totals, error) {
	if err := errors.Join(
		subtotal.Validate(),
		discount.Validate(),
		deliveryFee.Validate(),
	); err != nil {
		return Totals{}, err
	}

	discounted, err := subtotal.SubOrZero(discount)
	if err != nil {
		return Totals{}, err
	}

	total, err := discounted.Add(deliveryFee)
	if err != nil {
		return Totals{}, err
	}

	return Totals{
		subtotal:    subtotal,
		discount:    discount,
		deliveryFee: deliveryFee,
		total:       total,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Subtotal returns the sum of all line totals before any discount.
func (t Totals) Subtotal() kernel.Money {
	return t.subtotal
}

// Discount returns the recorded discount amount.
func (t Totals) Discount() kernel.Money {
	return t.discount
}

// DeliveryFee returns the zone fee.
func (t Totals) DeliveryFee() kernel.Money {
	return t.deliveryFee
}

// Total returns the amount of cash the courier collects.
func (t Totals) Total() kernel.Money {
	return t.total
}

// Validate checks if the Totals were properly constructed.
func (t Totals) Validate() error {
	return t.guard.Validate(ErrTotalsAreNotConstructed)
}
