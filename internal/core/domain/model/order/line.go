package order

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when using an improperly initialized Line.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one priced position on an order. Unlike a cart line it is a
// snapshot: the product name and unit price are copied from the catalog at
// commit time, so later catalog edits never change what an existing order
// says it sold.
type Line struct {
	// productID references the catalog product the snapshot was taken from
	productID kernel.UUID
	// name is the product name at commit time
	name string
	// unitPrice is the product price at commit time
	unitPrice kernel.Money
	// qty is the ordered unit count (always positive)
	qty int
	// guard ensures the line was properly constructed
	guard guard.ConstructorGuard
}

// NewLine creates an order line snapshot.
//
// Parameters:
//   - productID: Identifier of the source catalog product (must be valid UUID)
//   - name: Product name at commit time (must be non-blank)
//   - unitPrice: Product price at commit time (must be constructed)
//   - qty: Ordered unit count (must be positive)
//
// Returns:
//   - Line: The created line if all validations pass
//   - error: Validation error if any parameter is invalid
func NewLine(productID kernel.UUID, name string, unitPrice kernel.Money, qty int) (Line, error) {
	name = strings.TrimSpace(name)

	if err := errors.Join(
		productID.Validate(),
		requireText("name", name),
		unitPrice.Validate(),
		validateQty(qty),
	); err != nil {
		return Line{}, err
	}

	return Line{
		productID: productID,
		name:      name,
		unitPrice: unitPrice,
		qty:       qty,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// ProductID returns the source catalog product's identifier.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// Name returns the product name as it was at commit time.
func (l Line) Name() string {
	return l.name
}

// UnitPrice returns the product price as it was at commit time.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Qty returns the ordered unit count.
func (l Line) Qty() int {
	return l.qty
}

// Total returns unit price times quantity for this line.
func (l Line) Total() (kernel.Money, error) {
	return l.unitPrice.MulInt(l.qty)
}

// Validate checks if the Line was properly constructed.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// validateQty rejects non-positive unit counts.
func validateQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"qty",
			fmt.Errorf("%d is not greater than 0", qty),
		)
	}
	return nil
}
