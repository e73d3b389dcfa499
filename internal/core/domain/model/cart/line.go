package cart

import (
	"errors"
	"fmt"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when using an improperly initialized Line.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is a single cart entry: a product reference and the quantity the
// customer wants. Lines carry no price; prices are resolved from the catalog
// at checkout time.
type Line struct {
	// productID references the catalog product
	productID kernel.UUID
	// qty is how many units the customer wants (always positive)
	qty int
	// guard ensures the line was properly constructed
	guard guard.ConstructorGuard
}

// NewLine creates a cart line for the given product and quantity.
//
// Parameters:
//   - productID: Identifier of the catalog product (must be valid UUID)
//   - qty: Requested unit count (must be positive)
//
// Returns:
//   - Line: The created line if all validations pass
//   - error: Validation error if any parameter is invalid
func NewLine(productID kernel.UUID, qty int) (Line, error) {
	if err := productID.Validate(); err != nil {
		return Line{}, err
	}
	if qty <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"qty",
			fmt.Errorf("%d is not greater than 0", qty),
		)
	}

	return Line{
		productID: productID,
		qty:       qty,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// ProductID returns the referenced product's identifier.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// Qty returns the requested unit count.
func (l Line) Qty() int {
	return l.qty
}

// Validate checks if the Line was properly constructed.
//
// Returns:
//   - nil if the line is valid
//   - ErrLineIsNotConstructed if the line was not created via NewLine
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}
