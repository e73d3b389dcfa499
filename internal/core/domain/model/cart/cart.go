package cart

import (
	"errors"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
)

// ErrCartIsNotConstructed is returned when using an improperly initialized Cart.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

// Cart accumulates the products a customer has picked before checkout.
// It is an aggregate root identified by the owning customer: each customer
// has at most one cart at a time.
//
// Business rules:
//   - Adding a product that is already in the cart increases that line's
//     quantity instead of appending a duplicate line
//   - Quantities are always positive; a line never reaches zero
//   - Clearing the cart removes every line at once
//
// The cart holds product references only. Availability, pricing, and
// active-status checks happen at checkout, against the catalog as it is
// at that moment.
type Cart struct {
	// customerID identifies the owning customer
	customerID kernel.UUID
	// lines are the picked products in insertion order
	lines []Line
	// isConstructed ensures the cart was created via NewCart or RestoreCart
	isConstructed bool
}

// NewCart creates an empty cart for the given customer.
//
// Parameters:
//   - customerID: Identifier of the owning customer (must be valid UUID)
//
// Returns:
//   - *Cart: The created empty cart
//   - error: Validation error if the customer ID is invalid
func NewCart(customerID kernel.UUID) (*Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	return &Cart{
		customerID:    customerID,
		isConstructed: true,
	}, nil
}

// RestoreCart reconstructs a cart from persisted state.
//
// Parameters:
//   - customerID: Identifier of the owning customer
//   - lines: Previously stored cart lines
//
// Returns:
//   - *Cart: The restored cart
//   - error: Validation error if the customer ID or any line is invalid
func RestoreCart(customerID kernel.UUID, lines []Line) (*Cart, error) {
	cart, err := NewCart(customerID)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}

	cart.lines = append(cart.lines, lines...)
	return cart, nil
}

// Validate ensures the Cart instance was properly constructed.
//
// Returns:
//   - nil if the cart is valid
//   - ErrCartIsNotConstructed otherwise
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}

	return nil
}

// CustomerID returns the owning customer's identifier.
func (c *Cart) CustomerID() kernel.UUID {
	return c.customerID
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// AddItem puts qty units of a product into the cart. If the product is
// already present the existing line's quantity grows by qty; otherwise a
// new line is appended.
//
// Parameters:
//   - productID: Identifier of the catalog product
//   - qty: Unit count to add (must be positive)
//
// Returns:
//   - error: Validation error if the product ID or quantity is invalid
func (c *Cart) AddItem(productID kernel.UUID, qty int) error {
	if err := c.Validate(); err != nil {
		return err
	}

	for i, line := range c.lines {
		if line.ProductID().IsEqual(productID) {
			merged, err := NewLine(productID, line.Qty()+qty)
			if err != nil {
				return err
			}

			c.lines[i] = merged
			return nil
		}
	}

	line, err := NewLine(productID, qty)
	if err != nil {
		return err
	}

	c.lines = append(c.lines, line)
	return nil
}

// Clear removes every line from the cart.
func (c *Cart) Clear() {
	c.lines = nil
}
