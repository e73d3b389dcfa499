package commands

import (
	"errors"
	"fmt"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand represents a request to put a quantity of a product
// into a customer's cart. Repeating a product accumulates onto the existing
// line rather than duplicating it.
//
// Example:
//
//	cmd, err := NewAddCartItemCommand(customerID, productID, 2)
//	if err != nil {
//	    return fmt.Errorf("invalid cart item: %w", err)
//	}
//
//	handler := NewAddCartItemCommandHandler(uowFactory, cartStore)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add item: %w", err)
//	}
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	productID  kernel.UUID
	qty        int

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add an item to a cart.
// Validates both identifiers and requires a positive quantity.
func NewAddCartItemCommand(customerID, productID kernel.UUID, qty int) (AddCartItemCommand, error) {
	itemCommand := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setCustomerID(customerID),
		itemCommand.setProductID(productID),
		itemCommand.setQty(qty),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// CustomerID returns the identity of the cart owner.
func (c AddCartItemCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ProductID returns the product to add.
func (c AddCartItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// Qty returns the quantity to add.
func (c AddCartItemCommand) Qty() int {
	return c.qty
}

func (c *AddCartItemCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddCartItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddCartItemCommand) setQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"qty",
			fmt.Errorf("%d is not greater than 0", qty),
		)
	}

	c.qty = qty
	return nil
}
