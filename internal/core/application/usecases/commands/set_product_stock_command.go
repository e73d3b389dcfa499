package commands

import (
	"errors"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

var ErrSetProductStockCommandIsNotConstructed = errors.New(
	"SetProductStockCommand must be created via NewSetProductStockCommand constructor",
)

// SetProductStockCommand represents a request to overwrite a product's stock
// with an absolute quantity, typically after a restock or an inventory count.
type SetProductStockCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	stockQty  int

	guard guard.ConstructorGuard
}

// NewSetProductStockCommand creates a command to replace a product's stock.
// Validates that the product ID is valid and the quantity is not negative.
func NewSetProductStockCommand(productID kernel.UUID, stockQty int) (SetProductStockCommand, error) {
	stockCommand := SetProductStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		stockCommand.setProductID(productID),
		stockCommand.setStockQty(stockQty),
	); err != nil {
		return SetProductStockCommand{}, err
	}

	return stockCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetProductStockCommand) Validate() error {
	return c.guard.Validate(ErrSetProductStockCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to restock.
func (c SetProductStockCommand) ProductID() kernel.UUID {
	return c.productID
}

// StockQty returns the absolute stock quantity to set.
func (c SetProductStockCommand) StockQty() int {
	return c.stockQty
}

func (c *SetProductStockCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *SetProductStockCommand) setStockQty(stockQty int) error {
	if stockQty < 0 {
		return errs.NewValueIsInvalidError("stockQty")
	}

	c.stockQty = stockQty
	return nil
}
