package commands

import (
	"errors"
	"strings"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a product to the catalog.
// Creation is idempotent on the name: submitting an existing name leaves the
// catalog untouched.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromString("2.50")
//	cmd, err := NewCreateProductCommand("Bouteille 1.0L", price, 50)
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
//
//	handler := NewCreateProductCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create product: %w", err)
//	}
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name     string
	price    kernel.Money
	stockQty int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog product.
// Validates that the name is non-empty, the price is a constructed Money,
// and the initial stock is not negative.
func NewCreateProductCommand(name string, price kernel.Money, stockQty int) (CreateProductCommand, error) {
	productCommand := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setName(name),
		productCommand.setPrice(price),
		productCommand.setStockQty(stockQty),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateProductCommandIsNotConstructed if validation fails.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Name returns the catalog name for the new product.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Price returns the unit price for the new product.
func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

// StockQty returns the initial stock quantity.
func (c CreateProductCommand) StockQty() int {
	return c.stockQty
}

func (c *CreateProductCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateProductCommand) setStockQty(stockQty int) error {
	if stockQty < 0 {
		return errs.NewValueIsInvalidError("stockQty")
	}

	c.stockQty = stockQty
	return nil
}
