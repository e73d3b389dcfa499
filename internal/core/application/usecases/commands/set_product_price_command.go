package commands

import (
	"errors"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

var ErrSetProductPriceCommandIsNotConstructed = errors.New(
	"SetProductPriceCommand must be created via NewSetProductPriceCommand constructor",
)

// SetProductPriceCommand represents a request to change a product's unit
// price. Orders already committed keep the price captured in their snapshot.
type SetProductPriceCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	price     kernel.Money

	guard guard.ConstructorGuard
}

// NewSetProductPriceCommand creates a command to change a product's price.
// Validates that the product ID is valid and the price is a constructed Money.
func NewSetProductPriceCommand(productID kernel.UUID, price kernel.Money) (SetProductPriceCommand, error) {
	priceCommand := SetProductPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		priceCommand.setProductID(productID),
		priceCommand.setPrice(price),
	); err != nil {
		return SetProductPriceCommand{}, err
	}

	return priceCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetProductPriceCommand) Validate() error {
	return c.guard.Validate(ErrSetProductPriceCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to reprice.
func (c SetProductPriceCommand) ProductID() kernel.UUID {
	return c.productID
}

// Price returns the new unit price.
func (c SetProductPriceCommand) Price() kernel.Money {
	return c.price
}

func (c *SetProductPriceCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *SetProductPriceCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}
