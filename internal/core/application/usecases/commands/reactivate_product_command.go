package commands

import (
	"errors"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

var ErrReactivateProductCommandIsNotConstructed = errors.New(
	"ReactivateProductCommand must be created via NewReactivateProductCommand constructor",
)

// ReactivateProductCommand represents a request to make a previously
// deactivated product sellable again.
type ReactivateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReactivateProductCommand creates a command to reactivate a product.
func NewReactivateProductCommand(productID kernel.UUID) (ReactivateProductCommand, error) {
	reactivateCommand := ReactivateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := reactivateCommand.setProductID(productID); err != nil {
		return ReactivateProductCommand{}, err
	}

	return reactivateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReactivateProductCommand) Validate() error {
	return c.guard.Validate(ErrReactivateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to reactivate.
func (c ReactivateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *ReactivateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
