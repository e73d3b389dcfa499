package commands

import (
	"errors"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

var ErrStartCheckoutCommandIsNotConstructed = errors.New(
	"StartCheckoutCommand must be created via NewStartCheckoutCommand constructor",
)

// StartCheckoutCommand represents a request to open a checkout conversation
// for the customer's current cart. A fresh session replaces any stale one.
type StartCheckoutCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartCheckoutCommand creates a command to open a checkout session.
func NewStartCheckoutCommand(customerID kernel.UUID) (StartCheckoutCommand, error) {
	checkoutCommand := StartCheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := checkoutCommand.setCustomerID(customerID); err != nil {
		return StartCheckoutCommand{}, err
	}

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c StartCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrStartCheckoutCommandIsNotConstructed)
}

// CustomerID returns the identity of the customer checking out.
func (c StartCheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *StartCheckoutCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
