package commands

import (
	"errors"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/order"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an order before
// settlement. Cancellation has no stock or treasury effect: nothing was
// debited yet, so there is nothing to put back.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	code order.Code

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(code order.Code) (CancelOrderCommand, error) {
	cancelCommand := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cancelCommand.setCode(code); err != nil {
		return CancelOrderCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// Code returns the customer-facing code of the order to cancel.
func (c CancelOrderCommand) Code() order.Code {
	return c.code
}

func (c *CancelOrderCommand) setCode(code order.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}

	c.code = code
	return nil
}
