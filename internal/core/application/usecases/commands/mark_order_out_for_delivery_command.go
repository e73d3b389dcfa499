package commands

import (
	"errors"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/order"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

var ErrMarkOrderOutForDeliveryCommandIsNotConstructed = errors.New(
	"MarkOrderOutForDeliveryCommand must be created via NewMarkOrderOutForDeliveryCommand constructor",
)

// MarkOrderOutForDeliveryCommand represents a request to record that the
// courier has left with the order. Only assigned orders can go out.
type MarkOrderOutForDeliveryCommand struct { //nolint:recvcheck //using for validation
	code order.Code

	guard guard.ConstructorGuard
}

// NewMarkOrderOutForDeliveryCommand creates a command to mark an order out
// for delivery.
func NewMarkOrderOutForDeliveryCommand(code order.Code) (MarkOrderOutForDeliveryCommand, error) {
	outCommand := MarkOrderOutForDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := outCommand.setCode(code); err != nil {
		return MarkOrderOutForDeliveryCommand{}, err
	}

	return outCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderOutForDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderOutForDeliveryCommandIsNotConstructed)
}

// Code returns the customer-facing code of the departing order.
func (c MarkOrderOutForDeliveryCommand) Code() order.Code {
	return c.code
}

func (c *MarkOrderOutForDeliveryCommand) setCode(code order.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}

	c.code = code
	return nil
}
