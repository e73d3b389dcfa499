package commands

import (
	"errors"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/order"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand represents a request to hand an order to a courier.
// Reassigning an already assigned order to someone else is allowed; an order
// further along its lifecycle is not.
//
// Example:
//
//	code, _ := order.CodeFromString("CMD-7KQ2ZD")
//	cmd, err := NewAssignOrderCommand(code, courierID)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment: %w", err)
//	}
//
//	handler := NewAssignOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to assign order: %w", err)
//	}
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	code      order.Code
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to assign an order to a courier.
// Validates the order code format and the courier identifier.
func NewAssignOrderCommand(code order.Code, courierID kernel.UUID) (AssignOrderCommand, error) {
	assignCommand := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setCode(code),
		assignCommand.setCourierID(courierID),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// Code returns the customer-facing code of the order to assign.
func (c AssignOrderCommand) Code() order.Code {
	return c.code
}

// CourierID returns the identity of the courier taking the order.
func (c AssignOrderCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *AssignOrderCommand) setCode(code order.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}

	c.code = code
	return nil
}

func (c *AssignOrderCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
