package commands

import (
	"errors"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/order"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

var ErrConfirmOrderDeliveredCommandIsNotConstructed = errors.New(
	"ConfirmOrderDeliveredCommand must be created via NewConfirmOrderDeliveredCommand constructor",
)

// ConfirmOrderDeliveredCommand represents a request to settle an order: cash
// was collected at the door, so the order is final, the snapshot quantities
// leave stock, and the sale lands in the treasury ledger.
//
// Example:
//
//	code, _ := order.CodeFromString("CMD-7KQ2ZD")
//	cmd, err := NewConfirmOrderDeliveredCommand(code)
//	if err != nil {
//	    return fmt.Errorf("invalid settlement request: %w", err)
//	}
//
//	handler := NewConfirmOrderDeliveredCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to settle order: %w", err)
//	}
type ConfirmOrderDeliveredCommand struct { //nolint:recvcheck //using for validation
	code order.Code

	guard guard.ConstructorGuard
}

// NewConfirmOrderDeliveredCommand creates a command to settle a delivery.
func NewConfirmOrderDeliveredCommand(code order.Code) (ConfirmOrderDeliveredCommand, error) {
	deliveredCommand := ConfirmOrderDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deliveredCommand.setCode(code); err != nil {
		return ConfirmOrderDeliveredCommand{}, err
	}

	return deliveredCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderDeliveredCommandIsNotConstructed)
}

// Code returns the customer-facing code of the order to settle.
func (c ConfirmOrderDeliveredCommand) Code() order.Code {
	return c.code
}

func (c *ConfirmOrderDeliveredCommand) setCode(code order.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}

	c.code = code
	return nil
}
