package commands

import (
	"errors"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

var ErrSubmitCheckoutStepCommandIsNotConstructed = errors.New(
	"SubmitCheckoutStepCommand must be created via NewSubmitCheckoutStepCommand constructor",
)

// SubmitCheckoutStepCommand carries one raw answer for the customer's active
// checkout conversation. The answer is interpreted against whatever stage
// the session is currently waiting on; an empty answer is legal on the promo
// stage, where it means "no promo".
type SubmitCheckoutStepCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	input      string

	guard guard.ConstructorGuard
}

// NewSubmitCheckoutStepCommand creates a command carrying a checkout answer.
// The input is passed through untouched; each stage applies its own rules.
func NewSubmitCheckoutStepCommand(customerID kernel.UUID, input string) (SubmitCheckoutStepCommand, error) {
	stepCommand := SubmitCheckoutStepCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := stepCommand.setCustomerID(customerID); err != nil {
		return SubmitCheckoutStepCommand{}, err
	}

	stepCommand.input = input
	return stepCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitCheckoutStepCommand) Validate() error {
	return c.guard.Validate(ErrSubmitCheckoutStepCommandIsNotConstructed)
}

// CustomerID returns the identity of the customer answering.
func (c SubmitCheckoutStepCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Input returns the raw answer text.
func (c SubmitCheckoutStepCommand) Input() string {
	return c.input
}

func (c *SubmitCheckoutStepCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
