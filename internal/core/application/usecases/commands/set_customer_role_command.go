package commands

import (
	"errors"
	"fmt"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/account"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

var ErrSetCustomerRoleCommandIsNotConstructed = errors.New(
	"SetCustomerRoleCommand must be created via NewSetCustomerRoleCommand constructor",
)

// SetCustomerRoleCommand represents a request to grant an identity a role.
// Customer, staff and admin can be granted; ownership comes only from
// configuration and is rejected here.
type SetCustomerRoleCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	role       account.Role

	guard guard.ConstructorGuard
}

// NewSetCustomerRoleCommand creates a command to grant a role.
// Validates the identifier and requires a grantable role below owner.
func NewSetCustomerRoleCommand(customerID kernel.UUID, role account.Role) (SetCustomerRoleCommand, error) {
	roleCommand := SetCustomerRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		roleCommand.setCustomerID(customerID),
		roleCommand.setRole(role),
	); err != nil {
		return SetCustomerRoleCommand{}, err
	}

	return roleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCustomerRoleCommand) Validate() error {
	return c.guard.Validate(ErrSetCustomerRoleCommandIsNotConstructed)
}

// CustomerID returns the identity receiving the role.
func (c SetCustomerRoleCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Role returns the role to grant.
func (c SetCustomerRoleCommand) Role() account.Role {
	return c.role
}

func (c *SetCustomerRoleCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SetCustomerRoleCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if role == account.Owner {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%s cannot be granted", role),
		)
	}

	c.role = role
	return nil
}
