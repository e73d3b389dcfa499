package commands

import (
	"context"

	"github.com/bossnaboss212/dernier-occase/internal/core/ports"
)

// SetCustomerRoleCommandHandler handles role grants. The directory itself
// keeps owners fixed; this handler only passes grantable roles through.
type SetCustomerRoleCommandHandler struct {
	roleDirectory ports.RoleDirectory
}

// NewSetCustomerRoleCommandHandler creates a handler for role grants.
func NewSetCustomerRoleCommandHandler(roleDirectory ports.RoleDirectory) SetCustomerRoleCommandHandler {
	return SetCustomerRoleCommandHandler{
		roleDirectory: roleDirectory,
	}
}

// Handle processes the role grant command.
func (h SetCustomerRoleCommandHandler) Handle(ctx context.Context, cmd SetCustomerRoleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.roleDirectory.SetRole(ctx, cmd.CustomerID(), cmd.Role())
}
