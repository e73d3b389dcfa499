package http

import (
	"net/http"

	"github.com/bossnaboss212/dernier-occase/internal/core/application/usecases/commands"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/account"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// SetRoleRequest is the body of PUT /api/v1/customers/:id/role.
type SetRoleRequest struct {
	Role string `json:"role"`
}

// SetCustomerRole handles PUT /api/v1/customers/:id/role - grants a
// customer a role. The owner role cannot be granted this way; it comes
// from configuration alone.
func (s *Server) SetCustomerRole(ctx echo.Context) error {
	if _, err := s.authorize(ctx, account.Admin); err != nil {
		return writeError(ctx, err)
	}

	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req SetRoleRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetCustomerRoleCommand(customerID, role)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.SetCustomerRole.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
