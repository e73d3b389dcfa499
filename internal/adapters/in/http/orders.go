package http

import (
	"net/http"
	"time"

	"github.com/bossnaboss212/dernier-occase/internal/core/application/usecases/commands"
	"github.com/bossnaboss212/dernier-occase/internal/core/application/usecases/queries"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/account"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// AssignOrderRequest is the body of POST /api/v1/orders/:code/assign.
type AssignOrderRequest struct {
	CourierID string `json:"courier_id"`
}

// OpenOrderDoc is one order on the fulfilment board.
type OpenOrderDoc struct {
	ID         string    `json:"id"`
	Code       string    `json:"code"`
	Status     string    `json:"status"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	DistanceKm float64   `json:"distance_km"`
	Total      string    `json:"total"`
	CourierID  *string   `json:"courier_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// GetOpenOrders handles GET /api/v1/orders/open - the fulfilment board:
// every order not yet delivered or cancelled, oldest first.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	if _, err := s.authorize(ctx, account.Staff); err != nil {
		return writeError(ctx, err)
	}

	query := queries.NewGetOpenOrdersQuery()

	rows, err := s.handlers.GetOpenOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OpenOrderDoc, len(rows))
	for i, row := range rows {
		doc := OpenOrderDoc{
			ID:         row.ID.String(),
			Code:       row.Code.String(),
			Status:     row.Status.String(),
			Address:    row.Address,
			City:       row.City,
			DistanceKm: row.DistanceKm,
			Total:      row.Total.String(),
			CreatedAt:  row.CreatedAt,
		}
		if row.CourierID != nil {
			courierID := row.CourierID.String()
			doc.CourierID = &courierID
		}
		response[i] = doc
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignOrder handles POST /api/v1/orders/:code/assign - puts an order in
// a courier's hands. Reassigning to another courier is allowed until the
// order leaves for delivery.
func (s *Server) AssignOrder(ctx echo.Context) error {
	if _, err := s.authorize(ctx, account.Staff); err != nil {
		return writeError(ctx, err)
	}

	code, err := order.CodeFromString(ctx.Param("code"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req AssignOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignOrderCommand(code, courierID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.AssignOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderOutForDelivery handles POST /api/v1/orders/:code/out-for-delivery.
func (s *Server) MarkOrderOutForDelivery(ctx echo.Context) error {
	if _, err := s.authorize(ctx, account.Staff); err != nil {
		return writeError(ctx, err)
	}

	code, err := order.CodeFromString(ctx.Param("code"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMarkOrderOutForDeliveryCommand(code)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.MarkOrderOutForDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmOrderDelivered handles POST /api/v1/orders/:code/deliver - settles
// the order: cash collected, stock debited, sale recorded. Settling twice
// answers 409 with no further effect.
func (s *Server) ConfirmOrderDelivered(ctx echo.Context) error {
	if _, err := s.authorize(ctx, account.Staff); err != nil {
		return writeError(ctx, err)
	}

	code, err := order.CodeFromString(ctx.Param("code"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewConfirmOrderDeliveredCommand(code)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.ConfirmOrderDelivered.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:code/cancel. Cancelling leaves
// stock and the ledger untouched: nothing was debited before settlement.
func (s *Server) CancelOrder(ctx echo.Context) error {
	if _, err := s.authorize(ctx, account.Staff); err != nil {
		return writeError(ctx, err)
	}

	code, err := order.CodeFromString(ctx.Param("code"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(code)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
