package http

import (
	"net/http"

	"github.com/bossnaboss212/dernier-occase/internal/core/application/usecases/commands"
	"github.com/bossnaboss212/dernier-occase/internal/core/application/usecases/queries"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/account"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// AddCartItemRequest is the body of POST /api/v1/cart.
type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

// CartDoc is the caller's cart as priced against the live catalog.
type CartDoc struct {
	CustomerID string        `json:"customer_id"`
	Lines      []CartLineDoc `json:"lines"`
	Subtotal   string        `json:"subtotal"`
}

// CartLineDoc is one cart position.
type CartLineDoc struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Qty       int    `json:"qty"`
	LineTotal string `json:"line_total"`
}

// AddCartItem handles POST /api/v1/cart - puts a quantity of a product in
// the caller's own cart. Repeating a product accumulates its quantity.
func (s *Server) AddCartItem(ctx echo.Context) error {
	callerID, err := s.authorize(ctx, account.Customer)
	if err != nil {
		return writeError(ctx, err)
	}

	var req AddCartItemRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAddCartItemCommand(callerID, productID, req.Qty)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.AddCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCart handles GET /api/v1/cart - shows the caller's cart priced at
// current catalog prices, with retired products left out.
func (s *Server) GetCart(ctx echo.Context) error {
	callerID, err := s.authorize(ctx, account.Customer)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCartQuery(callerID)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.handlers.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	lines := make([]CartLineDoc, len(view.Lines))
	for i, line := range view.Lines {
		lines[i] = CartLineDoc{
			ProductID: line.ProductID.String(),
			Name:      line.Name,
			UnitPrice: line.UnitPrice.String(),
			Qty:       line.Qty,
			LineTotal: line.LineTotal.String(),
		}
	}

	return ctx.JSON(http.StatusOK, CartDoc{
		CustomerID: view.CustomerID.String(),
		Lines:      lines,
		Subtotal:   view.Subtotal.String(),
	})
}

// ClearCart handles DELETE /api/v1/cart - empties the caller's cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	callerID, err := s.authorize(ctx, account.Customer)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewClearCartCommand(callerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
