package http

import (
	"net/http"

	"github.com/bossnaboss212/dernier-occase/internal/core/application/usecases/commands"
	"github.com/bossnaboss212/dernier-occase/internal/core/application/usecases/queries"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/account"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateProductRequest is the body of POST /api/v1/products.
type CreateProductRequest struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	StockQty int    `json:"stock_qty"`
}

// SetPriceRequest is the body of PATCH /api/v1/products/:id/price.
type SetPriceRequest struct {
	Price string `json:"price"`
}

// SetStockRequest is the body of PATCH /api/v1/products/:id/stock.
type SetStockRequest struct {
	StockQty int `json:"stock_qty"`
}

// ProductDoc is one catalog row as served to clients.
type ProductDoc struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	StockQty int    `json:"stock_qty"`
	IsActive bool   `json:"is_active"`
}

// CreateProduct handles POST /api/v1/products - adds a product to the catalog.
func (s *Server) CreateProduct(ctx echo.Context) error {
	if _, err := s.authorize(ctx, account.Admin); err != nil {
		return writeError(ctx, err)
	}

	var req CreateProductRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	price, err := kernel.NewMoneyFromString(req.Price)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateProductCommand(req.Name, price, req.StockQty)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetProducts handles GET /api/v1/products - lists the catalog. Customers
// see the active partition; ?state=inactive flips to the retired one, which
// is for staff eyes only.
func (s *Server) GetProducts(ctx echo.Context) error {
	inactive := ctx.QueryParam("state") == "inactive"

	minRole := account.Customer
	if inactive {
		minRole = account.Staff
	}
	if _, err := s.authorize(ctx, minRole); err != nil {
		return writeError(ctx, err)
	}

	query := queries.NewGetCatalogQuery(inactive)

	rows, err := s.handlers.GetCatalog.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ProductDoc, len(rows))
	for i, row := range rows {
		response[i] = ProductDoc{
			ID:       row.ID.String(),
			Name:     row.Name,
			Price:    row.Price.String(),
			StockQty: row.StockQty,
			IsActive: row.IsActive,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetProductPrice handles PATCH /api/v1/products/:id/price.
func (s *Server) SetProductPrice(ctx echo.Context) error {
	if _, err := s.authorize(ctx, account.Admin); err != nil {
		return writeError(ctx, err)
	}

	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req SetPriceRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	price, err := kernel.NewMoneyFromString(req.Price)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetProductPriceCommand(productID, price)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.SetProductPrice.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetProductStock handles PATCH /api/v1/products/:id/stock - a stock
// correction, absolute rather than relative.
func (s *Server) SetProductStock(ctx echo.Context) error {
	if _, err := s.authorize(ctx, account.Staff); err != nil {
		return writeError(ctx, err)
	}

	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req SetStockRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewSetProductStockCommand(productID, req.StockQty)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.SetProductStock.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeactivateProduct handles POST /api/v1/products/:id/deactivate - retires
// a product from sale without touching existing order snapshots.
func (s *Server) DeactivateProduct(ctx echo.Context) error {
	if _, err := s.authorize(ctx, account.Admin); err != nil {
		return writeError(ctx, err)
	}

	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeactivateProductCommand(productID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.DeactivateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReactivateProduct handles POST /api/v1/products/:id/reactivate.
func (s *Server) ReactivateProduct(ctx echo.Context) error {
	if _, err := s.authorize(ctx, account.Admin); err != nil {
		return writeError(ctx, err)
	}

	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReactivateProductCommand(productID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.ReactivateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
