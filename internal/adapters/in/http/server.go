// Package http is the inbound HTTP adapter: a thin Echo surface over the
// command and query handlers. Handlers bind the request, build the command
// or query, and translate domain errors to status codes; no business rule
// lives here.
package http

import (
	"errors"
	"net/http"

	"github.com/bossnaboss212/dernier-occase/internal/core/application/usecases/commands"
	"github.com/bossnaboss212/dernier-occase/internal/core/application/usecases/queries"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/account"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/order"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/pricing"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/product"
	"github.com/bossnaboss212/dernier-occase/internal/core/ports"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// customerIDHeader carries the caller's identity. The storefront in front
// of this API authenticates the customer and forwards their UUID, so the
// adapter trusts the header and only resolves the role behind it.
const customerIDHeader = "X-Customer-ID"

// Server implements the HTTP surface for handling requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	roles    ports.RoleDirectory
	handlers Handlers
}

// Handlers bundles every use case the server exposes. All fields are
// required; the composition root fills them in.
type Handlers struct {
	// Command handlers
	CreateProduct           commands.CreateProductCommandHandler
	SetProductPrice         commands.SetProductPriceCommandHandler
	SetProductStock         commands.SetProductStockCommandHandler
	DeactivateProduct       commands.DeactivateProductCommandHandler
	ReactivateProduct       commands.ReactivateProductCommandHandler
	ReplaceFeeSchedule      commands.ReplaceFeeScheduleCommandHandler
	AddCartItem             commands.AddCartItemCommandHandler
	ClearCart               commands.ClearCartCommandHandler
	StartCheckout           commands.StartCheckoutCommandHandler
	SubmitCheckoutStep      commands.SubmitCheckoutStepCommandHandler
	AssignOrder             commands.AssignOrderCommandHandler
	MarkOrderOutForDelivery commands.MarkOrderOutForDeliveryCommandHandler
	ConfirmOrderDelivered   commands.ConfirmOrderDeliveredCommandHandler
	CancelOrder             commands.CancelOrderCommandHandler
	SetCustomerRole         commands.SetCustomerRoleCommandHandler
	LeaveReview             commands.LeaveReviewCommandHandler

	// Query handlers
	GetCatalog         queries.GetCatalogQueryHandler
	GetCart            queries.GetCartQueryHandler
	GetFeeSchedule     queries.GetFeeScheduleQueryHandler
	GetOpenOrders      queries.GetOpenOrdersQueryHandler
	GetRevenueReport   queries.GetRevenueReportQueryHandler
	GetCustomerReviews queries.GetCustomerReviewsQueryHandler
}

// NewServer creates a new HTTP server with the role directory and the
// use case handlers it routes to.
func NewServer(roles ports.RoleDirectory, handlers Handlers) *Server {
	return &Server{
		roles:    roles,
		handlers: handlers,
	}
}

// RegisterRoutes mounts every route on the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/products", s.CreateProduct)
	api.GET("/products", s.GetProducts)
	api.PATCH("/products/:id/price", s.SetProductPrice)
	api.PATCH("/products/:id/stock", s.SetProductStock)
	api.POST("/products/:id/deactivate", s.DeactivateProduct)
	api.POST("/products/:id/reactivate", s.ReactivateProduct)

	api.GET("/fee-schedule", s.GetFeeSchedule)
	api.PUT("/fee-schedule", s.ReplaceFeeSchedule)

	api.POST("/cart", s.AddCartItem)
	api.GET("/cart", s.GetCart)
	api.DELETE("/cart", s.ClearCart)

	api.POST("/checkout", s.StartCheckout)
	api.POST("/checkout/input", s.SubmitCheckoutStep)

	api.GET("/orders/open", s.GetOpenOrders)
	api.POST("/orders/:code/assign", s.AssignOrder)
	api.POST("/orders/:code/out-for-delivery", s.MarkOrderOutForDelivery)
	api.POST("/orders/:code/deliver", s.ConfirmOrderDelivered)
	api.POST("/orders/:code/cancel", s.CancelOrder)

	api.GET("/reports/revenue", s.GetRevenueReport)
	api.PUT("/customers/:id/role", s.SetCustomerRole)

	api.POST("/reviews", s.LeaveReview)
	api.GET("/reviews", s.GetReviews)
}

// Health handles GET /health - answers liveness probes.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// callerID extracts the authenticated customer identity from the request.
func (s *Server) callerID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(customerIDHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(customerIDHeader)
	}

	return kernel.UUIDFromString(raw)
}

// authorize resolves the caller's role and checks it against the gate.
// Returns the caller's identity so own-resource handlers can scope to it.
func (s *Server) authorize(ctx echo.Context, min account.Role) (kernel.UUID, error) {
	callerID, err := s.callerID(ctx)
	if err != nil {
		return kernel.UUID{}, err
	}

	role, err := s.roles.RoleOf(ctx.Request().Context(), callerID)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = role.Authorize(min); err != nil {
		return kernel.UUID{}, err
	}

	return callerID, nil
}

// ErrorDoc is the uniform error body.
type ErrorDoc struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError translates a domain error into its status code and body. The
// mapping below is the adapter's whole opinion on errors: handlers never
// pick status codes themselves.
func writeError(ctx echo.Context, err error) error {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}

	return ctx.JSON(status, ErrorDoc{
		Code:    status,
		Message: message,
	})
}

// invalidBody answers a request whose body could not be bound at all.
func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, ErrorDoc{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, account.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, order.ErrOrderAlreadySettled),
		errors.Is(err, order.ErrOrderAlreadyCancelled):
		return http.StatusConflict
	case errors.Is(err, product.ErrInsufficientStock),
		errors.Is(err, pricing.ErrZoneNotCovered),
		errors.Is(err, commands.ErrCartIsEmpty):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
