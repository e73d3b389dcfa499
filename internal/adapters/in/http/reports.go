package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/bossnaboss212/dernier-occase/internal/core/application/usecases/queries"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/account"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// defaultReportWindowDays is the revenue window served when the caller
// does not pick one.
const defaultReportWindowDays = 30

// RevenueRowDoc is one order in the revenue report.
type RevenueRowDoc struct {
	OrderID     string     `json:"order_id"`
	Code        string     `json:"code"`
	Status      string     `json:"status"`
	Total       string     `json:"total"`
	Discount    string     `json:"discount"`
	DeliveryFee string     `json:"delivery_fee"`
	CreatedAt   time.Time  `json:"created_at"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

// GetRevenueReport handles GET /api/v1/reports/revenue?days=N - the raw
// order rows of the last N days, for accounting exports.
func (s *Server) GetRevenueReport(ctx echo.Context) error {
	if _, err := s.authorize(ctx, account.Admin); err != nil {
		return writeError(ctx, err)
	}

	windowDays := defaultReportWindowDays
	if raw := ctx.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("days", err))
		}
		windowDays = parsed
	}

	query, err := queries.NewGetRevenueReportQuery(windowDays)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.handlers.GetRevenueReport.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]RevenueRowDoc, len(rows))
	for i, row := range rows {
		response[i] = RevenueRowDoc{
			OrderID:     row.OrderID.String(),
			Code:        row.Code.String(),
			Status:      row.Status.String(),
			Total:       row.Total.String(),
			Discount:    row.Discount.String(),
			DeliveryFee: row.DeliveryFee.String(),
			CreatedAt:   row.CreatedAt,
			DeliveredAt: row.DeliveredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
