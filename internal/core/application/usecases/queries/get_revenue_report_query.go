package queries

import (
	"errors"
	"fmt"
	"time"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/order"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

var (
	ErrGetRevenueReportQueryIsNotConstructed = errors.New(
		"GetRevenueReportQuery must be created via NewGetRevenueReportQuery constructor",
	)
)

// GetRevenueReportQuery retrieves the orders created within a trailing day
// window, with their money columns. The rows feed the CSV/PDF export; this
// query only projects, it never aggregates or mutates.
//
// Example:
//
//	query, err := NewGetRevenueReportQuery(30)
//	if err != nil {
//	    return fmt.Errorf("invalid report window: %w", err)
//	}
//
//	handler := NewGetRevenueReportQueryHandler(db)
//	rows, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build report: %w", err)
//	}
//
//	for _, row := range rows {
//	    fmt.Printf("%s %s total=%s\n", row.Code, row.Status, row.Total)
//	}
type GetRevenueReportQuery struct { //nolint:recvcheck //using for validation
	windowDays int

	guard guard.ConstructorGuard
}

// NewGetRevenueReportQuery creates a report query over the last windowDays
// days. The window must be positive.
func NewGetRevenueReportQuery(windowDays int) (GetRevenueReportQuery, error) {
	reportQuery := GetRevenueReportQuery{guard: guard.NewConstructorGuard()}

	if err := reportQuery.setWindowDays(windowDays); err != nil {
		return GetRevenueReportQuery{}, err
	}

	return reportQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRevenueReportQueryIsNotConstructed if validation fails.
func (q GetRevenueReportQuery) Validate() error {
	return q.guard.Validate(ErrGetRevenueReportQueryIsNotConstructed)
}

// WindowDays returns the trailing window size in days.
func (q GetRevenueReportQuery) WindowDays() int {
	return q.windowDays
}

func (q *GetRevenueReportQuery) setWindowDays(windowDays int) error {
	if windowDays <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"windowDays",
			fmt.Errorf("%d is not greater than 0", windowDays),
		)
	}

	q.windowDays = windowDays
	return nil
}

// GetRevenueReportQueryResponse is one order's money row in the report.
// DeliveredAt is nil for orders that never reached delivery; the export
// layer decides how to render those.
type GetRevenueReportQueryResponse struct {
	OrderID     kernel.UUID
	Code        order.Code
	Status      order.Status
	Total       kernel.Money
	Discount    kernel.Money
	DeliveryFee kernel.Money
	CreatedAt   time.Time
	DeliveredAt *time.Time
}
