package queries

import (
	"context"
	"time"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetRevenueReportQueryHandler projects order money columns over a trailing
// day window. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
//
// Example:
//
//	handler := NewGetRevenueReportQueryHandler(db)
//	query, _ := NewGetRevenueReportQuery(7)
//
//	rows, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to build revenue report: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Report covers %d orders\n", len(rows))
type GetRevenueReportQueryHandler struct {
	db *gorm.DB
}

// NewGetRevenueReportQueryHandler creates a handler for revenue report queries.
// Requires a GORM database connection for query execution.
func NewGetRevenueReportQueryHandler(db *gorm.DB) GetRevenueReportQueryHandler {
	return GetRevenueReportQueryHandler{db: db}
}

// Handle executes the query to project orders created within the window.
// Returns rows ascending by order id so repeated exports paginate stably.
func (h GetRevenueReportQueryHandler) Handle(
	ctx context.Context,
	query GetRevenueReportQuery,
) ([]GetRevenueReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	reportRows := make([]GetRevenueReportQueryResponse, 0)

	cutoff := time.Now().AddDate(0, 0, -query.WindowDays())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			status,
			total,
			discount,
			delivery_fee,
			created_at,
			delivered_at
		FROM orders
		WHERE created_at >= ?
		ORDER BY id
	`, cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var reportRow GetRevenueReportQueryResponse
		var id uuid.UUID
		var code, statusName string
		var total, discount, deliveryFee decimal.Decimal

		err = rows.Scan(
			&id,
			&code,
			&statusName,
			&total,
			&discount,
			&deliveryFee,
			&reportRow.CreatedAt,
			&reportRow.DeliveredAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		reportRow.OrderID = orderID

		orderCode, codeErr := order.CodeFromString(code)
		if codeErr != nil {
			return nil, codeErr
		}
		reportRow.Code = orderCode

		status, statusErr := order.StatusFromString(statusName)
		if statusErr != nil {
			return nil, statusErr
		}
		reportRow.Status = status

		orderTotal, totalErr := kernel.NewMoney(total)
		if totalErr != nil {
			return nil, totalErr
		}
		reportRow.Total = orderTotal

		orderDiscount, discountErr := kernel.NewMoney(discount)
		if discountErr != nil {
			return nil, discountErr
		}
		reportRow.Discount = orderDiscount

		orderFee, feeErr := kernel.NewMoney(deliveryFee)
		if feeErr != nil {
			return nil, feeErr
		}
		reportRow.DeliveryFee = orderFee

		reportRows = append(reportRows, reportRow)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reportRows, nil
}
