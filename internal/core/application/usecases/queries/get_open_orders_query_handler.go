package queries

import (
	"context"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOpenOrdersQueryHandler retrieves non-terminal orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetOpenOrdersQueryHandler(db)
//	query := NewGetOpenOrdersQuery()
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get open orders: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d open orders\n", len(orders))
type GetOpenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenOrdersQueryHandler creates a handler for open order queries.
// Requires a GORM database connection for query execution.
func NewGetOpenOrdersQueryHandler(db *gorm.DB) GetOpenOrdersQueryHandler {
	return GetOpenOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all open orders.
// Returns order read models in creation order, oldest first, so the queue
// reads top to bottom.
func (h GetOpenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOpenOrdersQuery,
) ([]GetOpenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOpenOrdersQueryResponse, 0)

	terminalStatuses := []string{order.Delivered.String(), order.Cancelled.String()}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			status,
			address,
			city,
			distance_km,
			total,
			courier_id,
			created_at
		FROM orders
		WHERE status NOT IN ?
		ORDER BY created_at
	`, terminalStatuses).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var openOrder GetOpenOrdersQueryResponse
		var id uuid.UUID
		var code, statusName string
		var total decimal.Decimal
		var courierID *uuid.UUID

		err = rows.Scan(
			&id,
			&code,
			&statusName,
			&openOrder.Address,
			&openOrder.City,
			&openOrder.DistanceKm,
			&total,
			&courierID,
			&openOrder.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		openOrder.ID = orderID

		orderCode, codeErr := order.CodeFromString(code)
		if codeErr != nil {
			return nil, codeErr
		}
		openOrder.Code = orderCode

		status, statusErr := order.StatusFromString(statusName)
		if statusErr != nil {
			return nil, statusErr
		}
		openOrder.Status = status

		orderTotal, totalErr := kernel.NewMoney(total)
		if totalErr != nil {
			return nil, totalErr
		}
		openOrder.Total = orderTotal

		if courierID != nil {
			courier, courierErr := kernel.UUIDFromBytes(courierID[:])
			if courierErr != nil {
				return nil, courierErr
			}
			openOrder.CourierID = &courier
		}

		orders = append(orders, openOrder)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
