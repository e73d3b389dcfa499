package queries

import (
	"context"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCatalogQueryHandler lists catalog products from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetCatalogQueryHandler(db)
//	query := NewGetCatalogQuery(false)
//
//	products, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get catalog: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d products\n", len(products))
type GetCatalogQueryHandler struct {
	db *gorm.DB
}

// NewGetCatalogQueryHandler creates a handler for catalog listing queries.
// Requires a GORM database connection for query execution.
func NewGetCatalogQueryHandler(db *gorm.DB) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{db: db}
}

// Handle executes the query to list one catalog partition.
// Returns product read models sorted by name.
func (h GetCatalogQueryHandler) Handle(
	ctx context.Context,
	query GetCatalogQuery,
) ([]GetCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]GetCatalogQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			stock_qty,
			is_active
		FROM products
		WHERE is_active = ?
		ORDER BY name
	`, !query.Inactive()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var product GetCatalogQueryResponse
		var id uuid.UUID
		var price decimal.Decimal

		err = rows.Scan(
			&id,
			&product.Name,
			&price,
			&product.StockQty,
			&product.IsActive,
		)
		if err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		product.ID = productID

		unitPrice, priceErr := kernel.NewMoney(price)
		if priceErr != nil {
			return nil, priceErr
		}
		product.Price = unitPrice

		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
