package queries

import (
	"context"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCartQueryHandler joins the in-memory cart with the catalog table.
// The cart holds bare product references; this handler resolves names and
// prices at read time so the customer always sees current catalog values.
//
// Example:
//
//	handler := NewGetCartQueryHandler(cartStore, db)
//	query, _ := NewGetCartQuery(customerID)
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get cart: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Subtotal: %s\n", view.Subtotal)
type GetCartQueryHandler struct {
	cartStore ports.CartStore
	db        *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart retrieval queries.
// Requires the cart store and a GORM database connection for the catalog join.
func NewGetCartQueryHandler(cartStore ports.CartStore, db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{cartStore: cartStore, db: db}
}

// Handle executes the query to retrieve the customer's priced cart view.
// Lines referencing inactive products are omitted; the subtotal covers the
// returned lines only.
func (h GetCartQueryHandler) Handle(
	ctx context.Context,
	query GetCartQuery,
) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	customerCart, err := h.cartStore.Get(ctx, query.CustomerID())
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	response := GetCartQueryResponse{
		CustomerID: query.CustomerID(),
		Lines:      make([]GetCartQueryResponseLine, 0),
		Subtotal:   kernel.ZeroMoney(),
	}

	if customerCart.IsEmpty() {
		return response, nil
	}

	cartLines := customerCart.Lines()
	productIDs := make([]uuid.UUID, 0, len(cartLines))
	for _, line := range cartLines {
		productIDs = append(productIDs, line.ProductID().Bytes())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price
		FROM products
		WHERE id IN ? AND is_active
	`, productIDs).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	type catalogEntry struct {
		name  string
		price decimal.Decimal
	}

	catalog := make(map[uuid.UUID]catalogEntry)

	for rows.Next() {
		var id uuid.UUID
		var entry catalogEntry

		err = rows.Scan(&id, &entry.name, &entry.price)
		if err != nil {
			return GetCartQueryResponse{}, err
		}

		catalog[id] = entry
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	for _, line := range cartLines {
		entry, found := catalog[line.ProductID().Bytes()]
		if !found {
			// Deactivated since it was picked; not sellable, not shown.
			continue
		}

		unitPrice, priceErr := kernel.NewMoney(entry.price)
		if priceErr != nil {
			return GetCartQueryResponse{}, priceErr
		}

		lineTotal, totalErr := unitPrice.MulInt(line.Qty())
		if totalErr != nil {
			return GetCartQueryResponse{}, totalErr
		}

		subtotal, addErr := response.Subtotal.Add(lineTotal)
		if addErr != nil {
			return GetCartQueryResponse{}, addErr
		}
		response.Subtotal = subtotal

		response.Lines = append(response.Lines, GetCartQueryResponseLine{
			ProductID: line.ProductID(),
			Name:      entry.name,
			UnitPrice: unitPrice,
			Qty:       line.Qty(),
			LineTotal: lineTotal,
		})
	}

	return response, nil
}
