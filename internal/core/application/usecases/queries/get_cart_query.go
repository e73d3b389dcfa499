// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)
)

// GetCartQuery retrieves one customer's cart priced against the catalog as
// it stands right now. Lines whose product has been deactivated since they
// were added are omitted from the view; the cart itself keeps them.
//
// Example:
//
//	query, err := NewGetCartQuery(customerID)
//	if err != nil {
//	    return fmt.Errorf("invalid cart query: %w", err)
//	}
//
//	handler := NewGetCartQueryHandler(cartStore, db)
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve cart: %w", err)
//	}
//
//	fmt.Printf("Cart holds %d lines, subtotal %s\n", len(view.Lines), view.Subtotal)
type GetCartQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the given customer's cart.
func NewGetCartQuery(customerID kernel.UUID) (GetCartQuery, error) {
	cartQuery := GetCartQuery{guard: guard.NewConstructorGuard()}

	if err := cartQuery.setCustomerID(customerID); err != nil {
		return GetCartQuery{}, err
	}

	return cartQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCartQueryIsNotConstructed if validation fails.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CustomerID returns the identity of the cart owner.
func (q GetCartQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q *GetCartQuery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}

// GetCartQueryResponse is the priced view of a cart: the sellable lines in
// insertion order plus their running subtotal. Discounts and the delivery
// fee are checkout concerns and do not appear here.
type GetCartQueryResponse struct {
	CustomerID kernel.UUID
	Lines      []GetCartQueryResponseLine
	Subtotal   kernel.Money
}

// GetCartQueryResponseLine is one cart line joined with the current catalog.
type GetCartQueryResponseLine struct {
	ProductID kernel.UUID
	Name      string
	UnitPrice kernel.Money
	Qty       int
	LineTotal kernel.Money
}
