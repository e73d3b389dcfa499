package queries

import (
	"errors"
	"time"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/order"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

var (
	ErrGetOpenOrdersQueryIsNotConstructed = errors.New(
		"GetOpenOrdersQuery must be created via NewGetOpenOrdersQuery constructor",
	)
)

// GetOpenOrdersQuery retrieves every order that still needs work: anything
// not yet delivered or cancelled. Staff use it to assign couriers and track
// deliveries in flight.
//
// Example:
//
//	query := NewGetOpenOrdersQuery()
//	handler := NewGetOpenOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("%s [%s] %s, %.1f km\n", o.Code, o.Status, o.City, o.DistanceKm)
//	}
type GetOpenOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenOrdersQuery creates a query to retrieve open orders.
// This is a parameterless query that fetches all non-terminal orders.
func NewGetOpenOrdersQuery() GetOpenOrdersQuery {
	return GetOpenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOpenOrdersQueryIsNotConstructed if validation fails.
func (q GetOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenOrdersQueryIsNotConstructed)
}

// GetOpenOrdersQueryResponse represents one open order in the read model.
// Carries the fields staff need to dispatch: where to go, how far, how much
// cash to collect, and who is on it.
type GetOpenOrdersQueryResponse struct {
	ID         kernel.UUID
	Code       order.Code
	Status     order.Status
	Address    string
	City       string
	DistanceKm float64
	Total      kernel.Money
	CourierID  *kernel.UUID
	CreatedAt  time.Time
}
