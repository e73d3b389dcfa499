package queries

import (
	"errors"
	"time"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

var (
	ErrGetCustomerReviewsQueryIsNotConstructed = errors.New(
		"GetCustomerReviewsQuery must be created via NewGetCustomerReviewsQuery constructor",
	)
)

// GetCustomerReviewsQuery retrieves the reviews one customer has left,
// newest first. Customers only ever see their own reviews.
//
// Example:
//
//	query, err := NewGetCustomerReviewsQuery(customerID)
//	if err != nil {
//	    return fmt.Errorf("invalid reviews query: %w", err)
//	}
//
//	handler := NewGetCustomerReviewsQueryHandler(db)
//	reviews, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get reviews: %w", err)
//	}
//
//	for _, r := range reviews {
//	    fmt.Printf("%d/5 %s\n", r.Rating, r.Comment)
//	}
type GetCustomerReviewsQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerReviewsQuery creates a query for the customer's reviews.
func NewGetCustomerReviewsQuery(customerID kernel.UUID) (GetCustomerReviewsQuery, error) {
	reviewsQuery := GetCustomerReviewsQuery{guard: guard.NewConstructorGuard()}

	if err := reviewsQuery.setCustomerID(customerID); err != nil {
		return GetCustomerReviewsQuery{}, err
	}

	return reviewsQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerReviewsQueryIsNotConstructed if validation fails.
func (q GetCustomerReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerReviewsQueryIsNotConstructed)
}

// CustomerID returns the identity of the reviewing customer.
func (q GetCustomerReviewsQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q *GetCustomerReviewsQuery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}

// GetCustomerReviewsQueryResponse represents one review in the read model.
type GetCustomerReviewsQueryResponse struct {
	ID        kernel.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
}
