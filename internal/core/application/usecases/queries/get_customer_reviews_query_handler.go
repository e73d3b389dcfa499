package queries

import (
	"context"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerReviewsQueryHandler retrieves a customer's reviews from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
//
// Example:
//
//	handler := NewGetCustomerReviewsQueryHandler(db)
//	query, _ := NewGetCustomerReviewsQuery(customerID)
//
//	reviews, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get reviews: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d reviews\n", len(reviews))
type GetCustomerReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerReviewsQueryHandler creates a handler for review queries.
// Requires a GORM database connection for query execution.
func NewGetCustomerReviewsQueryHandler(db *gorm.DB) GetCustomerReviewsQueryHandler {
	return GetCustomerReviewsQueryHandler{db: db}
}

// Handle executes the query to retrieve the customer's reviews.
// Returns review read models newest first.
func (h GetCustomerReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerReviewsQuery,
) ([]GetCustomerReviewsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	reviews := make([]GetCustomerReviewsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			rating,
			comment,
			created_at
		FROM reviews
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var review GetCustomerReviewsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		reviewID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		review.ID = reviewID

		reviews = append(reviews, review)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
