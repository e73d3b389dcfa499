package review

import (
	"errors"
	"strings"
	"time"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
)

const (
	// RatingMin is the lowest accepted rating.
	RatingMin = 1
	// RatingMax is the highest accepted rating.
	RatingMax = 5
)

// ErrReviewIsNotConstructed is returned when using an improperly initialized Review.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

// Review is a customer's rating of the service, one to five, with an
// optional free-text comment. Reviews are append-only; there is no edit
// or delete flow.
type Review struct {
	// id is the unique identifier for the review
	id kernel.UUID
	// customerID identifies the reviewing customer
	customerID kernel.UUID
	// rating is the star count, RatingMin..RatingMax inclusive
	rating int
	// comment is an optional free-text note
	comment string
	// createdAt is when the review was left
	createdAt time.Time
	// isConstructed ensures the review was created via a constructor
	isConstructed bool
}

// NewReview creates a review.
//
// Parameters:
//   - id: Unique identifier for the review (must be valid UUID)
//   - customerID: Identifier of the reviewing customer (must be valid UUID)
//   - rating: Star count (must be between RatingMin and RatingMax)
//   - comment: Optional free-text note (surrounding whitespace trimmed)
//   - createdAt: When the review was left (must be non-zero)
//
// Returns:
//   - *Review: The created review if all validations pass
//   - error: Validation error if any parameter is invalid
func NewReview(
	id kernel.UUID,
	customerID kernel.UUID,
	rating int,
	comment string,
	createdAt time.Time,
) (*Review, error) {
	review := &Review{
		isConstructed: true,
	}

	if err := errors.Join(
		review.setID(id),
		review.setCustomerID(customerID),
		review.setRating(rating),
		review.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	review.comment = strings.TrimSpace(comment)
	return review, nil
}

// RestoreReview reconstructs a review from persistent storage.
func RestoreReview(
	id kernel.UUID,
	customerID kernel.UUID,
	rating int,
	comment string,
	createdAt time.Time,
) (*Review, error) {
	return NewReview(id, customerID, rating, comment, createdAt)
}

// Validate ensures the Review instance was properly constructed.
func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}

	return nil
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// CustomerID returns the reviewing customer's identifier.
func (r *Review) CustomerID() kernel.UUID {
	return r.customerID
}

// Rating returns the star count.
func (r *Review) Rating() int {
	return r.rating
}

// Comment returns the free-text note ("" if none).
func (r *Review) Comment() string {
	return r.comment
}

// CreatedAt returns when the review was left.
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	r.customerID = customerID
	return nil
}

func (r *Review) setRating(rating int) error {
	if rating < RatingMin || rating > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax)
	}
	r.rating = rating
	return nil
}

func (r *Review) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	r.createdAt = createdAt
	return nil
}
