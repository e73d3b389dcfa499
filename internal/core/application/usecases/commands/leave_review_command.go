package commands

import (
	"errors"
	"strings"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/review"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

var ErrLeaveReviewCommandIsNotConstructed = errors.New(
	"LeaveReviewCommand must be created via NewLeaveReviewCommand constructor",
)

// LeaveReviewCommand represents a customer leaving a star rating with an
// optional comment. Reviews are free-standing: they are not tied to a
// particular order.
type LeaveReviewCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	rating     int
	comment    string

	guard guard.ConstructorGuard
}

// NewLeaveReviewCommand creates a command to record a review.
// Validates the identifier and the rating range; the comment may be empty.
func NewLeaveReviewCommand(customerID kernel.UUID, rating int, comment string) (LeaveReviewCommand, error) {
	reviewCommand := LeaveReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reviewCommand.setCustomerID(customerID),
		reviewCommand.setRating(rating),
	); err != nil {
		return LeaveReviewCommand{}, err
	}

	reviewCommand.comment = strings.TrimSpace(comment)
	return reviewCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c LeaveReviewCommand) Validate() error {
	return c.guard.Validate(ErrLeaveReviewCommandIsNotConstructed)
}

// CustomerID returns the identity of the reviewing customer.
func (c LeaveReviewCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Rating returns the star rating.
func (c LeaveReviewCommand) Rating() int {
	return c.rating
}

// Comment returns the optional review text, trimmed.
func (c LeaveReviewCommand) Comment() string {
	return c.comment
}

func (c *LeaveReviewCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *LeaveReviewCommand) setRating(rating int) error {
	if rating < review.RatingMin || rating > review.RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, review.RatingMin, review.RatingMax)
	}

	c.rating = rating
	return nil
}
