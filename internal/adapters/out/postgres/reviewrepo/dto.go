// Package reviewrepo persists customer reviews. Reviews are write-once;
// listing goes through the query side.
package reviewrepo

import (
	"time"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO represents the database structure for persisting reviews.
type ReviewDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	Rating     int       `gorm:"not null"`
	Comment    string
	CreatedAt  time.Time
}

// TableName specifies the database table name for review entities.
// Overrides GORM's default naming convention to use "reviews".
func (ReviewDTO) TableName() string {
	return "reviews"
}

// fromDomain converts a review to its database representation.
func fromDomain(review *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:         review.ID().Bytes(),
		CustomerID: review.CustomerID().Bytes(),
		Rating:     review.Rating(),
		Comment:    review.Comment(),
		CreatedAt:  review.CreatedAt(),
	}
}
