package ports

import (
	"context"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/review"
)

// ReviewRepository persists customer reviews.
type ReviewRepository interface {
	Add(ctx context.Context, aggregate *review.Review) error
}
