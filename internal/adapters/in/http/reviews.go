package http

import (
	"net/http"
	"time"

	"github.com/bossnaboss212/dernier-occase/internal/core/application/usecases/commands"
	"github.com/bossnaboss212/dernier-occase/internal/core/application/usecases/queries"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/account"

	"github.com/labstack/echo/v4"
)

// LeaveReviewRequest is the body of POST /api/v1/reviews.
type LeaveReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ReviewDoc is one of the caller's own reviews.
type ReviewDoc struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// LeaveReview handles POST /api/v1/reviews - records a 1-5 star rating
// with an optional comment, always under the caller's own identity.
func (s *Server) LeaveReview(ctx echo.Context) error {
	callerID, err := s.authorize(ctx, account.Customer)
	if err != nil {
		return writeError(ctx, err)
	}

	var req LeaveReviewRequest
	if err = ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewLeaveReviewCommand(callerID, req.Rating, req.Comment)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.LeaveReview.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetReviews handles GET /api/v1/reviews - lists the caller's own reviews,
// newest first.
func (s *Server) GetReviews(ctx echo.Context) error {
	callerID, err := s.authorize(ctx, account.Customer)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCustomerReviewsQuery(callerID)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.handlers.GetCustomerReviews.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ReviewDoc, len(rows))
	for i, row := range rows {
		response[i] = ReviewDoc{
			ID:        row.ID.String(),
			Rating:    row.Rating,
			Comment:   row.Comment,
			CreatedAt: row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
