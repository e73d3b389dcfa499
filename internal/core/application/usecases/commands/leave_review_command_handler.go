package commands

import (
	"context"
	"time"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/review"
)

// LeaveReviewCommandHandler handles review submission.
type LeaveReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewLeaveReviewCommandHandler creates a handler for review submission.
func NewLeaveReviewCommandHandler(uowFactory ReviewUoWFactory) LeaveReviewCommandHandler {
	return LeaveReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review submission command.
func (h LeaveReviewCommandHandler) Handle(ctx context.Context, cmd LeaveReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newReview, err := review.NewReview(
		kernel.NewUUID(), cmd.CustomerID(), cmd.Rating(), cmd.Comment(), time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.ReviewRepository().Add(ctx, newReview); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
