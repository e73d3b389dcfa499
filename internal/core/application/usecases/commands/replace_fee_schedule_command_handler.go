package commands

import (
	"context"
)

// ReplaceFeeScheduleCommandHandler handles fee schedule replacement. There is
// exactly one active schedule; replacing it takes effect for every commit
// priced afterwards.
type ReplaceFeeScheduleCommandHandler struct {
	uowFactory FeeScheduleUoWFactory
}

// NewReplaceFeeScheduleCommandHandler creates a handler for schedule replacement.
func NewReplaceFeeScheduleCommandHandler(uowFactory FeeScheduleUoWFactory) ReplaceFeeScheduleCommandHandler {
	return ReplaceFeeScheduleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the schedule replacement command.
func (h ReplaceFeeScheduleCommandHandler) Handle(ctx context.Context, cmd ReplaceFeeScheduleCommand) error {
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

	if err := uow.FeeScheduleRepository().Replace(ctx, cmd.Schedule()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
