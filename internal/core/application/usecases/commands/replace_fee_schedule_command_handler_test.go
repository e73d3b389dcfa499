package commands_test

import (
	"testing"

	"github.com/bossnaboss212/dernier-occase/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReplaceFeeScheduleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	schedule := newTestSchedule(t)
	cmd, err := commands.NewReplaceFeeScheduleCommand(schedule)
	require.NoError(t, err)

	feeRepo := new(MockFeeScheduleRepository)
	uow := new(MockFeeScheduleUoW)
	factory := new(MockFeeScheduleUoWFactory)
	factory.On("Create").Return(uow)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FeeScheduleRepository").Return(feeRepo).Once(),
		feeRepo.On("Replace", mock.Anything, schedule).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewReplaceFeeScheduleCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
	feeRepo.AssertExpectations(t)
}

func TestReplaceFeeScheduleCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	factory := new(MockFeeScheduleUoWFactory)
	handler := commands.NewReplaceFeeScheduleCommandHandler(factory)

	err := handler.Handle(ctx, commands.ReplaceFeeScheduleCommand{})

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrReplaceFeeScheduleCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestReplaceFeeScheduleCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReplaceFeeScheduleCommand(newTestSchedule(t))
	require.NoError(t, err)

	feeRepo := new(MockFeeScheduleRepository)
	uow := new(MockFeeScheduleUoW)
	factory := new(MockFeeScheduleUoWFactory)
	factory.On("Create").Return(uow)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("FeeScheduleRepository").Return(feeRepo).Once()
	feeRepo.On("Replace", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(assert.AnError).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewReplaceFeeScheduleCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
