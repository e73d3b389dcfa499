package commands_test

import (
	"testing"

	"github.com/bossnaboss212/dernier-occase/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeactivateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestProduct(t, "Bouteille 1.0L", "2.50", 50, true)
	cmd, err := commands.NewDeactivateProductCommand(aggregate.ID())
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		productRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewDeactivateProductCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, aggregate.IsActive())
	uow.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestDeactivateProductCommandHandler_Handle_AlreadyInactiveIsIdempotent(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestProduct(t, "Bouteille 1.0L", "2.50", 50, false)
	cmd, err := commands.NewDeactivateProductCommand(aggregate.ID())
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	productRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewDeactivateProductCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, aggregate.IsActive())
}
