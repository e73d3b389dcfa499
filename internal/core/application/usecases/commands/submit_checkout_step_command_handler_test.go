package commands_test

import (
	"testing"
	"time"

	"github.com/bossnaboss212/dernier-occase/internal/core/application/usecases/commands"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/cart"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/checkout"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/pricing"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/product"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sessionAwaitingCity(t *testing.T, customerID kernel.UUID) *checkout.Session {
	t.Helper()
	s, err := checkout.NewSession(customerID, time.Now())
	require.NoError(t, err)
	require.NoError(t, s.Submit("12 rue des Lilas", time.Now()))
	return s
}

func sessionAwaitingPromo(t *testing.T, customerID kernel.UUID, city, distance string) *checkout.Session {
	t.Helper()
	s, err := checkout.NewSession(customerID, time.Now())
	require.NoError(t, err)
	require.NoError(t, s.Submit("12 rue des Lilas", time.Now()))
	require.NoError(t, s.Submit(city, time.Now()))
	require.NoError(t, s.Submit(distance, time.Now()))
	return s
}

func cartFor(t *testing.T, customerID kernel.UUID, picks ...*product.Product) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(customerID)
	require.NoError(t, err)
	for i, p := range picks {
		qty := 1
		if i == 0 {
			qty = 2
		}
		require.NoError(t, c.AddItem(p.ID(), qty))
	}
	return c
}

type commitFixture struct {
	handler      commands.SubmitCheckoutStepCommandHandler
	cartStore    *MockCartStore
	sessionStore *MockSessionStore
	notifier     *MockDispatchNotifier
	uow          *MockCheckoutUoW
	productRepo  *MockProductRepository
	orderRepo    *MockOrderRepository
	feeRepo      *MockFeeScheduleRepository
}

func newCommitFixture(t *testing.T, policy pricing.DiscountPolicy) commitFixture {
	t.Helper()

	f := commitFixture{
		cartStore:    new(MockCartStore),
		sessionStore: new(MockSessionStore),
		notifier:     new(MockDispatchNotifier),
		uow:          new(MockCheckoutUoW),
		productRepo:  new(MockProductRepository),
		orderRepo:    new(MockOrderRepository),
		feeRepo:      new(MockFeeScheduleRepository),
	}

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(f.uow)

	f.handler = commands.NewSubmitCheckoutStepCommandHandler(
		factory, f.cartStore, f.sessionStore, policy, f.notifier,
	)
	return f
}

func TestSubmitCheckoutStepCommandHandler_Handle_AdvancesMidConversation(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, _ := commands.NewSubmitCheckoutStepCommand(customerID, "Rodez")

	f := newCommitFixture(t, newTestPolicy(t, false))
	session := sessionAwaitingCity(t, customerID)
	mock.InOrder(
		f.sessionStore.On("Get", mock.Anything, customerID).Return(session, nil).Once(),
		f.sessionStore.On("Save", mock.Anything, session).Return(nil).Once(),
	)

	result, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, checkout.StepDistance, result.Step)
	assert.Nil(t, result.Committed)
	f.sessionStore.AssertExpectations(t)
	f.cartStore.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestSubmitCheckoutStepCommandHandler_Handle_NoActiveSession(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, _ := commands.NewSubmitCheckoutStepCommand(customerID, "12 rue des Lilas")

	f := newCommitFixture(t, newTestPolicy(t, false))
	f.sessionStore.On("Get", mock.Anything, customerID).
		Return(nil, errs.NewObjectNotFoundError("customerID", customerID.String())).Once()

	_, err := f.handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestSubmitCheckoutStepCommandHandler_Handle_RejectedAnswerKeepsSession(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, _ := commands.NewSubmitCheckoutStepCommand(customerID, "pas un nombre")

	f := newCommitFixture(t, newTestPolicy(t, false))
	session, err := checkout.NewSession(customerID, time.Now())
	require.NoError(t, err)
	require.NoError(t, session.Submit("12 rue des Lilas", time.Now()))
	require.NoError(t, session.Submit("Rodez", time.Now()))

	f.sessionStore.On("Get", mock.Anything, customerID).Return(session, nil).Once()

	_, err = f.handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, checkout.StepDistance, session.State().Step())
	f.sessionStore.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	f.sessionStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestSubmitCheckoutStepCommandHandler_Handle_CommitSuccess(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, _ := commands.NewSubmitCheckoutStepCommand(customerID, "NON")

	bottle := newTestProduct(t, "Bouteille 1.0L", "2.50", 50, true)
	pack := newTestProduct(t, "Pack 6x0.5L", "6.90", 30, true)

	f := newCommitFixture(t, newTestPolicy(t, false))
	session := sessionAwaitingPromo(t, customerID, "Rodez", "12,5")

	mock.InOrder(
		f.sessionStore.On("Get", mock.Anything, customerID).Return(session, nil).Once(),
		f.cartStore.On("Get", mock.Anything, customerID).
			Return(cartFor(t, customerID, bottle, pack), nil).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("ProductRepository").Return(f.productRepo).Once(),
		f.uow.On("OrderRepository").Return(f.orderRepo).Once(),
		f.uow.On("FeeScheduleRepository").Return(f.feeRepo).Once(),
		f.feeRepo.On("Get", mock.Anything).Return(newTestSchedule(t), nil).Once(),
		f.productRepo.On("Get", mock.Anything, bottle.ID()).Return(bottle, nil).Once(),
		f.productRepo.On("Get", mock.Anything, pack.ID()).Return(pack, nil).Once(),
		f.orderRepo.On("ExistsWithCode", mock.Anything, mock.AnythingOfType("order.Code")).
			Return(false, nil).Once(),
		f.orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.cartStore.On("Clear", mock.Anything, customerID).Return(nil).Once(),
		f.notifier.On("NotifyNewOrder", mock.Anything, mock.AnythingOfType("order.DispatchNotice")).
			Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
		f.sessionStore.On("Delete", mock.Anything, customerID).Return(nil).Once(),
	)

	result, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, result.Committed)
	assert.Equal(t, "11.90", result.Committed.Subtotal.String())
	assert.Equal(t, "0.00", result.Committed.Discount.String())
	assert.Equal(t, "20.00", result.Committed.DeliveryFee.String())
	assert.Equal(t, "31.90", result.Committed.Total.String())
	assert.NotEmpty(t, result.Committed.Code)

	f.uow.AssertExpectations(t)
	f.productRepo.AssertExpectations(t)
	f.orderRepo.AssertExpectations(t)
	f.cartStore.AssertExpectations(t)
	f.sessionStore.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
}

func TestSubmitCheckoutStepCommandHandler_Handle_CommitAppliesDiscounts(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, _ := commands.NewSubmitCheckoutStepCommand(customerID, "tresorerie10")

	bottle := newTestProduct(t, "Bouteille 1.0L", "2.50", 50, true)
	pack := newTestProduct(t, "Pack 6x0.5L", "6.90", 30, true)

	f := newCommitFixture(t, newTestPolicy(t, true))
	session := sessionAwaitingPromo(t, customerID, "Rodez", "12,5")

	f.sessionStore.On("Get", mock.Anything, customerID).Return(session, nil).Once()
	f.cartStore.On("Get", mock.Anything, customerID).
		Return(cartFor(t, customerID, bottle, pack), nil).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("ProductRepository").Return(f.productRepo).Once()
	f.uow.On("OrderRepository").Return(f.orderRepo).Once()
	f.uow.On("FeeScheduleRepository").Return(f.feeRepo).Once()
	f.feeRepo.On("Get", mock.Anything).Return(newTestSchedule(t), nil).Once()
	f.productRepo.On("Get", mock.Anything, bottle.ID()).Return(bottle, nil).Once()
	f.productRepo.On("Get", mock.Anything, pack.ID()).Return(pack, nil).Once()
	f.orderRepo.On("ExistsWithCode", mock.Anything, mock.AnythingOfType("order.Code")).
		Return(false, nil).Once()
	f.orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.cartStore.On("Clear", mock.Anything, customerID).Return(nil).Once()
	f.notifier.On("NotifyNewOrder", mock.Anything, mock.AnythingOfType("order.DispatchNotice")).
		Return(nil).Once()
	f.sessionStore.On("Delete", mock.Anything, customerID).Return(nil).Once()

	result, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, result.Committed)

	// 11.90 - (10 global + 10 promo) clamps to zero, fee still applies.
	assert.Equal(t, "11.90", result.Committed.Subtotal.String())
	assert.Equal(t, "20.00", result.Committed.Discount.String())
	assert.Equal(t, "20.00", result.Committed.Total.String())
}

func TestSubmitCheckoutStepCommandHandler_Handle_CommitInsufficientStock(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, _ := commands.NewSubmitCheckoutStepCommand(customerID, "NON")

	bottle := newTestProduct(t, "Bouteille 1.0L", "2.50", 1, true)
	pack := newTestProduct(t, "Pack 6x0.5L", "6.90", 30, true)

	f := newCommitFixture(t, newTestPolicy(t, false))
	session := sessionAwaitingPromo(t, customerID, "Rodez", "12,5")

	f.sessionStore.On("Get", mock.Anything, customerID).Return(session, nil).Once()
	f.cartStore.On("Get", mock.Anything, customerID).
		Return(cartFor(t, customerID, bottle, pack), nil).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("ProductRepository").Return(f.productRepo).Once()
	f.uow.On("OrderRepository").Return(f.orderRepo).Once()
	f.uow.On("FeeScheduleRepository").Return(f.feeRepo).Once()
	f.feeRepo.On("Get", mock.Anything).Return(newTestSchedule(t), nil).Once()
	f.productRepo.On("Get", mock.Anything, bottle.ID()).Return(bottle, nil).Once()
	f.productRepo.On("Get", mock.Anything, pack.ID()).Return(pack, nil).Once()
	f.orderRepo.On("ExistsWithCode", mock.Anything, mock.AnythingOfType("order.Code")).
		Return(false, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.sessionStore.On("Delete", mock.Anything, customerID).Return(nil).Once()

	_, err := f.handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, product.ErrInsufficientStock)

	var stockErr *product.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Bouteille 1.0L", stockErr.ProductName)
	assert.Equal(t, 2, stockErr.Requested)
	assert.Equal(t, 1, stockErr.Available)

	// The cart survives a failed commit; only the session is discarded.
	f.cartStore.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
	f.orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.sessionStore.AssertExpectations(t)
}

func TestSubmitCheckoutStepCommandHandler_Handle_CommitUncoveredZone(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, _ := commands.NewSubmitCheckoutStepCommand(customerID, "NON")

	bottle := newTestProduct(t, "Bouteille 1.0L", "2.50", 50, true)

	f := newCommitFixture(t, newTestPolicy(t, false))
	session := sessionAwaitingPromo(t, customerID, "Rodez", "75")

	f.sessionStore.On("Get", mock.Anything, customerID).Return(session, nil).Once()
	f.cartStore.On("Get", mock.Anything, customerID).
		Return(cartFor(t, customerID, bottle), nil).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("ProductRepository").Return(f.productRepo).Once()
	f.uow.On("OrderRepository").Return(f.orderRepo).Once()
	f.uow.On("FeeScheduleRepository").Return(f.feeRepo).Once()
	f.feeRepo.On("Get", mock.Anything).Return(newTestSchedule(t), nil).Once()
	f.productRepo.On("Get", mock.Anything, bottle.ID()).Return(bottle, nil).Once()
	f.orderRepo.On("ExistsWithCode", mock.Anything, mock.AnythingOfType("order.Code")).
		Return(false, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.sessionStore.On("Delete", mock.Anything, customerID).Return(nil).Once()

	_, err := f.handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, pricing.ErrZoneNotCovered)
	f.cartStore.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
	f.sessionStore.AssertExpectations(t)
}

func TestSubmitCheckoutStepCommandHandler_Handle_CommitEmptyCart(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, _ := commands.NewSubmitCheckoutStepCommand(customerID, "NON")

	emptyCart, err := cart.NewCart(customerID)
	require.NoError(t, err)

	f := newCommitFixture(t, newTestPolicy(t, false))
	session := sessionAwaitingPromo(t, customerID, "Rodez", "12,5")

	f.sessionStore.On("Get", mock.Anything, customerID).Return(session, nil).Once()
	f.cartStore.On("Get", mock.Anything, customerID).Return(emptyCart, nil).Once()
	f.sessionStore.On("Delete", mock.Anything, customerID).Return(nil).Once()

	_, err = f.handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCartIsEmpty)
	f.sessionStore.AssertExpectations(t)
}

func TestSubmitCheckoutStepCommandHandler_Handle_FreeZoneSkipsFee(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, _ := commands.NewSubmitCheckoutStepCommand(customerID, "NON")

	bottle := newTestProduct(t, "Bouteille 1.0L", "2.50", 50, true)

	f := newCommitFixture(t, newTestPolicy(t, false))
	session := sessionAwaitingPromo(t, customerID, "millau", "3")

	f.sessionStore.On("Get", mock.Anything, customerID).Return(session, nil).Once()
	f.cartStore.On("Get", mock.Anything, customerID).
		Return(cartFor(t, customerID, bottle), nil).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("ProductRepository").Return(f.productRepo).Once()
	f.uow.On("OrderRepository").Return(f.orderRepo).Once()
	f.uow.On("FeeScheduleRepository").Return(f.feeRepo).Once()
	f.feeRepo.On("Get", mock.Anything).Return(newTestSchedule(t), nil).Once()
	f.productRepo.On("Get", mock.Anything, bottle.ID()).Return(bottle, nil).Once()
	f.orderRepo.On("ExistsWithCode", mock.Anything, mock.AnythingOfType("order.Code")).
		Return(false, nil).Once()
	f.orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.cartStore.On("Clear", mock.Anything, customerID).Return(nil).Once()
	f.notifier.On("NotifyNewOrder", mock.Anything, mock.AnythingOfType("order.DispatchNotice")).
		Return(nil).Once()
	f.sessionStore.On("Delete", mock.Anything, customerID).Return(nil).Once()

	result, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, result.Committed)
	assert.Equal(t, "0.00", result.Committed.DeliveryFee.String())
	assert.Equal(t, "5.00", result.Committed.Total.String())
}

func TestSubmitCheckoutStepCommandHandler_Handle_NotifierFailureDoesNotFailCommit(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, _ := commands.NewSubmitCheckoutStepCommand(customerID, "NON")

	bottle := newTestProduct(t, "Bouteille 1.0L", "2.50", 50, true)

	f := newCommitFixture(t, newTestPolicy(t, false))
	session := sessionAwaitingPromo(t, customerID, "Rodez", "12,5")

	f.sessionStore.On("Get", mock.Anything, customerID).Return(session, nil).Once()
	f.cartStore.On("Get", mock.Anything, customerID).
		Return(cartFor(t, customerID, bottle), nil).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("ProductRepository").Return(f.productRepo).Once()
	f.uow.On("OrderRepository").Return(f.orderRepo).Once()
	f.uow.On("FeeScheduleRepository").Return(f.feeRepo).Once()
	f.feeRepo.On("Get", mock.Anything).Return(newTestSchedule(t), nil).Once()
	f.productRepo.On("Get", mock.Anything, bottle.ID()).Return(bottle, nil).Once()
	f.orderRepo.On("ExistsWithCode", mock.Anything, mock.AnythingOfType("order.Code")).
		Return(false, nil).Once()
	f.orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.cartStore.On("Clear", mock.Anything, customerID).Return(nil).Once()
	f.notifier.On("NotifyNewOrder", mock.Anything, mock.AnythingOfType("order.DispatchNotice")).
		Return(assert.AnError).Once()
	f.sessionStore.On("Delete", mock.Anything, customerID).Return(nil).Once()

	result, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, result.Committed)
}
