package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/bossnaboss212/dernier-occase/internal/core/application/usecases/commands"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/account"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/cart"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/checkout"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/order"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/pricing"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/product"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/review"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/treasury"
	"github.com/bossnaboss212/dernier-occase/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Shared mocks for the command handler tests. Each handler test wires only
// the expectations it needs; methods outside a scenario stay unregistered so
// an unexpected call fails the test.

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}
func (m *MockProductRepository) GetByName(ctx context.Context, name string) (*product.Product, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}
func (m *MockProductRepository) Debit(ctx context.Context, id kernel.UUID, qty int) error {
	args := m.Called(ctx, id, qty)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) UpdateIfStatusIn(
	ctx context.Context, o *order.Order, current ...order.Status,
) error {
	args := m.Called(ctx, o, current)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetByCode(ctx context.Context, code order.Code) (*order.Order, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) ExistsWithCode(ctx context.Context, code order.Code) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}
func (m *MockOrderRepository) CountDeliveredForCustomer(
	ctx context.Context, customerID kernel.UUID,
) (int, error) {
	args := m.Called(ctx, customerID)
	return args.Int(0), args.Error(1)
}

type MockTreasuryRepository struct{ mock.Mock }

func (m *MockTreasuryRepository) Add(ctx context.Context, e *treasury.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

type MockFeeScheduleRepository struct{ mock.Mock }

func (m *MockFeeScheduleRepository) Get(ctx context.Context) (*pricing.Schedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Schedule), args.Error(1)
}
func (m *MockFeeScheduleRepository) Replace(ctx context.Context, s *pricing.Schedule) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, r *review.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

type MockCartStore struct{ mock.Mock }

func (m *MockCartStore) Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}
func (m *MockCartStore) AddItem(ctx context.Context, customerID, productID kernel.UUID, qty int) error {
	args := m.Called(ctx, customerID, productID, qty)
	return args.Error(0)
}
func (m *MockCartStore) Clear(ctx context.Context, customerID kernel.UUID) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

type MockSessionStore struct{ mock.Mock }

func (m *MockSessionStore) Get(ctx context.Context, customerID kernel.UUID) (*checkout.Session, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.Session), args.Error(1)
}
func (m *MockSessionStore) Save(ctx context.Context, session *checkout.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}
func (m *MockSessionStore) Delete(ctx context.Context, customerID kernel.UUID) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}
func (m *MockSessionStore) DeleteIdleBefore(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

type MockRoleDirectory struct{ mock.Mock }

func (m *MockRoleDirectory) RoleOf(ctx context.Context, customerID kernel.UUID) (account.Role, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(account.Role), args.Error(1)
}
func (m *MockRoleDirectory) SetRole(ctx context.Context, customerID kernel.UUID, role account.Role) error {
	args := m.Called(ctx, customerID, role)
	return args.Error(0)
}

type MockDispatchNotifier struct{ mock.Mock }

func (m *MockDispatchNotifier) NotifyNewOrder(ctx context.Context, notice order.DispatchNotice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}

type MockProductUoW struct{ mock.Mock }

func (m *MockProductUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockProductUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockProductUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockProductUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockSettlementUoW struct{ mock.Mock }

func (m *MockSettlementUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockSettlementUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockSettlementUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockSettlementUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockSettlementUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}
func (m *MockSettlementUoW) TreasuryRepository() ports.TreasuryRepository {
	args := m.Called()
	return args.Get(0).(ports.TreasuryRepository)
}

type MockSettlementUoWFactory struct{ mock.Mock }

func (m *MockSettlementUoWFactory) Create() commands.SettlementUoW {
	args := m.Called()
	return args.Get(0).(commands.SettlementUoW)
}

type MockCheckoutUoW struct{ mock.Mock }

func (m *MockCheckoutUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCheckoutUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCheckoutUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCheckoutUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}
func (m *MockCheckoutUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockCheckoutUoW) FeeScheduleRepository() ports.FeeScheduleRepository {
	args := m.Called()
	return args.Get(0).(ports.FeeScheduleRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

type MockFeeScheduleUoW struct{ mock.Mock }

func (m *MockFeeScheduleUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockFeeScheduleUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockFeeScheduleUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockFeeScheduleUoW) FeeScheduleRepository() ports.FeeScheduleRepository {
	args := m.Called()
	return args.Get(0).(ports.FeeScheduleRepository)
}

type MockFeeScheduleUoWFactory struct{ mock.Mock }

func (m *MockFeeScheduleUoWFactory) Create() commands.FeeScheduleUoW {
	args := m.Called()
	return args.Get(0).(commands.FeeScheduleUoW)
}

type MockReviewUoW struct{ mock.Mock }

func (m *MockReviewUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReviewUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReviewUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReviewUoW) ReviewRepository() ports.ReviewRepository {
	args := m.Called()
	return args.Get(0).(ports.ReviewRepository)
}

type MockReviewUoWFactory struct{ mock.Mock }

func (m *MockReviewUoWFactory) Create() commands.ReviewUoW {
	args := m.Called()
	return args.Get(0).(commands.ReviewUoW)
}

// Shared domain builders.

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustDistance(t *testing.T, km float64) kernel.Distance {
	t.Helper()
	d, err := kernel.NewDistance(km)
	require.NoError(t, err)
	return d
}

func newTestProduct(t *testing.T, name, price string, stockQty int, active bool) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(kernel.NewUUID(), name, mustMoney(t, price), stockQty, active)
	require.NoError(t, err)
	return p
}

func newTestSchedule(t *testing.T) *pricing.Schedule {
	t.Helper()

	tiers := make([]pricing.Tier, 0, 3)
	for _, spec := range []struct {
		maxKm float64
		fee   string
	}{{20, "20.00"}, {30, "30.00"}, {50, "50.00"}} {
		tier, err := pricing.NewTier(spec.maxKm, mustMoney(t, spec.fee))
		require.NoError(t, err)
		tiers = append(tiers, tier)
	}

	schedule, err := pricing.NewSchedule("Millau", tiers, kernel.ZeroMoney())
	require.NoError(t, err)
	return schedule
}

func newTestPolicy(t *testing.T, globalActive bool) pricing.DiscountPolicy {
	t.Helper()
	policy, err := pricing.NewDiscountPolicy(
		globalActive, mustMoney(t, "10.00"),
		"TRESORERIE10", mustMoney(t, "10.00"),
		false, 10, mustMoney(t, "10.00"),
	)
	require.NoError(t, err)
	return policy
}

func newPendingOrder(t *testing.T, code order.Code) *order.Order {
	t.Helper()

	destination, err := order.NewDestination("12 rue des Lilas", "Rodez", mustDistance(t, 12.5))
	require.NoError(t, err)

	line, err := order.NewLine(kernel.NewUUID(), "Bouteille 1.0L", mustMoney(t, "2.50"), 2)
	require.NoError(t, err)

	totals, err := order.NewTotals(mustMoney(t, "5.00"), kernel.ZeroMoney(), mustMoney(t, "20.00"))
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), code, kernel.NewUUID(), destination, "",
		[]order.Line{line}, totals, time.Now(),
	)
	require.NoError(t, err)
	return o
}

func newOrderInStatus(t *testing.T, code order.Code, status order.Status) *order.Order {
	t.Helper()

	o := newPendingOrder(t, code)
	switch status {
	case order.Assigned:
		require.NoError(t, o.Assign(kernel.NewUUID()))
	case order.OutForDelivery:
		require.NoError(t, o.Assign(kernel.NewUUID()))
		require.NoError(t, o.StartDelivery())
	case order.Delivered:
		require.NoError(t, o.Deliver(time.Now()))
	case order.Cancelled:
		require.NoError(t, o.Cancel())
	case order.Pending, order.Unknown:
	}
	return o
}
