package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "github.com/bossnaboss212/dernier-occase/internal/adapters/out/postgres"
	"github.com/bossnaboss212/dernier-occase/internal/adapters/out/postgres/feeschedulerepo"
	"github.com/bossnaboss212/dernier-occase/internal/adapters/out/postgres/orderrepo"
	"github.com/bossnaboss212/dernier-occase/internal/adapters/out/postgres/productrepo"
	"github.com/bossnaboss212/dernier-occase/internal/adapters/out/postgres/reviewrepo"
	"github.com/bossnaboss212/dernier-occase/internal/adapters/out/postgres/treasuryrepo"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/order"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/product"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/treasury"
	"github.com/bossnaboss212/dernier-occase/internal/core/ports"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
// The settlement flow drives the multi-repository cases: the status flip, the
// stock debits and the ledger entry must land or vanish together.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&treasuryrepo.EntryDTO{},
		&feeschedulerepo.FeeScheduleDTO{},
		&reviewrepo.ReviewDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE products, orders, treasury_entries, fee_schedules, reviews").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	// Create multiple unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Verify instances are different
	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	// Verify both instances provide access to repositories
	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.ProductRepository(), "First instance should provide product repository")
	suite.NotNil(uow2.TreasuryRepository(), "Second instance should provide treasury repository")
	suite.NotNil(uow2.FeeScheduleRepository(), "Second instance should provide fee schedule repository")
	suite.NotNil(uow2.ReviewRepository(), "Second instance should provide review repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Test multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	// Test commit
	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	// Test rollback on new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test commit without begin
	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	// Test rollback without begin
	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(kernel.NewUUID())

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add order within transaction
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order exists within transaction
	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(retrievedOrder.ID()))

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify order persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(retrievedOrder.ID()))
}

// TestUnitOfWork_SettlementTransaction verifies the full settlement write set:
// status flip, stock debit and sale entry commit atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SettlementTransaction() {
	ctx := context.Background()

	// Seed a product and an order heading out for delivery.
	testProduct := createTestProduct("Bouteille 1.0L", "2.50", 50)
	testOrder := createOrderForProduct(kernel.NewUUID(), testProduct, 2)

	seed := suite.factory.Create()
	suite.Require().NoError(seed.ProductRepository().Add(ctx, testProduct))
	suite.Require().NoError(seed.OrderRepository().Add(ctx, testOrder))

	// Settle in one transaction.
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(testOrder.Deliver(time.Now()))
	err := uow.OrderRepository().UpdateIfStatusIn(
		ctx, testOrder,
		order.Pending, order.Assigned, order.OutForDelivery, order.Cancelled,
	)
	suite.Require().NoError(err)

	err = uow.ProductRepository().Debit(ctx, testProduct.ID(), 2)
	suite.Require().NoError(err)

	entry := createSaleEntry(testOrder)
	suite.Require().NoError(uow.TreasuryRepository().Add(ctx, entry))

	suite.Require().NoError(uow.Commit(ctx))

	// Verify every leg of the settlement landed.
	verify := suite.factory.Create()

	settledOrder, err := verify.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, settledOrder.Status())
	suite.NotNil(settledOrder.DeliveredAt())

	debitedProduct, err := verify.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(48, debitedProduct.StockQty())

	var ledgerCount int64
	suite.Require().NoError(suite.db.Model(&treasuryrepo.EntryDTO{}).Count(&ledgerCount).Error)
	suite.Equal(int64(1), ledgerCount)
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()

	testProduct := createTestProduct("Pack 6x0.5L", "6.90", 30)
	seed := suite.factory.Create()
	suite.Require().NoError(seed.ProductRepository().Add(ctx, testProduct))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	// Debit stock and write a ledger entry within the transaction.
	suite.Require().NoError(uow.ProductRepository().Debit(ctx, testProduct.ID(), 10))

	entry, err := treasury.NewEntry(
		kernel.NewUUID(), treasury.KindAdjustment, mustMoney("5.00"), "", "till correction", time.Now(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.TreasuryRepository().Add(ctx, entry))

	// Rollback transaction
	suite.Require().NoError(uow.Rollback(ctx))

	// Stock is back to its seeded value and the ledger is empty.
	verify := suite.factory.Create()
	untouched, err := verify.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(30, untouched.StockQty())

	var ledgerCount int64
	suite.Require().NoError(suite.db.Model(&treasuryrepo.EntryDTO{}).Count(&ledgerCount).Error)
	suite.Equal(int64(0), ledgerCount)
}

// TestUnitOfWork_StatusRace verifies that a stale settlement attempt after a
// committed one fails with a version conflict instead of double-settling.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_StatusRace() {
	ctx := context.Background()

	testOrder := createTestOrder(kernel.NewUUID())
	seed := suite.factory.Create()
	suite.Require().NoError(seed.OrderRepository().Add(ctx, testOrder))

	// Both staff members load the same pending order.
	first, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	settlementStatuses := []order.Status{order.Pending, order.Assigned, order.OutForDelivery, order.Cancelled}

	// First settlement commits.
	uow1 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(first.Deliver(time.Now()))
	suite.Require().NoError(uow1.OrderRepository().UpdateIfStatusIn(ctx, first, settlementStatuses...))
	suite.Require().NoError(uow1.Commit(ctx))

	// Second settlement loses the compare-and-set.
	uow2 := suite.factory.Create()
	suite.Require().NoError(uow2.Begin(ctx))
	suite.Require().NoError(second.Deliver(time.Now()))
	err = uow2.OrderRepository().UpdateIfStatusIn(ctx, second, settlementStatuses...)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
	suite.Require().NoError(uow2.Rollback(ctx))
}

// TestUnitOfWork_RepositoryWithoutTransaction verifies repositories work on the
// main connection when no transaction is open.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryWithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testProduct := createTestProduct("Pod arôme citron", "3.20", 100)

	// No Begin: the write goes straight to the database.
	err := uow.ProductRepository().Add(ctx, testProduct)
	suite.Require().NoError(err)

	retrieved, err := suite.factory.Create().ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal("Pod arôme citron", retrieved.Name())
}

func createTestProduct(name, price string, stock int) *product.Product {
	testProduct, _ := product.NewProduct(kernel.NewUUID(), name, mustMoney(price), stock)
	return testProduct
}

// createTestOrder builds a pending order for the customer with a single
// placeholder line.
func createTestOrder(customerID kernel.UUID) *order.Order {
	distance, _ := kernel.NewDistance(12)
	destination, _ := order.NewDestination("12 rue des Lilas", "Rodez", distance)
	line, _ := order.NewLine(kernel.NewUUID(), "Bouteille 1.0L", mustMoney("2.50"), 2)
	totals, _ := order.NewTotals(mustMoney("5.00"), kernel.ZeroMoney(), mustMoney("20.00"))
	testOrder, _ := order.NewOrder(
		kernel.NewUUID(), order.GenerateCode(), customerID, destination, "",
		[]order.Line{line}, totals, time.Now(),
	)
	return testOrder
}

// createOrderForProduct builds an order out for delivery whose single line
// points at the product, so settlement debits its stock.
func createOrderForProduct(customerID kernel.UUID, p *product.Product, qty int) *order.Order {
	distance, _ := kernel.NewDistance(12)
	destination, _ := order.NewDestination("12 rue des Lilas", "Rodez", distance)
	line, _ := order.NewLine(p.ID(), p.Name(), p.Price(), qty)
	subtotal, _ := p.Price().MulInt(qty)
	totals, _ := order.NewTotals(subtotal, kernel.ZeroMoney(), mustMoney("20.00"))

	courierID := kernel.NewUUID()
	testOrder, _ := order.RestoreOrder(
		kernel.NewUUID(), order.GenerateCode(), customerID, &courierID, destination, "",
		[]order.Line{line}, totals, order.OutForDelivery, time.Now(), nil,
	)
	return testOrder
}

func createSaleEntry(o *order.Order) *treasury.Entry {
	entry, _ := treasury.NewEntry(
		kernel.NewUUID(), treasury.KindSale, o.Totals().Total(), o.Code().String(), "", time.Now(),
	)
	return entry
}

func mustMoney(s string) kernel.Money {
	money, _ := kernel.NewMoneyFromString(s)
	return money
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
