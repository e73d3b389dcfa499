package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bossnaboss212/dernier-occase/internal/adapters/out/postgres/productrepo"
	"github.com/bossnaboss212/dernier-occase/internal/core/application/usecases/queries"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/product"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetCatalogQueryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	productRepo *productrepo.GormProductRepository
	handler     queries.GetCatalogQueryHandler
}

func (suite *GetCatalogQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&productrepo.ProductDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetCatalogQueryHandler(db)
	suite.productRepo = productrepo.NewGormProductRepository(db, &mockAggregateTracker{})
}

func (suite *GetCatalogQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetCatalogQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE products CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetCatalogQueryHandlerTestSuite) seedProduct(name, price string, stock int, active bool) *product.Product {
	money, err := kernel.NewMoneyFromString(price)
	suite.Require().NoError(err)

	aggregate, err := product.NewProduct(kernel.NewUUID(), name, money, stock)
	suite.Require().NoError(err)

	if !active {
		aggregate.Deactivate()
	}

	err = suite.productRepo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)

	return aggregate
}

func (suite *GetCatalogQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetCatalogQuery(false)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetCatalogQueryHandlerTestSuite) TestHandle_ActivePartition_ReturnsOnlyActive() {
	suite.seedProduct("Bouteille 1.0L", "2.50", 50, true)
	suite.seedProduct("Pack 6x0.5L", "6.90", 30, true)
	suite.seedProduct("Pod arôme citron", "3.20", 100, false)

	query := queries.NewGetCatalogQuery(false)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	for _, p := range result {
		suite.True(p.IsActive)
	}
}

func (suite *GetCatalogQueryHandlerTestSuite) TestHandle_InactivePartition_ReturnsOnlyInactive() {
	suite.seedProduct("Bouteille 1.0L", "2.50", 50, true)
	retired := suite.seedProduct("Pod arôme citron", "3.20", 100, false)

	query := queries.NewGetCatalogQuery(true)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(retired.ID()))
	suite.False(result[0].IsActive)
}

func (suite *GetCatalogQueryHandlerTestSuite) TestHandle_MapsAllFields() {
	bottle := suite.seedProduct("Bouteille 1.0L", "2.50", 50, true)

	query := queries.NewGetCatalogQuery(false)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(bottle.ID()))
	suite.Equal("Bouteille 1.0L", result[0].Name)
	suite.Equal("2.50", result[0].Price.String())
	suite.Equal(50, result[0].StockQty)
	suite.True(result[0].IsActive)
}

func (suite *GetCatalogQueryHandlerTestSuite) TestHandle_SortedByName() {
	suite.seedProduct("Pod arôme citron", "3.20", 100, true)
	suite.seedProduct("Bouteille 1.0L", "2.50", 50, true)
	suite.seedProduct("Pack 6x0.5L", "6.90", 30, true)

	query := queries.NewGetCatalogQuery(false)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("Bouteille 1.0L", result[0].Name)
	suite.Equal("Pack 6x0.5L", result[1].Name)
	suite.Equal("Pod arôme citron", result[2].Name)
}

func (suite *GetCatalogQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetCatalogQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetCatalogQuery constructor")
}

func (suite *GetCatalogQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	for i := range 50 {
		suite.seedProduct(fmt.Sprintf("Bouteille %02d", i), "2.50", 10, true)
	}

	query := queries.NewGetCatalogQuery(false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestGetCatalogQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCatalogQueryHandlerTestSuite))
}
