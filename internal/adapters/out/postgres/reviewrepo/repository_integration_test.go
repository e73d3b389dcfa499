package reviewrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/bossnaboss212/dernier-occase/internal/adapters/out/postgres/reviewrepo"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/review"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// ReviewRepositoryIntegrationTestSuite provides integration tests for
// ReviewRepository using PostgreSQL containers.
type ReviewRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *reviewrepo.GormReviewRepository
	tracker    *MockAggregateTracker
}

func (suite *ReviewRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&reviewrepo.ReviewDTO{}))
}

func (suite *ReviewRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE reviews").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = reviewrepo.NewGormReviewRepository(suite.db, suite.tracker)
}

func (suite *ReviewRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestAdd_ValidReview_Success() {
	ctx := context.Background()

	aggregate, err := review.NewReview(kernel.NewUUID(), kernel.NewUUID(), 5, "Livraison rapide", time.Now())
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()

	err = suite.repository.Add(ctx, aggregate)
	suite.Require().NoError(err)

	var dto reviewrepo.ReviewDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", aggregate.ID().Bytes()).Error)
	suite.Equal(5, dto.Rating)
	suite.Equal("Livraison rapide", dto.Comment)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestAdd_SameCustomerCanReviewRepeatedly() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	for rating := 3; rating <= 5; rating++ {
		aggregate, err := review.NewReview(kernel.NewUUID(), customerID, rating, "", time.Now())
		suite.Require().NoError(err)

		suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
		suite.Require().NoError(suite.repository.Add(ctx, aggregate))
	}

	var count int64
	suite.Require().NoError(
		suite.db.Model(&reviewrepo.ReviewDTO{}).Where("customer_id = ?", customerID.Bytes()).Count(&count).Error,
	)
	suite.Equal(int64(3), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestAdd_UnconstructedReview_ReturnsError() {
	ctx := context.Background()

	// No expectations on tracker since operation should fail
	err := suite.repository.Add(ctx, &review.Review{})
	suite.Require().Error(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&reviewrepo.ReviewDTO{}).Count(&count).Error)
	suite.Equal(int64(0), count)

	suite.tracker.AssertExpectations(suite.T())
}

func TestReviewRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewRepositoryIntegrationTestSuite))
}
