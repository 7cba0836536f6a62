package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"foodservice/internal/adapters/out/postgres/orderrepo"
	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/core/domain/model/order"
	"foodservice/internal/pkg/errs"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/stretchr/testify/suite"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GormOrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *GormOrderRepositoryTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GormOrderRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormOrderRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GormOrderRepositoryTestSuite) newOrder(createdAt time.Time) *order.Order {
	settlement, err := order.DefaultSettlementPolicy().Calculate(100, 20)
	suite.Require().NoError(err)

	ord, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		settlement, createdAt,
	)
	suite.Require().NoError(err)
	return ord
}

func (suite *GormOrderRepositoryTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	createdAt := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	ord := suite.newOrder(createdAt)

	err := suite.repo.Add(ctx, ord)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, ord.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(ord))
	suite.Equal(order.Initial, loaded.Status())
	suite.True(loaded.CustomerID().IsEqual(ord.CustomerID()))
	suite.InDelta(8.0, loaded.Settlement().TotalAdminShare, 1e-9)
	suite.InDelta(112.0, loaded.Settlement().TotalRestaurantShare, 1e-9)
	suite.True(loaded.CreatedAt().Equal(createdAt))
}

func (suite *GormOrderRepositoryTestSuite) TestGet_NotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormOrderRepositoryTestSuite) TestUpdateStatusIf_AppliesOnMatch() {
	ctx := context.Background()
	createdAt := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	ord := suite.newOrder(createdAt)
	suite.Require().NoError(suite.repo.Add(ctx, ord))

	suite.True(ord.AutoAdvance(createdAt.Add(10 * time.Minute)))

	err := suite.repo.UpdateStatusIf(ctx, ord, order.Initial)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, ord.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Preparing, loaded.Status())
}

func (suite *GormOrderRepositoryTestSuite) TestUpdateStatusIf_ConflictFails() {
	ctx := context.Background()
	createdAt := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	ord := suite.newOrder(createdAt)
	suite.Require().NoError(suite.repo.Add(ctx, ord))

	// Another writer advanced the order first.
	suite.True(ord.AutoAdvance(createdAt.Add(10 * time.Minute)))
	suite.Require().NoError(suite.repo.UpdateStatusIf(ctx, ord, order.Initial))

	// A second write expecting the initial status must fail.
	err := suite.repo.UpdateStatusIf(ctx, ord, order.Initial)
	suite.Require().ErrorIs(err, errs.ErrPreconditionFailed)

	loaded, err := suite.repo.Get(ctx, ord.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Preparing, loaded.Status())
}

func (suite *GormOrderRepositoryTestSuite) TestUpdateStatusIf_MissingOrderFails() {
	ord := suite.newOrder(time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC))
	err := suite.repo.UpdateStatusIf(context.Background(), ord, order.Initial)
	suite.Require().ErrorIs(err, errs.ErrPreconditionFailed)
}

func TestGormOrderRepositoryTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(GormOrderRepositoryTestSuite))
}
