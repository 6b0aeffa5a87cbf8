package postgres_test

import (
	"context"
	"testing"
	"time"

	"shiptrack/internal/adapters/out/postgres"
	"shiptrack/internal/adapters/out/postgres/orderrepo"
	"shiptrack/internal/adapters/out/postgres/requestrepo"
	"shiptrack/internal/adapters/out/postgres/settingsrepo"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/domain/model/request"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgrescontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgrescontainer.Run(ctx,
		"postgres:15-alpine",
		postgrescontainer.WithDatabase("testdb"),
		postgrescontainer.WithUsername("testuser"),
		postgrescontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&requestrepo.RequestDTO{},
		&settingsrepo.SettingsDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, pending_requests, settings").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	sender, err := kernel.NewParty("sender-1")
	suite.Require().NoError(err)
	receiver, err := kernel.NewParty("receiver-1")
	suite.Require().NoError(err)
	source, err := kernel.NewCoordinate(-23_464_796, -46_915_496)
	suite.Require().NoError(err)
	destination, err := kernel.NewCoordinate(-23_466_800, -46_915_960)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), sender, receiver, source, destination,
		time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()
	pending, err := request.NewPendingRequest(
		kernel.NewUUID(), testOrder.ID(), request.DeliverOrder, testOrder.Sender())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.RequestRepository().Add(ctx, pending))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	restored, err := verify.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(testOrder.ID()))

	restoredRequest, err := verify.RequestRepository().Get(ctx, pending.ID())
	suite.Require().NoError(err)
	suite.True(restoredRequest.ID().IsEqual(pending.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	_, err := verify.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSettings_SeedAndUpdate() {
	ctx := context.Background()

	seedRepo := settingsrepo.NewGormSettingsRepository(suite.db)
	suite.Require().NoError(seedRepo.Seed(ctx, 400))

	// Seeding again must not overwrite an existing row.
	suite.Require().NoError(seedRepo.Seed(ctx, 999))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	threshold, err := uow.SettingsRepository().GetDistanceThreshold(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(400), threshold)

	suite.Require().NoError(uow.SettingsRepository().SetDistanceThreshold(ctx, 750))
	suite.Require().NoError(uow.Commit(ctx))

	threshold, err = seedRepo.GetDistanceThreshold(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(750), threshold)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().Error(uow.Commit(context.Background()))
	suite.Require().Error(uow.Rollback(context.Background()))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
