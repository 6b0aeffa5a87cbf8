package queries_test

import (
	"context"
	"testing"
	"time"

	"shiptrack/internal/adapters/out/postgres/orderrepo"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrdersBySenderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrdersBySenderQueryHandler
}

func (suite *GetOrdersBySenderQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetOrdersBySenderQueryHandler(db)
}

func (suite *GetOrdersBySenderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrdersBySenderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrdersBySenderQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	sender, err := kernel.NewParty("sender-without-orders")
	suite.Require().NoError(err)

	query, err := queries.NewGetOrdersBySenderQuery(sender)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrdersBySenderQueryHandlerTestSuite) TestHandle_ReturnsOnlySendersOrdersInInsertionOrder() {
	first := createTestOrder(suite.T(), "sender-a", "receiver-a")
	second := createTestOrder(suite.T(), "sender-a", "receiver-b")
	other := createTestOrder(suite.T(), "sender-b", "receiver-a")
	third := createTestOrder(suite.T(), "sender-a", "receiver-c")
	saveOrders(suite.T(), suite.db, first, second, other, third)

	sender, err := kernel.NewParty("sender-a")
	suite.Require().NoError(err)

	query, err := queries.NewGetOrdersBySenderQuery(sender)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.True(result[0].ID.IsEqual(first.ID()))
	suite.True(result[1].ID.IsEqual(second.ID()))
	suite.True(result[2].ID.IsEqual(third.ID()))
	for _, response := range result {
		suite.Equal("sender-a", response.Sender.String())
	}
}

func (suite *GetOrdersBySenderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrdersBySenderQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetOrdersBySenderQuery constructor")
}

func TestGetOrdersBySenderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersBySenderQueryHandlerTestSuite))
}
