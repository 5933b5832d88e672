package queries_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetUserOrdersQueryHandlerTestSuite exercises the user order list against a
// real PostgreSQL instance: the list must contain exactly the orders where the
// acting user is the buyer or the seller, newest first.
type GetUserOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetUserOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetUserOrdersQueryHandlerTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.handler = queries.NewGetUserOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetUserOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetUserOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetUserOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetUserOrdersQuery(suite.createActor("Awa Diop", "+221770000001"))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetUserOrdersQueryHandlerTestSuite) TestHandle_ReturnsBuyerAndSellerSides() {
	ctx := context.Background()

	actor := suite.createActor("Awa Diop", "+221770000001")
	other := suite.createActor("Moussa Ndiaye", "+221770000002")

	purchase1 := suite.createOrderFor(actor, other)
	purchase2 := suite.createOrderFor(actor, other)
	sale := suite.createOrderFor(other, actor)
	unrelated1 := suite.createOrderFor(other, suite.createActor("Ibrahima Fall", "+221770000003"))
	unrelated2 := suite.createOrderFor(suite.createActor("Ibrahima Fall", "+221770000003"), other)

	for _, o := range []*order.Order{purchase1, purchase2, sale, unrelated1, unrelated2} {
		suite.Require().NoError(suite.orderRepo.Add(ctx, o))
	}

	query, err := queries.NewGetUserOrdersQuery(actor)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	resultIDs := make(map[kernel.UUID]bool)
	for _, r := range result {
		resultIDs[r.ID] = true
	}
	suite.True(resultIDs[purchase1.ID()])
	suite.True(resultIDs[purchase2.ID()])
	suite.True(resultIDs[sale.ID()])
	suite.False(resultIDs[unrelated1.ID()])
	suite.False(resultIDs[unrelated2.ID()])
}

func (suite *GetUserOrdersQueryHandlerTestSuite) TestHandle_MapsRowFields() {
	ctx := context.Background()

	buyer := suite.createActor("Awa Diop", "+221770000001")
	seller := suite.createActor("Moussa Ndiaye", "+221770000002")

	testOrder := suite.createOrderFor(buyer, seller)
	suite.Require().NoError(testOrder.MarkPaymentSent())
	suite.Require().NoError(suite.orderRepo.Add(ctx, testOrder))

	query, err := queries.NewGetUserOrdersQuery(buyer)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	row := result[0]
	suite.Equal(testOrder.ID(), row.ID)
	suite.Equal(testOrder.OrderNumber(), row.OrderNumber)
	suite.Equal(testOrder.ListingTitle(), row.ListingTitle)
	suite.Equal(testOrder.ListingImageRef(), row.ListingImageRef)
	suite.Equal(buyer.FullName(), row.BuyerName)
	suite.Equal(seller.FullName(), row.SellerName)
	suite.Equal(testOrder.TotalAmount(), row.TotalAmount)
	suite.Equal(order.PaymentConfirming, row.Status)
	suite.WithinDuration(testOrder.CreatedAt(), row.CreatedAt, time.Second)
}

func (suite *GetUserOrdersQueryHandlerTestSuite) TestHandle_NewestFirst() {
	ctx := context.Background()

	actor := suite.createActor("Awa Diop", "+221770000001")
	seller := suite.createActor("Moussa Ndiaye", "+221770000002")

	created := make([]*order.Order, 3)
	for i := range created {
		o := suite.createOrderFor(actor, seller)
		suite.Require().NoError(suite.orderRepo.Add(ctx, o))
		created[i] = o

		// Keep created_at strictly increasing across rows.
		time.Sleep(5 * time.Millisecond)
	}

	query, err := queries.NewGetUserOrdersQuery(actor)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	for i := range created {
		suite.Equal(created[len(created)-1-i].ID(), result[i].ID)
	}
}

func (suite *GetUserOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetUserOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *GetUserOrdersQueryHandlerTestSuite) createActor(fullName, phone string) account.Actor {
	actor, err := account.NewActor(
		kernel.NewUUID(), fullName, phone, "Dakar", account.Individual, false)
	suite.Require().NoError(err)
	return actor
}

func (suite *GetUserOrdersQueryHandlerTestSuite) createOrderFor(buyer, seller account.Actor) *order.Order {
	article := order.ArticleSnapshot{
		ListingID:         kernel.NewUUID(),
		Title:             "Robe wax taille M",
		ImageRef:          "images/robe-wax.jpg",
		Price:             25000,
		SellerID:          seller.ID(),
		SellerName:        seller.FullName(),
		SellerAccountType: seller.AccountType(),
	}

	testOrder, err := order.NewOrder(kernel.NewUUID(), buyer, article, order.Meetup)
	suite.Require().NoError(err)
	return testOrder
}

func TestGetUserOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetUserOrdersQueryHandlerTestSuite))
}
