package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(order.Shipping)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTrip_PreservesCheckoutState() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(order.Shipping)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal(testOrder.OrderNumber(), retrieved.OrderNumber())
	suite.Equal(testOrder.BuyerID(), retrieved.BuyerID())
	suite.Equal(testOrder.BuyerName(), retrieved.BuyerName())
	suite.Equal(testOrder.BuyerPhone(), retrieved.BuyerPhone())
	suite.Equal(testOrder.SellerID(), retrieved.SellerID())
	suite.Equal(testOrder.SellerName(), retrieved.SellerName())
	suite.Equal(testOrder.SellerAccountType(), retrieved.SellerAccountType())
	suite.Equal(testOrder.ListingID(), retrieved.ListingID())
	suite.Equal(testOrder.ListingTitle(), retrieved.ListingTitle())
	suite.Equal(testOrder.ArticlePrice(), retrieved.ArticlePrice())
	suite.Equal(testOrder.DeliveryFee(), retrieved.DeliveryFee())
	suite.Equal(testOrder.Commission(), retrieved.Commission())
	suite.Equal(testOrder.TotalAmount(), retrieved.TotalAmount())
	suite.Equal(order.Shipping, retrieved.DeliveryMethod())
	suite.Equal(order.PendingPayment, retrieved.Status())
	suite.Empty(retrieved.TrackingNumber())
	suite.Nil(retrieved.PaidAt())
	suite.Nil(retrieved.ShippedAt())
	suite.Nil(retrieved.DeliveredAt())
	suite.Nil(retrieved.CompletedAt())
	suite.Equal(1, retrieved.Version(), "Add should persist the first version")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_LifecycleProgress_PersistsStageTimestamps() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(order.Shipping)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(loaded.MarkPaymentSent())
	suite.Require().NoError(loaded.ConfirmPayment())
	suite.Require().NoError(loaded.MarkAsShipped("SN-TRACK-0042"))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Shipped, retrieved.Status())
	suite.Equal("SN-TRACK-0042", retrieved.TrackingNumber())
	suite.NotNil(retrieved.PaidAt())
	suite.NotNil(retrieved.ShippedAt())
	suite.Nil(retrieved.DeliveredAt())
	suite.Equal(2, retrieved.Version(), "Update should bump the version")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_Rejected() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(order.Meetup)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Two writers load the same generation
	first, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.MarkPaymentSent())
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.Cancel("Changement d'avis"))
	err = suite.repository.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	// The first write won; the cancellation never landed
	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PaymentConfirming, retrieved.Status())
	suite.Empty(retrieved.CancellationReason())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingRow_NotFound() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(order.Meetup)

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// createTestOrder creates a valid pending-payment order for testing purposes.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(method order.DeliveryMethod) *order.Order {
	buyer, err := account.NewActor(
		kernel.NewUUID(), "Awa Diop", "+221770000001", "Dakar", account.Individual, false)
	suite.Require().NoError(err)

	article := order.ArticleSnapshot{
		ListingID:         kernel.NewUUID(),
		Title:             "iPhone 12 64GB",
		ImageRef:          "images/iphone-12.jpg",
		Price:             150000,
		SellerID:          kernel.NewUUID(),
		SellerName:        "Moussa Ndiaye",
		SellerAccountType: account.Individual,
	}

	testOrder, err := order.NewOrder(kernel.NewUUID(), buyer, article, method)
	suite.Require().NoError(err)
	return testOrder
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
