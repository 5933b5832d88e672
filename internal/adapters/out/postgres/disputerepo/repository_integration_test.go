package disputerepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/disputerepo"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/dispute"
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

// DisputeRepositoryIntegrationTestSuite provides integration tests for DisputeRepository
// using PostgreSQL containers to verify database persistence behavior.
type DisputeRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *disputerepo.GormDisputeRepository
	tracker    *MockAggregateTracker
}

func (suite *DisputeRepositoryIntegrationTestSuite) SetupSuite() {
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
	suite.Require().NoError(db.AutoMigrate(&disputerepo.DisputeDTO{}))
}

func (suite *DisputeRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE disputes").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = disputerepo.NewGormDisputeRepository(suite.db, suite.tracker)
}

func (suite *DisputeRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DisputeRepositoryIntegrationTestSuite) TestAdd_ValidDispute_Success() {
	ctx := context.Background()

	testDispute := suite.createTestDispute()
	suite.tracker.On("TrackAggregate", testDispute.ID(), testDispute).Once()

	err := suite.repository.Add(ctx, testDispute)
	suite.Require().NoError(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DisputeRepositoryIntegrationTestSuite) TestGet_RoundTrip_PreservesOrderSnapshot() {
	ctx := context.Background()

	testDispute := suite.createTestDispute()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, testDispute))

	retrieved, err := suite.repository.Get(ctx, testDispute.ID())
	suite.Require().NoError(err)

	suite.Equal(testDispute.ID(), retrieved.ID())
	suite.Equal(testDispute.OrderID(), retrieved.OrderID())
	suite.Equal(testDispute.OrderNumber(), retrieved.OrderNumber())
	suite.Equal(testDispute.ArticleTitle(), retrieved.ArticleTitle())
	suite.Equal(testDispute.Amount(), retrieved.Amount())
	suite.Equal(testDispute.BuyerID(), retrieved.BuyerID())
	suite.Equal(testDispute.BuyerName(), retrieved.BuyerName())
	suite.Equal(testDispute.SellerID(), retrieved.SellerID())
	suite.Equal(testDispute.SellerName(), retrieved.SellerName())
	suite.Equal(testDispute.OpenedBy(), retrieved.OpenedBy())
	suite.Equal(dispute.NotReceived, retrieved.Reason())
	suite.Equal(testDispute.Description(), retrieved.Description())
	suite.Equal([]string{"photos/colis-absent.jpg"}, retrieved.Evidence())
	suite.Equal(dispute.Open, retrieved.Status())
	suite.Empty(retrieved.Messages())
	suite.Nil(retrieved.Resolution())
	suite.Equal(1, retrieved.Version(), "Add should persist the first version")
}

func (suite *DisputeRepositoryIntegrationTestSuite) TestUpdate_Thread_PersistsMessagesInOrder() {
	ctx := context.Background()

	testDispute := suite.createTestDispute()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, testDispute))

	loaded, err := suite.repository.Get(ctx, testDispute.ID())
	suite.Require().NoError(err)

	first, err := dispute.NewMessage(
		loaded.BuyerID(), loaded.BuyerName(), dispute.RoleBuyer, "Le colis n'est jamais arrivé")
	suite.Require().NoError(err)
	second, err := dispute.NewMessage(
		loaded.SellerID(), loaded.SellerName(), dispute.RoleSeller, "Je vérifie avec le transporteur")
	suite.Require().NoError(err)

	suite.Require().NoError(loaded.AddMessage(first))
	suite.Require().NoError(loaded.AddMessage(second))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	retrieved, err := suite.repository.Get(ctx, testDispute.ID())
	suite.Require().NoError(err)
	suite.Require().Len(retrieved.Messages(), 2)
	suite.Equal("Le colis n'est jamais arrivé", retrieved.Messages()[0].Text())
	suite.Equal(dispute.RoleBuyer, retrieved.Messages()[0].SenderRole())
	suite.Equal("Je vérifie avec le transporteur", retrieved.Messages()[1].Text())
	suite.Equal(dispute.RoleSeller, retrieved.Messages()[1].SenderRole())
}

func (suite *DisputeRepositoryIntegrationTestSuite) TestUpdate_Resolution_PersistsDecision() {
	ctx := context.Background()

	testDispute := suite.createTestDispute()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, testDispute))

	loaded, err := suite.repository.Get(ctx, testDispute.ID())
	suite.Require().NoError(err)

	adminID := kernel.NewUUID()
	suite.Require().NoError(loaded.StartInvestigation())
	suite.Require().NoError(loaded.ResolveWithRefund(10000, "Colis perdu par le transporteur", adminID))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	retrieved, err := suite.repository.Get(ctx, testDispute.ID())
	suite.Require().NoError(err)
	suite.Equal(dispute.ResolvedRefund, retrieved.Status())
	suite.Require().NotNil(retrieved.Resolution())
	suite.Equal(dispute.Refund, retrieved.Resolution().Type())
	suite.Equal(10000, retrieved.Resolution().Amount())
	suite.Equal("Colis perdu par le transporteur", retrieved.Resolution().Note())
	suite.Equal(adminID, retrieved.Resolution().DecidedBy())
	suite.Equal(2, retrieved.Version(), "Update should bump the version")
}

func (suite *DisputeRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_Rejected() {
	ctx := context.Background()

	testDispute := suite.createTestDispute()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, testDispute))

	// Two writers load the same generation
	first, err := suite.repository.Get(ctx, testDispute.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testDispute.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.StartInvestigation())
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.StartInvestigation())
	err = suite.repository.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
}

func (suite *DisputeRepositoryIntegrationTestSuite) TestUpdate_MissingRow_NotFound() {
	ctx := context.Background()

	testDispute := suite.createTestDispute()

	err := suite.repository.Update(ctx, testDispute)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DisputeRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// createTestDispute opens a valid case against a delivered order for testing purposes.
func (suite *DisputeRepositoryIntegrationTestSuite) createTestDispute() *dispute.Dispute {
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

	testOrder, err := order.NewOrder(kernel.NewUUID(), buyer, article, order.Shipping)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.MarkPaymentSent())
	suite.Require().NoError(testOrder.ConfirmPayment())
	suite.Require().NoError(testOrder.MarkAsShipped("SN-TRACK-0042"))

	testDispute, err := dispute.NewDispute(
		kernel.NewUUID(), testOrder, buyer, dispute.NotReceived,
		"Le colis n'est jamais arrivé malgré le suivi", []string{"photos/colis-absent.jpg"})
	suite.Require().NoError(err)
	return testDispute
}

func TestDisputeRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DisputeRepositoryIntegrationTestSuite))
}
