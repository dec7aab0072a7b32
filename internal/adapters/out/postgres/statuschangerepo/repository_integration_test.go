package statuschangerepo_test

import (
	"context"
	"testing"
	"time"

	"handmade/internal/adapters/out/postgres/statuschangerepo"
	"handmade/internal/core/domain/model/kernel"
	"handmade/internal/core/domain/model/statuschange"
	"handmade/internal/pkg/errs"

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

// StatusChangeRepositoryIntegrationTestSuite provides integration tests for
// StatusChangeRepository using PostgreSQL containers.
type StatusChangeRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *statuschangerepo.GormStatusChangeRepository
	tracker    *MockAggregateTracker
}

func (suite *StatusChangeRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&statuschangerepo.StatusChangeDTO{}))
}

func (suite *StatusChangeRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE status_changes").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = statuschangerepo.NewGormStatusChangeRepository(suite.db, suite.tracker)
}

func (suite *StatusChangeRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StatusChangeRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrips() {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	changeTime := time.Now().UTC().Add(-time.Hour).Truncate(time.Microsecond)
	record := suite.newRecord(orderID, "Shipped", changeTime)

	suite.tracker.On("TrackAggregate", record.ID(), record).Once()
	suite.Require().NoError(suite.repository.Add(ctx, record))

	retrieved, err := suite.repository.Get(ctx, record.ID())
	suite.Require().NoError(err)

	suite.Equal(record.ID(), retrieved.ID())
	suite.Equal(orderID, retrieved.OrderID())
	suite.Equal("Shipped", retrieved.Status())
	suite.WithinDuration(changeTime, retrieved.ChangeTime(), time.Millisecond)
	suite.Equal("seller-42", retrieved.CreatedBy())
	suite.False(retrieved.IsDeleted())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StatusChangeRepositoryIntegrationTestSuite) TestGet_NonExistentRecord_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *StatusChangeRepositoryIntegrationTestSuite) TestGet_SoftDeletedRecord_IsStillReadable() {
	ctx := context.Background()

	record := suite.newRecord(kernel.NewUUID(), "Shipped", time.Now().UTC().Add(-time.Hour))
	suite.tracker.On("TrackAggregate", record.ID(), record).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, record))

	deletedAt := time.Now().UTC().Truncate(time.Microsecond)
	suite.Require().NoError(record.MarkDeleted("admin", deletedAt))
	suite.Require().NoError(suite.repository.Update(ctx, record))

	retrieved, err := suite.repository.Get(ctx, record.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsDeleted())
	suite.Equal("admin", retrieved.Deletion().By())
	suite.WithinDuration(deletedAt, retrieved.Deletion().At(), time.Millisecond)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StatusChangeRepositoryIntegrationTestSuite) TestUpdate_Edit_PersistsNewValues() {
	ctx := context.Background()

	record := suite.newRecord(kernel.NewUUID(), "Shipped", time.Now().UTC().Add(-2*time.Hour))
	suite.tracker.On("TrackAggregate", record.ID(), record).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, record))

	newChangeTime := time.Now().UTC().Add(-time.Hour).Truncate(time.Microsecond)
	suite.Require().NoError(record.Edit("Delivered", newChangeTime, "support-7", time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, record))

	retrieved, err := suite.repository.Get(ctx, record.ID())
	suite.Require().NoError(err)
	suite.Equal("Delivered", retrieved.Status())
	suite.WithinDuration(newChangeTime, retrieved.ChangeTime(), time.Millisecond)
	suite.Equal("support-7", retrieved.LastUpdatedBy())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StatusChangeRepositoryIntegrationTestSuite) TestUpdate_NonExistentRecord_ReturnsError() {
	ctx := context.Background()

	record := suite.newRecord(kernel.NewUUID(), "Shipped", time.Now().UTC().Add(-time.Hour))
	err := suite.repository.Update(ctx, record)
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *StatusChangeRepositoryIntegrationTestSuite) TestGetLatestForOrder_PicksGreatestChangeTime() {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	base := time.Now().UTC().Add(-3 * time.Hour).Truncate(time.Microsecond)
	suite.addRecords(ctx,
		suite.newRecord(orderID, "Pending", base),
		suite.newRecord(orderID, "Shipped", base.Add(time.Hour)),
		suite.newRecord(orderID, "Delivered", base.Add(2*time.Hour)),
		// A different order's later record must not leak in.
		suite.newRecord(kernel.NewUUID(), "Pending", base.Add(3*time.Hour)),
	)

	latest, err := suite.repository.GetLatestForOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal("Delivered", latest.Status())
	suite.WithinDuration(base.Add(2*time.Hour), latest.ChangeTime(), time.Millisecond)
}

func (suite *StatusChangeRepositoryIntegrationTestSuite) TestGetLatestForOrder_IgnoresSoftDeleted() {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	base := time.Now().UTC().Add(-3 * time.Hour).Truncate(time.Microsecond)
	earlier := suite.newRecord(orderID, "Pending", base)
	latest := suite.newRecord(orderID, "Shipped", base.Add(time.Hour))
	suite.addRecords(ctx, earlier, latest)

	// Deleting the latest record exposes the earlier one as latest prior,
	// so a write between the two timestamps becomes valid again.
	suite.tracker.On("TrackAggregate", latest.ID(), latest).Once()
	suite.Require().NoError(latest.MarkDeleted("admin", time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, latest))

	result, err := suite.repository.GetLatestForOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(earlier.ID(), result.ID())
}

func (suite *StatusChangeRepositoryIntegrationTestSuite) TestGetLatestForOrder_NoVisibleRecords_ReturnsNotFoundError() {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	record := suite.newRecord(orderID, "Pending", time.Now().UTC().Add(-time.Hour))
	suite.addRecords(ctx, record)

	suite.tracker.On("TrackAggregate", record.ID(), record).Once()
	suite.Require().NoError(record.MarkDeleted("admin", time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, record))

	result, err := suite.repository.GetLatestForOrder(ctx, orderID)
	suite.Nil(result)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *StatusChangeRepositoryIntegrationTestSuite) TestGetLatestForOrderExcluding_SkipsGivenRecord() {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	base := time.Now().UTC().Add(-3 * time.Hour).Truncate(time.Microsecond)
	earlier := suite.newRecord(orderID, "Pending", base)
	latest := suite.newRecord(orderID, "Shipped", base.Add(time.Hour))
	suite.addRecords(ctx, earlier, latest)

	result, err := suite.repository.GetLatestForOrderExcluding(ctx, orderID, latest.ID())
	suite.Require().NoError(err)
	suite.Equal(earlier.ID(), result.ID())
}

func (suite *StatusChangeRepositoryIntegrationTestSuite) TestGetLatestForOrderExcluding_OnlyRecord_ReturnsNotFoundError() {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	only := suite.newRecord(orderID, "Pending", time.Now().UTC().Add(-time.Hour))
	suite.addRecords(ctx, only)

	result, err := suite.repository.GetLatestForOrderExcluding(ctx, orderID, only.ID())
	suite.Nil(result)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

// newRecord creates a status change attributed to a fixed test actor.
func (suite *StatusChangeRepositoryIntegrationTestSuite) newRecord(
	orderID kernel.UUID, status string, changeTime time.Time,
) *statuschange.StatusChange {
	record, err := statuschange.NewStatusChange(
		kernel.NewUUID(), orderID, status, changeTime, "seller-42", time.Now().UTC())
	suite.Require().NoError(err)
	return record
}

// addRecords persists records, expecting one tracker call each.
func (suite *StatusChangeRepositoryIntegrationTestSuite) addRecords(
	ctx context.Context, records ...*statuschange.StatusChange,
) {
	for _, record := range records {
		suite.tracker.On("TrackAggregate", record.ID(), record).Once()
		suite.Require().NoError(suite.repository.Add(ctx, record))
	}
}

func TestStatusChangeRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StatusChangeRepositoryIntegrationTestSuite))
}
