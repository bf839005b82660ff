package notificationrepo_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/notificationrepo"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type NotificationRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *notificationrepo.GormNotificationRepository
	tracker    *MockAggregateTracker
	userID     kernel.UUID
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.Require().NoError(postgres_adapter.Migrate(database.DB))
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupTest() {
	db := suite.database.DB
	suite.Require().NoError(db.Exec(pgtest.Truncate).Error)

	suite.userID = kernel.NewUUID()
	suite.Require().NoError(db.Exec(
		"INSERT INTO users (id, name, email, role, verified, created_at, updated_at) VALUES (?, 'B', 'b@x.test', 'buyer', false, now(), now())",
		suite.userID.Bytes()).Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = notificationrepo.NewGormNotificationRepository(db, suite.tracker)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAddAndGet_KeepsMetadata() {
	ctx := context.Background()
	n := suite.add(notification.Metadata{"order_id": "abc", "quantity": 3})

	got, err := suite.repository.Get(ctx, n.ID())

	suite.Require().NoError(err)
	suite.Equal(n.Title(), got.Title())
	suite.Equal(notification.TypeOrder, got.Type())
	suite.False(got.IsRead())
	suite.Equal("abc", got.Metadata()["order_id"])
	suite.InDelta(3, got.Metadata()["quantity"], 0)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAdd_NilMetadataStoredAsNull() {
	n := suite.add(nil)

	got, err := suite.repository.Get(context.Background(), n.ID())

	suite.Require().NoError(err)
	suite.Nil(got.Metadata())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestUpdate_MarksRead() {
	ctx := context.Background()
	n := suite.add(nil)

	n.MarkAsRead()
	suite.Require().NoError(suite.repository.Update(ctx, n))

	got, err := suite.repository.Get(ctx, n.ID())
	suite.Require().NoError(err)
	suite.True(got.IsRead())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestMarkAllAsRead_CountsOnlyUnread() {
	ctx := context.Background()
	suite.add(nil)
	suite.add(nil)
	read := suite.add(nil)
	read.MarkAsRead()
	suite.Require().NoError(suite.repository.Update(ctx, read))

	changed, err := suite.repository.MarkAllAsRead(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(int64(2), changed)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	n := suite.add(nil)

	suite.Require().NoError(suite.repository.Delete(ctx, n.ID()))

	_, err := suite.repository.Get(ctx, n.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.ErrorIs(suite.repository.Delete(ctx, n.ID()), errs.ErrObjectNotFound)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestDeleteReadBefore() {
	ctx := context.Background()
	oldRead := suite.addAt(time.Now().Add(-48*time.Hour), true)
	oldUnread := suite.addAt(time.Now().Add(-48*time.Hour), false)
	recentRead := suite.addAt(time.Now(), true)

	removed, err := suite.repository.DeleteReadBefore(ctx, time.Now().Add(-24*time.Hour))

	suite.Require().NoError(err)
	suite.Equal(int64(1), removed)
	_, err = suite.repository.Get(ctx, oldRead.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	_, err = suite.repository.Get(ctx, oldUnread.ID())
	suite.NoError(err)
	_, err = suite.repository.Get(ctx, recentRead.ID())
	suite.NoError(err)
}

func (suite *NotificationRepositoryIntegrationTestSuite) add(meta notification.Metadata) *notification.Notification {
	n, err := notification.NewNotification(kernel.NewUUID(), suite.userID, "New Order Received", "body", notification.TypeOrder, meta)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), n))
	return n
}

func (suite *NotificationRepositoryIntegrationTestSuite) addAt(createdAt time.Time, read bool) *notification.Notification {
	n, err := notification.RestoreNotification(kernel.NewUUID(), suite.userID, "t", "m", notification.TypeSystem, nil, read, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), n))
	return n
}

func TestNotificationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryIntegrationTestSuite))
}
