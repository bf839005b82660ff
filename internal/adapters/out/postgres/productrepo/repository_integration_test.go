package productrepo_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/adapters/out/postgres/productrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
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

type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *productrepo.GormProductRepository
	tracker    *MockAggregateTracker
	farmerID   kernel.UUID
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.Require().NoError(postgres_adapter.Migrate(database.DB))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	db := suite.database.DB
	suite.Require().NoError(db.Exec(pgtest.Truncate).Error)

	suite.farmerID = kernel.NewUUID()
	suite.Require().NoError(db.Exec(
		"INSERT INTO users (id, name, email, role, verified, created_at, updated_at) VALUES (?, 'F', 'f@x.test', 'farmer', true, now(), now())",
		suite.farmerID.Bytes()).Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = productrepo.NewGormProductRepository(db, suite.tracker)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	p := suite.newProduct(7)
	desc := "Picked this morning"
	p.ChangeDescription(&desc)

	suite.Require().NoError(suite.repository.Add(ctx, p))
	got, err := suite.repository.Get(ctx, p.ID())

	suite.Require().NoError(err)
	suite.Equal("Spinach", got.Name())
	suite.Equal("Greens", got.Category())
	suite.Equal("1.25", got.Price().String())
	suite.Equal(7, got.Quantity())
	suite.Require().NotNil(got.Description())
	suite.Equal(desc, *got.Description())
	suite.True(got.IsOwnedBy(suite.farmerID))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", p.ID(), p)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_WritesZeroQuantityAndClearedDescription() {
	ctx := context.Background()
	p := suite.newProduct(3)
	desc := "temporary"
	p.ChangeDescription(&desc)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	suite.Require().NoError(p.Reserve(3))
	p.ChangeDescription(nil)
	suite.Require().NoError(suite.repository.Update(ctx, p))

	got, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(0, got.Quantity())
	suite.Nil(got.Description())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_MissingProduct_NotFound() {
	err := suite.repository.Update(context.Background(), suite.newProduct(1))

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

// TestGetForUpdate_BlocksSecondLocker holds the lock in one transaction and checks
// that a second FOR UPDATE waits until the first commits and then sees its write.
func (suite *ProductRepositoryIntegrationTestSuite) TestGetForUpdate_BlocksSecondLocker() {
	ctx := context.Background()
	p := suite.newProduct(5)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	first := suite.database.DB.Begin()
	locked, err := productrepo.NewGormProductRepository(first, suite.tracker).GetForUpdate(ctx, p.ID())
	suite.Require().NoError(err)

	secondDone := make(chan *product.Product, 1)
	go func() {
		second := suite.database.DB.Begin()
		defer second.Rollback()
		got, getErr := productrepo.NewGormProductRepository(second, suite.tracker).GetForUpdate(ctx, p.ID())
		if getErr != nil {
			secondDone <- nil
			return
		}
		secondDone <- got
	}()

	select {
	case <-secondDone:
		suite.Fail("second locker must wait for the first transaction")
	case <-time.After(300 * time.Millisecond):
	}

	suite.Require().NoError(locked.Reserve(4))
	suite.Require().NoError(productrepo.NewGormProductRepository(first, suite.tracker).Update(ctx, locked))
	suite.Require().NoError(first.Commit().Error)

	select {
	case got := <-secondDone:
		suite.Require().NotNil(got)
		suite.Equal(1, got.Quantity())
	case <-time.After(10 * time.Second):
		suite.Fail("second locker never acquired the lock")
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) newProduct(quantity int) *product.Product {
	price, err := kernel.MoneyFromString("1.25")
	suite.Require().NoError(err)
	p, err := product.NewProduct(kernel.NewUUID(), suite.farmerID, "Spinach", "Greens", price, quantity)
	suite.Require().NoError(err)
	return p
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
