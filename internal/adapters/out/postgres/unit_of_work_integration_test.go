package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	postgres_adapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// UnitOfWorkIntegrationTestSuite exercises transactions and row locking against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  *postgres_adapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.Require().NoError(postgres_adapter.Migrate(database.DB))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.DB.Exec(pgtest.Truncate).Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMigrate_IsIdempotent() {
	suite.Require().NoError(postgres_adapter.Migrate(suite.database.DB))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.UserRepository())
	suite.NotNil(uow1.ProductRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.NotificationRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Error(uow.Commit(ctx), "Commit without transaction should fail")
	suite.Error(uow.Rollback(ctx), "Rollback without transaction should fail")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsWrites() {
	ctx := context.Background()
	farmer := suite.seedUser(user.Farmer, true)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	p := suite.newProduct(farmer.ID(), 5)
	suite.Require().NoError(uow.ProductRepository().Add(ctx, p))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().ProductRepository().Get(ctx, p.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TracksWrittenAggregates() {
	ctx := context.Background()
	farmer := suite.seedUser(user.Farmer, true)

	uow := suite.factory.CreateGorm()
	suite.Require().NoError(uow.Begin(ctx))
	p := suite.newProduct(farmer.ID(), 5)
	suite.Require().NoError(uow.ProductRepository().Add(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))

	tracked := uow.TrackedAggregates()
	suite.Require().Len(tracked, 1)
	suite.True(p.ID().IsEqual(tracked[0].ID))
	suite.Same(p, tracked[0].Aggregate)
}

// TestUnitOfWork_ConcurrentReservations places two orders of 3 against a stock of 5.
// The row lock serializes them: exactly one wins and the stock ends at 2.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentReservations() {
	ctx := context.Background()
	farmer := suite.seedUser(user.Farmer, true)
	buyer := suite.seedUser(user.Buyer, false)
	p := suite.newProduct(farmer.ID(), 5)
	suite.Require().NoError(suite.factory.Create().ProductRepository().Add(ctx, p))

	const attempts = 2
	results := make([]error, attempts)
	start := make(chan struct{})

	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results[i] = suite.reserve(ctx, suite.factory.Create(), p.ID(), buyer.ID(), 3)
		}()
	}
	close(start)
	wg.Wait()

	var succeeded, rejected int
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, product.ErrInsufficientStock):
			var stockErr *product.InsufficientStockError
			suite.Require().ErrorAs(err, &stockErr)
			suite.Equal(2, stockErr.Available)
			rejected++
		default:
			suite.Failf("unexpected error", "%v", err)
		}
	}
	suite.Equal(1, succeeded)
	suite.Equal(1, rejected)

	stored, err := suite.factory.Create().ProductRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(2, stored.Quantity())

	var orders int64
	suite.Require().NoError(suite.database.DB.Table("orders").Count(&orders).Error)
	suite.Equal(int64(1), orders)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_QuantityCheckConstraint() {
	farmer := suite.seedUser(user.Farmer, true)
	p := suite.newProduct(farmer.ID(), 1)
	suite.Require().NoError(suite.factory.Create().ProductRepository().Add(context.Background(), p))

	err := suite.database.DB.Exec("UPDATE products SET quantity = -1 WHERE id = ?", p.ID().Bytes()).Error

	suite.Error(err, "negative stock must be rejected by the table")
}

func (suite *UnitOfWorkIntegrationTestSuite) reserve(
	ctx context.Context,
	uow ports.UnitOfWork,
	productID, buyerID kernel.UUID,
	quantity int,
) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	p, err := uow.ProductRepository().GetForUpdate(ctx, productID)
	if err != nil {
		return err
	}
	if err = p.Reserve(quantity); err != nil {
		return err
	}

	o, err := order.NewOrder(kernel.NewUUID(), productID, buyerID, quantity, p.Price())
	if err != nil {
		return err
	}
	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}
	if err = uow.ProductRepository().Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (suite *UnitOfWorkIntegrationTestSuite) seedUser(role user.Role, verified bool) *user.User {
	id := kernel.NewUUID()
	u, err := user.RestoreUser(id, "user "+id.String()[:8], id.String()+"@mail.test", role, verified)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().UserRepository().Add(context.Background(), u))
	return u
}

func (suite *UnitOfWorkIntegrationTestSuite) newProduct(farmerID kernel.UUID, quantity int) *product.Product {
	price, err := kernel.MoneyFromString("2.50")
	suite.Require().NoError(err)
	p, err := product.NewProduct(kernel.NewUUID(), farmerID, "Carrots", "Vegetables", price, quantity)
	suite.Require().NoError(err)
	return p
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
