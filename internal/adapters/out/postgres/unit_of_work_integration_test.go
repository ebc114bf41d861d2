package postgres_test

import (
	"context"
	"testing"
	"time"

	"foodibot/internal/adapters/out/postgres"
	"foodibot/internal/adapters/out/postgres/cartrepo"
	"foodibot/internal/adapters/out/postgres/catalogrepo"
	"foodibot/internal/adapters/out/postgres/contactrepo"
	"foodibot/internal/adapters/out/postgres/orderrepo"
	"foodibot/internal/core/domain/model/cart"
	"foodibot/internal/core/domain/model/kernel"
	"foodibot/internal/core/domain/model/order"
	"foodibot/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction coordination across
// the session repositories using PostgreSQL containers.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
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
		&catalogrepo.FoodItemDTO{},
		&cartrepo.CartDTO{},
		&contactrepo.ContactDTO{},
		&orderrepo.OrderHistoryDTO{},
		&orderrepo.OrderTrackingDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE food_items, carts, user_contacts, order_history, order_tracking",
	).Error)
	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)

	suite.Require().NoError(suite.db.Create(&catalogrepo.FoodItemDTO{
		ItemID: 1, Name: "Burger", Price: 8.99,
	}).Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	// Second Begin must not open a nested transaction.
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	// Commit without an active transaction fails.
	suite.ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackWithoutTransaction_NoOp() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	sessionCart := suite.createTestCart("session-1")
	suite.Require().NoError(uow.CartRepository().Put(ctx, sessionCart))
	suite.Require().NoError(uow.ContactRepository().SetPhone(ctx, sessionCart.SessionID(), "+923001234567"))
	suite.Require().NoError(uow.OrderRepository().AddHistory(ctx, suite.createTestOrder(1)))
	suite.Require().NoError(uow.OrderRepository().AddTracking(ctx, suite.createTestOrder(1)))

	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	restored, err := verify.CartRepository().Get(ctx, sessionCart.SessionID())
	suite.Require().NoError(err)
	suite.Equal(map[string]int{"burger": 2}, restored.Items())

	status, err := verify.OrderRepository().GetStatus(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(order.StatusConfirmed, status)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	sessionCart := suite.createTestCart("session-1")
	suite.Require().NoError(uow.CartRepository().Put(ctx, sessionCart))
	suite.Require().NoError(uow.OrderRepository().AddTracking(ctx, suite.createTestOrder(1)))

	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	_, err := verify.CartRepository().Get(ctx, sessionCart.SessionID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	_, err = verify.OrderRepository().GetStatus(ctx, 1)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransaction_ImmediateExecution() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// No Begin: repository operations run against the main connection.
	sessionCart := suite.createTestCart("session-1")
	suite.Require().NoError(uow.CartRepository().Put(ctx, sessionCart))

	restored, err := suite.factory.Create().CartRepository().Get(ctx, sessionCart.SessionID())
	suite.Require().NoError(err)
	suite.Equal(map[string]int{"burger": 2}, restored.Items())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCatalogReader_VisibleInTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	name, err := kernel.NewItemName("burger")
	suite.Require().NoError(err)

	item, err := uow.CatalogReader().FindItem(ctx, name)
	suite.Require().NoError(err)
	suite.Equal("Burger", item.Name)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCheckoutWorkflow_CommitThenNextOrderID() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	next, err := uow.OrderRepository().NextOrderID(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(1), next)

	committed := suite.createTestOrder(next)
	suite.Require().NoError(uow.OrderRepository().AddHistory(ctx, committed))
	suite.Require().NoError(uow.OrderRepository().AddTracking(ctx, committed))
	suite.Require().NoError(uow.CartRepository().Delete(ctx, committed.SessionID()))

	suite.Require().NoError(uow.Commit(ctx))

	next, err = suite.factory.Create().OrderRepository().NextOrderID(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(2), next)
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestCart(session string) *cart.Cart {
	sessionID, err := kernel.NewSessionID(session)
	suite.Require().NoError(err)

	sessionCart, err := cart.RestoreCart(sessionID, map[string]int{"burger": 2})
	suite.Require().NoError(err)

	return sessionCart
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(id int64) order.CommittedOrder {
	sessionID, err := kernel.NewSessionID("session-1")
	suite.Require().NoError(err)

	committed, err := order.NewCommittedOrder(
		id,
		sessionID,
		map[string]int{"burger": 2},
		map[string]float64{"burger": 8.99},
		"30-45 minutes",
	)
	suite.Require().NoError(err)

	return committed
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
