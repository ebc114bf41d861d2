// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. The Unit of Work maintains a database transaction spanning
// the session repositories and coordinates writing out changes atomically.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.CartRepository().Put(ctx, sessionCart); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// A single GormUnitOfWork exposes every repository of the session store,
// so the same instance serves cart-only operations and full checkout
// flows alike. Each business operation should get a fresh instance from
// the factory; instances are not safe for concurrent use.
package postgres

import (
	"context"

	"foodibot/internal/adapters/out/postgres/cartrepo"
	"foodibot/internal/adapters/out/postgres/catalogrepo"
	"foodibot/internal/adapters/out/postgres/contactrepo"
	"foodibot/internal/adapters/out/postgres/orderrepo"
	"foodibot/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database
// connections. The factory ensures each business operation gets a fresh
// unit of work with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The provided database connection is shared by all created
// instances; each instance opens its own transaction on Begin.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for transaction
// management.
func (f *GormUnitOfWorkFactory) Create() *GormUnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates a database transaction across the session
// repositories. Repositories obtained from it execute within the current
// transaction when one is active, otherwise against the main connection.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not
// create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Rolling back without an active transaction is a no-op, so handlers can
// defer Rollback unconditionally and still commit normally.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// CartRepository provides access to cart persistence within the unit of work.
func (uow *GormUnitOfWork) CartRepository() ports.CartRepository {
	return cartrepo.NewGormCartRepository(uow.conn())
}

// CatalogReader provides read access to the food catalog within the unit of work.
func (uow *GormUnitOfWork) CatalogReader() ports.CatalogReader {
	return catalogrepo.NewGormCatalogReader(uow.conn())
}

// ContactRepository provides access to contact persistence within the unit of work.
func (uow *GormUnitOfWork) ContactRepository() ports.ContactRepository {
	return contactrepo.NewGormContactRepository(uow.conn())
}

// OrderRepository provides access to order persistence within the unit of work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}
