// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence.
package commands

import (
	"context"

	"foodibot/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// CatalogReaderFactory provides access to the catalog reader within a transaction.
	CatalogReaderFactory interface {
		CatalogReader() ports.CatalogReader
	}

	// ContactRepoFactory provides access to the contact repository within a transaction.
	ContactRepoFactory interface {
		ContactRepository() ports.ContactRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CartUoW manages transactions for cart-only operations.
	// Used by commands that mutate the cart against the catalog.
	CartUoW interface {
		TxManager
		CartRepoFactory
		CatalogReaderFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// ContactUoW manages transactions for contact-only operations.
	ContactUoW interface {
		TxManager
		ContactRepoFactory
	}

	// ContactUoWFactory creates new contact unit of work instances.
	ContactUoWFactory interface {
		Create() ContactUoW
	}

	// OrderUoW manages transactions for order-tracking-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CheckoutUoW manages transactions spanning cart, catalog, contact and
	// order state. Used by order completion and notification commands that
	// coordinate changes across the whole session.
	//
	// Example:
	//
	//	uow := factory.Create()
	//	err := uow.Begin(ctx)
	//	defer uow.Rollback(ctx)
	//
	//	cartRepo := uow.CartRepository()
	//	orderRepo := uow.OrderRepository()
	//	// ... perform operations
	//
	//	err = uow.Commit(ctx)
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		CatalogReaderFactory
		ContactRepoFactory
		OrderRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}
)
