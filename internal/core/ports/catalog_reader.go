// Package ports defines the repository and provider interfaces of the
// application core. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"foodibot/internal/core/domain/model/kernel"
)

// CatalogItem is a read model row of the food catalog.
type CatalogItem struct {
	ID    int64
	Name  string
	Price float64
}

// CatalogReader defines read-only access to the food catalog.
// The catalog is reference data maintained outside this core; the
// interfaces here never mutate it.
type CatalogReader interface {
	// FindItem looks up a catalog row by item name. Matching is
	// case-insensitive so that sanitized conversational names resolve
	// against conventionally cased catalog rows.
	// Returns errs.ErrObjectNotFound when no row matches.
	FindItem(ctx context.Context, name kernel.ItemName) (CatalogItem, error)

	// GetAll returns every catalog row, ordered by name.
	GetAll(ctx context.Context) ([]CatalogItem, error)
}
