package ports

import (
	"context"

	"foodibot/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for committed orders.
// A committed order is written as a history snapshot row plus a tracking
// row carrying the live status.
type OrderRepository interface {
	// NextOrderID returns the identifier for the next order,
	// one past the highest identifier stored so far.
	NextOrderID(ctx context.Context) (int64, error)

	// AddHistory persists the per-item rows of a committed order.
	AddHistory(ctx context.Context, committed order.CommittedOrder) error

	// AddTracking persists the tracking row of a committed order.
	AddTracking(ctx context.Context, committed order.CommittedOrder) error

	// GetStatus retrieves the live status of an order.
	// Returns errs.ErrObjectNotFound when the order is unknown.
	GetStatus(ctx context.Context, orderID int64) (order.Status, error)

	// UpdateStatus sets the live status of an order.
	// Returns errs.ErrObjectNotFound when the order is unknown.
	UpdateStatus(ctx context.Context, orderID int64, status order.Status) error
}
