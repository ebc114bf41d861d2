package ports

import (
	"context"
	"time"

	"foodibot/internal/core/domain/model/cart"
	"foodibot/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// A session owns at most one cart; Put replaces the whole snapshot.
type CartRepository interface {
	// Get retrieves the cart for a session.
	// Returns errs.ErrObjectNotFound when the session has no cart.
	Get(ctx context.Context, sessionID kernel.SessionID) (*cart.Cart, error)

	// Put stores the cart snapshot for its session, creating or
	// replacing the existing record.
	Put(ctx context.Context, aggregate *cart.Cart) error

	// Delete removes the cart for a session. Deleting a missing cart
	// is not an error.
	Delete(ctx context.Context, sessionID kernel.SessionID) error

	// DeleteStale removes carts that have not been touched since the
	// given cutoff and returns how many were removed.
	DeleteStale(ctx context.Context, cutoff time.Time) (int64, error)
}
