// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"foodibot/internal/core/domain/model/kernel"
	"foodibot/internal/pkg/guard"
)

var ErrGetCartSummaryQueryIsNotConstructed = errors.New(
	"GetCartSummaryQuery must be created via NewGetCartSummaryQuery constructor",
)

// GetCartSummaryQuery retrieves an overview of a session's in-progress cart.
//
// Example:
//
//	query, _ := NewGetCartSummaryQuery(sessionID)
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to summarize cart: %w", err)
//	}
//	fmt.Printf("%d items, %.2f total\n", summary.TotalItems, summary.TotalAmount)
type GetCartSummaryQuery struct {
	sessionID kernel.SessionID

	guard guard.ConstructorGuard
}

// NewGetCartSummaryQuery creates a query for a session's cart summary.
func NewGetCartSummaryQuery(sessionID kernel.SessionID) (GetCartSummaryQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetCartSummaryQuery{}, err
	}

	return GetCartSummaryQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetCartSummaryQueryIsNotConstructed)
}

// SessionID returns the conversation session the cart belongs to.
func (q GetCartSummaryQuery) SessionID() kernel.SessionID {
	return q.sessionID
}

// GetCartSummaryQueryResponse is the cart overview read model.
// The amount is computed at the catalog prices in effect when the query
// runs; it is not a committed total.
type GetCartSummaryQueryResponse struct {
	Items       map[string]int
	TotalItems  int
	TotalAmount float64
}
