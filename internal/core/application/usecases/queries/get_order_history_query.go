package queries

import (
	"errors"
	"time"

	"foodibot/internal/core/domain/model/kernel"
	"foodibot/internal/pkg/guard"
)

// defaultHistoryLimit caps history reads when the caller does not specify
// a limit.
const defaultHistoryLimit = 5

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery retrieves a session's most recent committed orders.
type GetOrderHistoryQuery struct {
	sessionID kernel.SessionID
	limit     int

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query for a session's order history.
// A non-positive limit falls back to the default.
func NewGetOrderHistoryQuery(sessionID kernel.SessionID, limit int) (GetOrderHistoryQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	return GetOrderHistoryQuery{
		sessionID: sessionID,
		limit:     limit,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// SessionID returns the conversation session the history belongs to.
func (q GetOrderHistoryQuery) SessionID() kernel.SessionID {
	return q.sessionID
}

// Limit returns the maximum number of orders to return.
func (q GetOrderHistoryQuery) Limit() int {
	return q.limit
}

// GetOrderHistoryQueryResponse represents one past order in the read model.
type GetOrderHistoryQueryResponse struct {
	OrderID    int64
	Items      map[string]int
	TotalPrice float64
	CreatedAt  time.Time
}
