package queries

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler retrieves a session's past orders.
// Uses direct SQL for optimal read performance in the CQRS pattern; the
// items column is stored as JSONB and decoded into the read model.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the order history query.
// Returns the most recent orders first, capped at the query's limit.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history := make([]GetOrderHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			items,
			total,
			created_at
		FROM order_history
		WHERE session_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`, query.SessionID().String(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entry     GetOrderHistoryQueryResponse
			itemsJSON []byte
			createdAt time.Time
		)
		if err = rows.Scan(&entry.OrderID, &itemsJSON, &entry.TotalPrice, &createdAt); err != nil {
			return nil, err
		}
		if err = json.Unmarshal(itemsJSON, &entry.Items); err != nil {
			return nil, err
		}
		entry.CreatedAt = createdAt
		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
