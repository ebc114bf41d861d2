package queries

import (
	"context"

	"gorm.io/gorm"

	"foodibot/internal/core/domain/model/order"
	"foodibot/internal/pkg/errs"
)

// TrackOrderQueryHandler looks up an order's tracking status.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for tracking queries.
// Requires a GORM database connection for query execution.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle executes the tracking query.
// Returns errs.ErrObjectNotFound when no tracking row exists for the order.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	var status string
	err := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM order_tracking
		WHERE order_id = ?
	`, query.OrderID()).Scan(&status).Error
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}
	if status == "" {
		return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	return TrackOrderQueryResponse{
		OrderID: query.OrderID(),
		Status:  order.Status(status),
	}, nil
}
