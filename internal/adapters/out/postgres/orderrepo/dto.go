// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. A committed order is written twice: an immutable
// history snapshot with the frozen items and total, and a tracking row
// carrying the live status that the admin API advances afterwards.
package orderrepo

import (
	"encoding/json"
	"time"

	"foodibot/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderHistoryDTO represents the immutable snapshot row of a committed order.
// The order identifier is indexed rather than primary because a session can
// in principle re-commit and the snapshot must never be overwritten.
type OrderHistoryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   int64     `gorm:"column:order_id;index"`
	SessionID string    `gorm:"column:session_id;index"`
	Items     string    `gorm:"type:jsonb"`
	Total     float64
	CreatedAt time.Time
}

// TableName specifies the database table name for order snapshots.
func (OrderHistoryDTO) TableName() string {
	return "order_history"
}

// OrderTrackingDTO represents the live status row of a committed order.
type OrderTrackingDTO struct {
	OrderID int64 `gorm:"column:order_id;primaryKey"`
	Status  string
}

// TableName specifies the database table name for order tracking rows.
func (OrderTrackingDTO) TableName() string {
	return "order_tracking"
}

// historyFromDomain converts a committed order to its snapshot row.
func historyFromDomain(committed order.CommittedOrder) (OrderHistoryDTO, error) {
	items, err := json.Marshal(committed.Items())
	if err != nil {
		return OrderHistoryDTO{}, err
	}

	return OrderHistoryDTO{
		ID:        uuid.New(),
		OrderID:   committed.ID(),
		SessionID: committed.SessionID().String(),
		Items:     string(items),
		Total:     committed.Total(),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// trackingFromDomain converts a committed order to its tracking row.
func trackingFromDomain(committed order.CommittedOrder) OrderTrackingDTO {
	return OrderTrackingDTO{
		OrderID: committed.ID(),
		Status:  string(committed.Status()),
	}
}
