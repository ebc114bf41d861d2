package orderrepo

import (
	"context"
	"errors"

	"foodibot/internal/core/domain/model/order"
	"foodibot/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// NextOrderID returns one past the highest order identifier stored so far,
// starting at 1 for an empty history.
func (r *GormOrderRepository) NextOrderID(ctx context.Context) (int64, error) {
	var next int64
	err := r.db.WithContext(ctx).
		Raw("SELECT COALESCE(MAX(order_id), 0) + 1 FROM order_history").
		Scan(&next).Error
	if err != nil {
		return 0, err
	}

	return next, nil
}

// AddHistory persists the immutable snapshot row of a committed order.
func (r *GormOrderRepository) AddHistory(ctx context.Context, committed order.CommittedOrder) error {
	if err := committed.Validate(); err != nil {
		return err
	}

	dto, err := historyFromDomain(committed)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddTracking persists the tracking row of a committed order.
func (r *GormOrderRepository) AddTracking(ctx context.Context, committed order.CommittedOrder) error {
	if err := committed.Validate(); err != nil {
		return err
	}

	dto := trackingFromDomain(committed)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetStatus retrieves the live status of an order.
func (r *GormOrderRepository) GetStatus(ctx context.Context, orderID int64) (order.Status, error) {
	var dto OrderTrackingDTO
	err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.NewObjectNotFoundError("orderID", orderID)
		}
		return "", err
	}

	return order.Status(dto.Status), nil
}

// UpdateStatus sets the live status of an order.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, orderID int64, status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderTrackingDTO{}).
		Where("order_id = ?", orderID).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderID", orderID)
	}

	return nil
}
