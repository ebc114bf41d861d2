package cartrepo

import (
	"context"
	"errors"
	"time"

	"foodibot/internal/core/domain/model/cart"
	"foodibot/internal/core/domain/model/kernel"
	"foodibot/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Get retrieves the cart snapshot for a session.
func (r *GormCartRepository) Get(ctx context.Context, sessionID kernel.SessionID) (*cart.Cart, error) {
	if err := sessionID.Validate(); err != nil {
		return nil, err
	}

	var dto CartDTO
	err := r.db.WithContext(ctx).First(&dto, "session_id = ?", sessionID.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart", sessionID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Put stores the cart snapshot for its session, creating or replacing the
// existing row.
func (r *GormCartRepository) Put(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"items", "updated_at"}),
		}).
		Create(&dto).Error
}

// Delete removes the cart row for a session. Deleting a missing cart is
// not an error.
func (r *GormCartRepository) Delete(ctx context.Context, sessionID kernel.SessionID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("session_id = ?", sessionID.String()).
		Delete(&CartDTO{}).Error
}

// DeleteStale removes carts not touched since the cutoff and returns how
// many rows were removed.
func (r *GormCartRepository) DeleteStale(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("updated_at < ?", cutoff).
		Delete(&CartDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
