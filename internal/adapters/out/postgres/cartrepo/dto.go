// Package cartrepo provides data transfer objects and mapping functions for
// cart persistence. A session owns at most one row; the item quantities are
// stored as a JSONB snapshot keyed by item name.
package cartrepo

import (
	"encoding/json"
	"time"

	"foodibot/internal/core/domain/model/cart"
	"foodibot/internal/core/domain/model/kernel"
)

// CartDTO represents the database structure for persisting cart snapshots.
// UpdatedAt is refreshed on every write and drives stale-cart cleanup.
type CartDTO struct {
	SessionID string `gorm:"column:session_id;primaryKey"`
	Items     string `gorm:"type:jsonb"`
	UpdatedAt time.Time
}

// TableName specifies the database table name for cart snapshots.
func (CartDTO) TableName() string {
	return "carts"
}

// fromDomain converts a cart aggregate to its database representation.
func fromDomain(aggregate *cart.Cart) (CartDTO, error) {
	items, err := json.Marshal(aggregate.Items())
	if err != nil {
		return CartDTO{}, err
	}

	return CartDTO{
		SessionID: aggregate.SessionID().String(),
		Items:     string(items),
		UpdatedAt: time.Now().UTC(),
	}, nil
}

// toDomain converts a database row to a cart aggregate.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	sessionID, err := kernel.NewSessionID(dto.SessionID)
	if err != nil {
		return nil, err
	}

	items := make(map[string]int)
	if dto.Items != "" {
		if err := json.Unmarshal([]byte(dto.Items), &items); err != nil {
			return nil, err
		}
	}

	return cart.RestoreCart(sessionID, items)
}
