// Package catalogrepo provides read-only access to the food catalog table.
// The catalog is reference data seeded outside the application; this
// package only maps rows to the read model.
package catalogrepo

import (
	"foodibot/internal/core/ports"
)

// FoodItemDTO represents a row of the food catalog table.
type FoodItemDTO struct {
	ItemID int64  `gorm:"column:item_id;primaryKey"`
	Name   string `gorm:"uniqueIndex"`
	Price  float64
}

// TableName specifies the database table name for catalog rows.
func (FoodItemDTO) TableName() string {
	return "food_items"
}

// toReadModel converts a catalog row to the read model exposed by ports.
func toReadModel(dto FoodItemDTO) ports.CatalogItem {
	return ports.CatalogItem{
		ID:    dto.ItemID,
		Name:  dto.Name,
		Price: dto.Price,
	}
}
