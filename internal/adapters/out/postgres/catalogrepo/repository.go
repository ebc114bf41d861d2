package catalogrepo

import (
	"context"
	"errors"

	"foodibot/internal/core/domain/model/kernel"
	"foodibot/internal/core/ports"
	"foodibot/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogReader implements CatalogReader using GORM.
type GormCatalogReader struct {
	db *gorm.DB
}

// NewGormCatalogReader creates a new GORM catalog reader.
func NewGormCatalogReader(db *gorm.DB) *GormCatalogReader {
	return &GormCatalogReader{db: db}
}

// FindItem looks up a catalog row by name. Matching is case-insensitive
// so sanitized conversational names resolve against cased catalog rows.
func (r *GormCatalogReader) FindItem(ctx context.Context, name kernel.ItemName) (ports.CatalogItem, error) {
	if err := name.Validate(); err != nil {
		return ports.CatalogItem{}, err
	}

	var dto FoodItemDTO
	err := r.db.WithContext(ctx).First(&dto, "LOWER(name) = LOWER(?)", name.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.CatalogItem{}, errs.NewObjectNotFoundError("foodItem", name.String())
		}
		return ports.CatalogItem{}, err
	}

	return toReadModel(dto), nil
}

// GetAll returns every catalog row ordered by name.
func (r *GormCatalogReader) GetAll(ctx context.Context) ([]ports.CatalogItem, error) {
	var dtos []FoodItemDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]ports.CatalogItem, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, toReadModel(dto))
	}

	return items, nil
}
