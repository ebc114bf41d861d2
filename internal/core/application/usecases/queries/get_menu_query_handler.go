package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMenuQueryHandler retrieves the food catalog from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for menu queries.
// Requires a GORM database connection for query execution.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle executes the menu query.
// Returns catalog rows sorted by name.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	menu := make([]GetMenuQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			item_id,
			name,
			price
		FROM food_items
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetMenuQueryResponse
		if err = rows.Scan(&row.ItemID, &row.Name, &row.Price); err != nil {
			return nil, err
		}
		menu = append(menu, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return menu, nil
}
