package queries

import (
	"context"
	"errors"

	"foodibot/internal/core/domain/model/kernel"
	"foodibot/internal/core/ports"
	"foodibot/internal/pkg/errs"
)

// GetCartSummaryQueryHandler computes the cart overview. It reads through
// the repository ports rather than raw SQL because the summary needs the
// cart aggregate's item map joined with live catalog prices.
type GetCartSummaryQueryHandler struct {
	cartRepo ports.CartRepository
	catalog  ports.CatalogReader
}

// NewGetCartSummaryQueryHandler creates a handler for cart summary queries.
func NewGetCartSummaryQueryHandler(cartRepo ports.CartRepository, catalog ports.CatalogReader) GetCartSummaryQueryHandler {
	return GetCartSummaryQueryHandler{
		cartRepo: cartRepo,
		catalog:  catalog,
	}
}

// Handle executes the cart summary query.
// Returns errs.ErrObjectNotFound when the session has no cart. Cart items
// missing from the catalog contribute a zero price rather than failing the
// read: the summary is informational, only completion insists on prices.
// Any other catalog failure surfaces as an error.
func (h GetCartSummaryQueryHandler) Handle(ctx context.Context, query GetCartSummaryQuery) (GetCartSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartSummaryQueryResponse{}, err
	}

	sessionCart, err := h.cartRepo.Get(ctx, query.SessionID())
	if err != nil {
		return GetCartSummaryQueryResponse{}, err
	}

	response := GetCartSummaryQueryResponse{
		Items:      sessionCart.Items(),
		TotalItems: sessionCart.TotalQuantity(),
	}

	for name, quantity := range sessionCart.Items() {
		itemName, nameErr := kernel.NewItemName(name)
		if nameErr != nil {
			return GetCartSummaryQueryResponse{}, nameErr
		}
		row, findErr := h.catalog.FindItem(ctx, itemName)
		if errors.Is(findErr, errs.ErrObjectNotFound) {
			continue
		}
		if findErr != nil {
			return GetCartSummaryQueryResponse{}, findErr
		}
		response.TotalAmount += float64(quantity) * row.Price
	}

	return response, nil
}
