package commands

import (
	"context"
	"errors"

	"foodibot/internal/core/domain/model/cart"
	"foodibot/internal/pkg/errs"
)

// AddItemsResult reports the cart state after a successful addition.
type AddItemsResult struct {
	// Items is the cart content after the addition.
	Items map[string]int

	// Summary is the human-readable cart summary, e.g. "2 burger, 1 pizza".
	Summary string
}

// AddItemsCommandHandler handles the business logic for adding items to a cart.
// The whole request is checked against the catalog before any mutation: either
// every requested item lands in the cart or the cart is left untouched.
//
// When the same item name appears more than once in a request, the last
// occurrence wins; quantities of distinct occurrences are not summed.
// Quantities of items already in the cart are merged additively.
type AddItemsCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddItemsCommandHandler creates a handler for cart addition operations.
// Requires a CartUoWFactory for transactional persistence.
func NewAddItemsCommandHandler(uowFactory CartUoWFactory) AddItemsCommandHandler {
	return AddItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-items command.
// Returns errs.ErrObjectNotFound naming the first item missing from the
// catalog; in that case the cart is not modified.
func (h *AddItemsCommandHandler) Handle(ctx context.Context, cmd AddItemsCommand) (AddItemsResult, error) {
	if err := cmd.Validate(); err != nil {
		return AddItemsResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AddItemsResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// Last occurrence of a duplicated name wins.
	requested := make(map[string]int, len(cmd.Items()))
	ordered := make([]ItemQuantity, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		if _, seen := requested[item.Name.String()]; !seen {
			ordered = append(ordered, item)
		}
		requested[item.Name.String()] = item.Quantity
	}

	catalog := uow.CatalogReader()
	for _, item := range ordered {
		if _, err := catalog.FindItem(ctx, item.Name); err != nil {
			return AddItemsResult{}, err
		}
	}

	cartRepo := uow.CartRepository()
	sessionCart, err := cartRepo.Get(ctx, cmd.SessionID())
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return AddItemsResult{}, err
		}
		sessionCart, err = cart.NewCart(cmd.SessionID())
		if err != nil {
			return AddItemsResult{}, err
		}
	}

	for _, item := range ordered {
		if err = sessionCart.Add(item.Name, requested[item.Name.String()]); err != nil {
			return AddItemsResult{}, err
		}
	}

	if err = cartRepo.Put(ctx, sessionCart); err != nil {
		return AddItemsResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AddItemsResult{}, err
	}

	return AddItemsResult{
		Items:   sessionCart.Items(),
		Summary: sessionCart.Summary(),
	}, nil
}
