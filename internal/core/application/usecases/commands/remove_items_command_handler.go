package commands

import (
	"context"
	"errors"
	"fmt"

	"foodibot/internal/pkg/errs"
)

// RemoveItemsResult reports the effect of a removal request.
type RemoveItemsResult struct {
	// Removed lists what actually left the cart, e.g. "2 pizza". The
	// reported quantity never exceeds what the cart held.
	Removed []string

	// NotInCart lists requested names the cart did not contain.
	NotInCart []string

	// Remaining is the cart content after the removal.
	Remaining map[string]int

	// Summary is the human-readable summary of the remaining cart,
	// empty when the cart became empty.
	Summary string

	// CartEmptied is true when the removal left the cart empty and the
	// cart record was deleted.
	CartEmptied bool
}

// RemoveItemsCommandHandler handles the business logic for removing items
// from a cart.
//
// Removal is one-shot: a matched item's entry leaves the cart entirely no
// matter how many units were requested, and the reported removed quantity
// is capped at what the cart actually held. Asking to remove 1 of 3 pizzas
// therefore removes all 3 but reports "1 pizza". Callers that want partial
// removal must re-add the difference.
type RemoveItemsCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveItemsCommandHandler creates a handler for cart removal operations.
// Requires a CartUoWFactory for transactional persistence.
func NewRemoveItemsCommandHandler(uowFactory CartUoWFactory) RemoveItemsCommandHandler {
	return RemoveItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove-items command.
// A session with no cart is treated as an empty cart: every requested item
// is reported as not in the cart.
func (h *RemoveItemsCommandHandler) Handle(ctx context.Context, cmd RemoveItemsCommand) (RemoveItemsResult, error) {
	if err := cmd.Validate(); err != nil {
		return RemoveItemsResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RemoveItemsResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	sessionCart, err := cartRepo.Get(ctx, cmd.SessionID())
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return RemoveItemsResult{}, err
		}

		result := RemoveItemsResult{CartEmptied: true}
		for _, item := range cmd.Items() {
			result.NotInCart = append(result.NotInCart, item.Name.String())
		}
		return result, nil
	}

	result := RemoveItemsResult{}
	for _, item := range cmd.Items() {
		removed, ok := sessionCart.Remove(item.Name, item.Quantity)
		if !ok {
			result.NotInCart = append(result.NotInCart, item.Name.String())
			continue
		}
		result.Removed = append(result.Removed, fmt.Sprintf("%d %s", removed, item.Name.String()))
	}

	if sessionCart.IsEmpty() {
		if err = cartRepo.Delete(ctx, cmd.SessionID()); err != nil {
			return RemoveItemsResult{}, err
		}
		result.CartEmptied = true
		result.Remaining = map[string]int{}
	} else {
		if err = cartRepo.Put(ctx, sessionCart); err != nil {
			return RemoveItemsResult{}, err
		}
		result.Remaining = sessionCart.Items()
		result.Summary = sessionCart.Summary()
	}

	if err = uow.Commit(ctx); err != nil {
		return RemoveItemsResult{}, err
	}

	return result, nil
}
