package commands

import (
	"errors"

	"foodibot/internal/core/domain/model/kernel"
	"foodibot/internal/pkg/guard"
)

var ErrRemoveItemsCommandIsNotConstructed = errors.New(
	"RemoveItemsCommand must be created via NewRemoveItemsCommand constructor",
)

// RemoveItemsCommand represents a request to remove food items from a
// session's cart. Quantities are optional; an item with no quantity is
// removed once.
type RemoveItemsCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.SessionID
	items     []ItemQuantity

	guard guard.ConstructorGuard
}

// NewRemoveItemsCommand creates a command to remove items from the cart.
// When quantities is empty, every item defaults to a quantity of one.
// Otherwise names and quantities are parallel lists of equal length and
// every quantity must be positive.
func NewRemoveItemsCommand(sessionID kernel.SessionID, names []string, quantities []int) (RemoveItemsCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return RemoveItemsCommand{}, err
	}
	if len(names) == 0 {
		return RemoveItemsCommand{}, ErrItemsAreRequired
	}
	if len(quantities) == 0 {
		quantities = make([]int, len(names))
		for i := range quantities {
			quantities[i] = 1
		}
	}
	if len(quantities) != len(names) {
		return RemoveItemsCommand{}, ErrQuantityPerItemIsRequired
	}

	items := make([]ItemQuantity, 0, len(names))
	for i, raw := range names {
		name, err := kernel.NewItemName(raw)
		if err != nil {
			return RemoveItemsCommand{}, err
		}
		if quantities[i] <= 0 {
			return RemoveItemsCommand{}, ErrQuantityMustBePositive
		}
		items = append(items, ItemQuantity{Name: name, Quantity: quantities[i]})
	}

	return RemoveItemsCommand{
		sessionID: sessionID,
		items:     items,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveItemsCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemsCommandIsNotConstructed)
}

// SessionID returns the conversation session the cart belongs to.
func (c RemoveItemsCommand) SessionID() kernel.SessionID {
	return c.sessionID
}

// Items returns the requested item/quantity pairs in request order.
func (c RemoveItemsCommand) Items() []ItemQuantity {
	items := make([]ItemQuantity, len(c.items))
	copy(items, c.items)
	return items
}
