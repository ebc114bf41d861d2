package commands

import (
	"errors"

	"foodibot/internal/core/domain/model/kernel"
	"foodibot/internal/pkg/guard"
)

var (
	ErrAddItemsCommandIsNotConstructed = errors.New(
		"AddItemsCommand must be created via NewAddItemsCommand constructor",
	)
	ErrItemsAreRequired          = errors.New("at least one food item is required")
	ErrQuantityPerItemIsRequired = errors.New("a quantity is required for each food item")
	ErrQuantityMustBePositive    = errors.New("quantities must be positive numbers")
)

// ItemQuantity pairs a sanitized item name with a requested quantity.
// Order matters: when the same name appears more than once in a request,
// the last pair wins.
type ItemQuantity struct {
	Name     kernel.ItemName
	Quantity int
}

// AddItemsCommand represents a request to add food items to a session's cart.
// Item names are sanitized during construction; quantities must be positive.
//
// Example:
//
//	sessionID, _ := kernel.NewSessionID("abc-123")
//	cmd, err := NewAddItemsCommand(sessionID, []string{"Pizza", "Coke"}, []int{2, 1})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type AddItemsCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.SessionID
	items     []ItemQuantity

	guard guard.ConstructorGuard
}

// NewAddItemsCommand creates a command to add items to the cart.
// Names and quantities are parallel lists; an absent quantity list
// defaults to one of each item, a partial list is rejected. Every name
// must survive sanitization and every quantity must be positive.
func NewAddItemsCommand(sessionID kernel.SessionID, names []string, quantities []int) (AddItemsCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return AddItemsCommand{}, err
	}
	if len(names) == 0 {
		return AddItemsCommand{}, ErrItemsAreRequired
	}
	if len(quantities) == 0 {
		quantities = make([]int, len(names))
		for i := range quantities {
			quantities[i] = 1
		}
	}
	if len(quantities) != len(names) {
		return AddItemsCommand{}, ErrQuantityPerItemIsRequired
	}

	items := make([]ItemQuantity, 0, len(names))
	for i, raw := range names {
		name, err := kernel.NewItemName(raw)
		if err != nil {
			return AddItemsCommand{}, err
		}
		if quantities[i] <= 0 {
			return AddItemsCommand{}, ErrQuantityMustBePositive
		}
		items = append(items, ItemQuantity{Name: name, Quantity: quantities[i]})
	}

	return AddItemsCommand{
		sessionID: sessionID,
		items:     items,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemsCommand) Validate() error {
	return c.guard.Validate(ErrAddItemsCommandIsNotConstructed)
}

// SessionID returns the conversation session the cart belongs to.
func (c AddItemsCommand) SessionID() kernel.SessionID {
	return c.sessionID
}

// Items returns the requested item/quantity pairs in request order.
func (c AddItemsCommand) Items() []ItemQuantity {
	items := make([]ItemQuantity, len(c.items))
	copy(items, c.items)
	return items
}
