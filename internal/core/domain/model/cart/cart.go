package cart

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"foodibot/internal/core/domain/model/kernel"
	"foodibot/internal/pkg/errs"
	"foodibot/internal/pkg/guard"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not created
	// through NewCart or RestoreCart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart constructor")

	// ErrCartIsEmpty is returned by operations that require an existing,
	// non-empty cart for the session (summary, completion, notifications).
	ErrCartIsEmpty = errors.New("cart is empty")
)

// Cart is the session-scoped aggregate holding the in-progress order: a
// mapping from normalized item name to a positive quantity. A session owns
// at most one cart at a time.
//
// Lifecycle: a session with no cart record is empty; the first added item
// creates the cart; removing the last item deletes the record and the
// session is empty again. Completing an order freezes the cart contents into
// an order.CommittedOrder value but does not itself delete the cart; the
// contact-collection flow that follows completion still reads it, so cart
// deletion after commit is caller policy.
//
// Invariants:
//   - No entry has quantity <= 0; an absent item is "not in cart", never a
//     zero-quantity entry.
//   - Keys are normalized item names (see kernel.ItemName).
type Cart struct {
	sessionID kernel.SessionID
	items     map[string]int

	guard guard.ConstructorGuard
}

// NewCart creates an empty cart for the session.
func NewCart(sessionID kernel.SessionID) (*Cart, error) {
	if err := sessionID.Validate(); err != nil {
		return nil, err
	}

	return &Cart{
		sessionID: sessionID,
		items:     make(map[string]int),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreCart reconstructs a cart from persistence. Every restored quantity
// must be positive; a persisted non-positive quantity means the storage
// invariant was broken and the record is rejected.
func RestoreCart(sessionID kernel.SessionID, items map[string]int) (*Cart, error) {
	c, err := NewCart(sessionID)
	if err != nil {
		return nil, err
	}

	for name, qty := range items {
		if qty <= 0 {
			return nil, errs.NewValueIsOutOfRangeError(fmt.Sprintf("quantity of %q", name), qty, 1, int(^uint(0)>>1))
		}
		c.items[name] = qty
	}

	return c, nil
}

// Validate ensures the Cart was created through a constructor.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// SessionID returns the owning session's identifier.
func (c *Cart) SessionID() kernel.SessionID {
	return c.sessionID
}

// Items returns a copy of the item->quantity mapping.
func (c *Cart) Items() map[string]int {
	items := make(map[string]int, len(c.items))
	for name, qty := range c.items {
		items[name] = qty
	}
	return items
}

// Quantity returns the quantity of an item and whether it is in the cart.
func (c *Cart) Quantity(name kernel.ItemName) (int, bool) {
	qty, ok := c.items[name.String()]
	return qty, ok
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// TotalQuantity returns the sum of all item quantities.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, qty := range c.items {
		total += qty
	}
	return total
}

// Add merges quantity additively into the cart: adding 2 then 3 of the same
// item yields 5. Quantity must be positive.
func (c *Cart) Add(name kernel.ItemName, quantity int) error {
	if err := name.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, int(^uint(0)>>1))
	}

	c.items[name.String()] += quantity
	return nil
}

// Remove takes an item out of the cart. Removal is one-shot: the entry is
// always deleted regardless of whether the requested quantity would have
// left a positive remainder, and the reported removed quantity is
// min(current, requested). A partial decrement was likely the original
// product intent, but the full-removal behavior is the contract callers see
// and is preserved deliberately.
//
// Returns the removed quantity and whether the item was in the cart at all.
func (c *Cart) Remove(name kernel.ItemName, quantity int) (int, bool) {
	current, ok := c.items[name.String()]
	if !ok {
		return 0, false
	}

	delete(c.items, name.String())
	if quantity > current {
		return current, true
	}
	return quantity, true
}

// Summary renders the cart as "qty1 item1, qty2 item2" with items in
// alphabetical order for stable output.
func (c *Cart) Summary() string {
	names := make([]string, 0, len(c.items))
	for name := range c.items {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%d %s", c.items[name], name))
	}
	return strings.Join(parts, ", ")
}
