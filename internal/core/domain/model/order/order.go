package order

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
	// ErrCommittedOrderIsNotConstructed is returned when a CommittedOrder
	// was not created through the NewCommittedOrder constructor.
	ErrCommittedOrderIsNotConstructed = errors.New(
		"CommittedOrder must be created via NewCommittedOrder constructor",
	)

	// ErrOrderIDIsInvalid is returned for non-positive order identifiers.
	ErrOrderIDIsInvalid = errors.New("order id must be greater than 0")

	// ErrOrderHasNoItems is returned when committing with no items.
	ErrOrderHasNoItems = errors.New("order must contain at least one item")
)

// CommittedOrder is the immutable result of completing a cart: the frozen
// item quantities, per-item unit prices resolved from the catalog at commit
// time, and the computed total. It is a value, not a stored entity owned by
// this core; persisting order history is the storage adapter's concern.
//
// Prices are resolved when the order is committed, not when items were
// added, so a catalog price change between add and commit is reflected in
// the total.
type CommittedOrder struct {
	id         int64
	sessionID  kernel.SessionID
	items      map[string]int
	unitPrices map[string]float64
	total      float64
	status     Status
	eta        string

	guard guard.ConstructorGuard
}

// NewCommittedOrder freezes a cart snapshot into an order value. Every item
// must carry a positive quantity and have a unit price; the total is
// computed here and never recomputed afterwards. The order starts in
// StatusConfirmed.
func NewCommittedOrder(
	id int64,
	sessionID kernel.SessionID,
	items map[string]int,
	unitPrices map[string]float64,
	eta string,
) (CommittedOrder, error) {
	if id <= 0 {
		return CommittedOrder{}, ErrOrderIDIsInvalid
	}
	if err := sessionID.Validate(); err != nil {
		return CommittedOrder{}, err
	}
	if len(items) == 0 {
		return CommittedOrder{}, ErrOrderHasNoItems
	}

	frozenItems := make(map[string]int, len(items))
	frozenPrices := make(map[string]float64, len(items))
	total := 0.0
	for name, qty := range items {
		if qty <= 0 {
			return CommittedOrder{}, errs.NewValueIsOutOfRangeError(
				fmt.Sprintf("quantity of %q", name), qty, 1, int(^uint(0)>>1))
		}
		price, ok := unitPrices[name]
		if !ok {
			return CommittedOrder{}, errs.NewValueIsRequiredError(fmt.Sprintf("unit price of %q", name))
		}
		if price < 0 {
			return CommittedOrder{}, errs.NewValueIsInvalidError(fmt.Sprintf("unit price of %q", name))
		}
		frozenItems[name] = qty
		frozenPrices[name] = price
		total += float64(qty) * price
	}

	return CommittedOrder{
		id:         id,
		sessionID:  sessionID,
		items:      frozenItems,
		unitPrices: frozenPrices,
		total:      total,
		status:     StatusConfirmed,
		eta:        eta,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the order was created through the constructor.
func (o CommittedOrder) Validate() error {
	return o.guard.Validate(ErrCommittedOrderIsNotConstructed)
}

// ID returns the order's unique identifier.
func (o CommittedOrder) ID() int64 {
	return o.id
}

// SessionID returns the session that placed the order.
func (o CommittedOrder) SessionID() kernel.SessionID {
	return o.sessionID
}

// Items returns a copy of the frozen item->quantity mapping.
func (o CommittedOrder) Items() map[string]int {
	items := make(map[string]int, len(o.items))
	for name, qty := range o.items {
		items[name] = qty
	}
	return items
}

// UnitPrices returns a copy of the commit-time unit prices.
func (o CommittedOrder) UnitPrices() map[string]float64 {
	prices := make(map[string]float64, len(o.unitPrices))
	for name, price := range o.unitPrices {
		prices[name] = price
	}
	return prices
}

// UnitPrice returns the commit-time price of a single item.
func (o CommittedOrder) UnitPrice(name string) (float64, bool) {
	price, ok := o.unitPrices[name]
	return price, ok
}

// Total returns the computed order total.
func (o CommittedOrder) Total() float64 {
	return o.total
}

// Status returns the order's tracking status (always StatusConfirmed for a
// freshly committed order).
func (o CommittedOrder) Status() Status {
	return o.status
}

// ETA returns the delivery time estimate shown to the customer.
func (o CommittedOrder) ETA() string {
	return o.eta
}

// ItemNames returns the ordered item names for stable rendering.
func (o CommittedOrder) ItemNames() []string {
	names := make([]string, 0, len(o.items))
	for name := range o.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ItemsSummary renders the order lines as "2x Burger, 1x Pizza".
func (o CommittedOrder) ItemsSummary() string {
	parts := make([]string, 0, len(o.items))
	for _, name := range o.ItemNames() {
		parts = append(parts, fmt.Sprintf("%dx %s", o.items[name], DisplayName(name)))
	}
	return strings.Join(parts, ", ")
}

// DisplayName title-cases a normalized item name for customer-facing text,
// e.g. "chicken-tikka roll" becomes "Chicken-Tikka Roll".
func DisplayName(name string) string {
	out := []rune(name)
	upNext := true
	for i, r := range out {
		switch {
		case r == ' ' || r == '-':
			upNext = true
		case upNext:
			out[i] = []rune(strings.ToUpper(string(r)))[0]
			upNext = false
		}
	}
	return string(out)
}
