package kernel

import (
	"regexp"
	"strings"

	"foodibot/internal/pkg/errs"
)

// ErrItemNameIsNotConstructed indicates that an ItemName was not created
// through NewItemName. It is returned when validating a zero-value ItemName.
var ErrItemNameIsNotConstructed = errs.NewValueIsRequiredError(
	"ItemName must be created via NewItemName constructor",
)

// maxItemNameLength bounds normalized item names; longer input is truncated.
const maxItemNameLength = 30

var itemNameDisallowed = regexp.MustCompile(`[^a-zA-Z0-9\- ]`)

// ItemName is the normalized name of a food item as it appears in cart keys
// and catalog lookups: lowercase, restricted to letters, digits, hyphens and
// spaces, at most 30 characters. Normalization is applied on construction so
// free-text user input ("Pizza!!", " BURGER ") maps onto stable cart keys.
//
// ItemName is an immutable value object. The zero value is invalid.
type ItemName struct {
	value string
}

// NewItemName sanitizes raw user input into a normalized item name.
// Disallowed characters are stripped, surrounding whitespace is trimmed,
// the result is lowercased and truncated to 30 characters. Input that
// sanitizes to an empty string is rejected.
func NewItemName(raw string) (ItemName, error) {
	clean := itemNameDisallowed.ReplaceAllString(raw, "")
	clean = strings.ToLower(strings.TrimSpace(clean))
	if len(clean) > maxItemNameLength {
		clean = clean[:maxItemNameLength]
	}
	if clean == "" {
		return ItemName{}, errs.NewValueIsInvalidErrorWithCause(
			"food item",
			errs.NewValueIsRequiredError(raw),
		)
	}
	return ItemName{value: clean}, nil
}

// String returns the normalized item name.
func (n ItemName) String() string {
	return n.value
}

// IsEqual compares two item names for equality.
func (n ItemName) IsEqual(other ItemName) bool {
	return n.value == other.value
}

// Validate returns ErrItemNameIsNotConstructed for a zero-value ItemName.
func (n ItemName) Validate() error {
	if n.value == "" {
		return ErrItemNameIsNotConstructed
	}
	return nil
}
