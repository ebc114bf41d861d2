package kernel

import (
	"strings"

	"foodibot/internal/pkg/errs"
)

// ErrPhoneIsNotConstructed indicates that a Phone was not created through
// NewPhone. It is returned when validating a zero-value Phone.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError(
	"Phone must be created via NewPhone constructor",
)

// Phone holds a customer phone number as collected from the conversation.
// The raw value is stored as given; country-code normalization happens at
// send time via Normalized, because the default country code is a delivery
// channel setting rather than a property of the number itself.
//
// Phone is an immutable value object. The zero value is invalid.
type Phone struct {
	value string
}

// NewPhone creates a Phone from user input. Only non-emptiness is enforced
// here; format concerns belong to the notification channel.
func NewPhone(value string) (Phone, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone number")
	}
	return Phone{value: value}, nil
}

// String returns the phone number as collected.
func (p Phone) String() string {
	return p.value
}

// Normalized returns the number in international form using countryCode
// when the input does not already carry one:
//
//   - "03001234567" with country code "92" becomes "+923001234567"
//     (a single leading zero is dropped before prepending the code)
//   - "+0987654321" becomes "+92987654321" (malformed "+0" prefix rewritten)
//   - "+923001234567" is returned unchanged
func (p Phone) Normalized(countryCode string) string {
	return NormalizePhone(p.value, countryCode)
}

// Validate returns ErrPhoneIsNotConstructed for a zero-value Phone.
func (p Phone) Validate() error {
	if p.value == "" {
		return ErrPhoneIsNotConstructed
	}
	return nil
}

// NormalizePhone applies the same country-code normalization as
// Phone.Normalized to a raw string. Provider adapters use it on destination
// numbers right before sending.
func NormalizePhone(number, countryCode string) string {
	switch {
	case !strings.HasPrefix(number, "+"):
		return "+" + countryCode + strings.TrimPrefix(number, "0")
	case strings.HasPrefix(number, "+0"):
		return "+" + countryCode + number[2:]
	default:
		return number
	}
}
