package kernel

import (
	"strings"

	"foodibot/internal/pkg/errs"
)

// ErrSessionIDIsNotConstructed indicates that a SessionID was not created
// through NewSessionID. It is returned when validating a zero-value SessionID.
var ErrSessionIDIsNotConstructed = errs.NewValueIsRequiredError(
	"SessionID must be created via NewSessionID constructor",
)

// SessionID identifies one conversation with the ordering bot. The identity
// is supplied by the caller (extracted from the conversation context); this
// core never creates or destroys session identity, only the cart and contact
// records keyed by it.
//
// SessionID is an immutable value object. The zero value is invalid.
type SessionID struct {
	value string
}

// NewSessionID creates a SessionID from the caller-supplied identifier.
// The identifier must be non-empty after trimming whitespace.
func NewSessionID(value string) (SessionID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return SessionID{}, errs.NewValueIsRequiredError("sessionId")
	}
	return SessionID{value: value}, nil
}

// String returns the raw session identifier.
func (s SessionID) String() string {
	return s.value
}

// IsEqual compares two session identifiers for equality.
func (s SessionID) IsEqual(other SessionID) bool {
	return s.value == other.value
}

// Validate returns ErrSessionIDIsNotConstructed for a zero-value SessionID.
func (s SessionID) Validate() error {
	if s.value == "" {
		return ErrSessionIDIsNotConstructed
	}
	return nil
}
