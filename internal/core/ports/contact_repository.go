package ports

import (
	"context"

	"foodibot/internal/core/domain/model/contact"
	"foodibot/internal/core/domain/model/kernel"
)

// ContactRepository defines the persistence contract for per-session
// contact details. Records are upserted field by field as the
// conversation collects them and are never deleted by the core.
type ContactRepository interface {
	// Get retrieves the contact record for a session. A session with
	// no record yet yields an empty contact, not an error.
	Get(ctx context.Context, sessionID kernel.SessionID) (contact.Contact, error)

	// SetPhone stores the phone number for a session, creating the
	// record when needed and preserving any stored email.
	SetPhone(ctx context.Context, sessionID kernel.SessionID, phone string) error

	// SetEmail stores the email address for a session, creating the
	// record when needed and preserving any stored phone.
	SetEmail(ctx context.Context, sessionID kernel.SessionID, email string) error
}
