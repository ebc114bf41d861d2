package commands

import (
	"errors"
	"strings"

	"foodibot/internal/core/domain/model/kernel"
	"foodibot/internal/pkg/errs"
	"foodibot/internal/pkg/guard"
)

var ErrCollectEmailCommandIsNotConstructed = errors.New(
	"CollectEmailCommand must be created via NewCollectEmailCommand constructor",
)

// CollectEmailCommand represents a request to store a session's email
// address for notifications.
type CollectEmailCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.SessionID
	email     string

	guard guard.ConstructorGuard
}

// NewCollectEmailCommand creates a command to store an email address.
// The address must be non-empty and contain an "@"; anything stricter is
// left to the mail provider to reject.
func NewCollectEmailCommand(sessionID kernel.SessionID, email string) (CollectEmailCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return CollectEmailCommand{}, err
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return CollectEmailCommand{}, errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return CollectEmailCommand{}, errs.NewValueIsInvalidError("email")
	}

	return CollectEmailCommand{
		sessionID: sessionID,
		email:     email,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CollectEmailCommand) Validate() error {
	return c.guard.Validate(ErrCollectEmailCommandIsNotConstructed)
}

// SessionID returns the conversation session the contact belongs to.
func (c CollectEmailCommand) SessionID() kernel.SessionID {
	return c.sessionID
}

// Email returns the email address to store.
func (c CollectEmailCommand) Email() string {
	return c.email
}
