package commands

import (
	"errors"

	"foodibot/internal/core/domain/model/kernel"
	"foodibot/internal/pkg/guard"
)

var ErrSendNotificationsCommandIsNotConstructed = errors.New(
	"SendNotificationsCommand must be created via NewSendNotificationsCommand constructor",
)

// SendNotificationsCommand represents an explicit request to confirm the
// session's current cart and push the confirmation over every channel the
// customer has shared a contact for.
type SendNotificationsCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.SessionID

	guard guard.ConstructorGuard
}

// NewSendNotificationsCommand creates a command to send order notifications.
func NewSendNotificationsCommand(sessionID kernel.SessionID) (SendNotificationsCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return SendNotificationsCommand{}, err
	}

	return SendNotificationsCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SendNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrSendNotificationsCommandIsNotConstructed)
}

// SessionID returns the conversation session the cart belongs to.
func (c SendNotificationsCommand) SessionID() kernel.SessionID {
	return c.sessionID
}
