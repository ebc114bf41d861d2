package commands

import (
	"errors"

	"foodibot/internal/core/domain/model/kernel"
	"foodibot/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents a request to turn a session's cart into
// a committed order.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.SessionID

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete the session's order.
func NewCompleteOrderCommand(sessionID kernel.SessionID) (CompleteOrderCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return CompleteOrderCommand{}, err
	}

	return CompleteOrderCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// SessionID returns the conversation session the cart belongs to.
func (c CompleteOrderCommand) SessionID() kernel.SessionID {
	return c.sessionID
}
